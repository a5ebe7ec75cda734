package blog

import (
	"context"
	"errors"
	"fmt"

	"github.com/atelierhq/agency-api/internal/models"
	"github.com/atelierhq/agency-api/internal/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrNotFound = errors.New("blog post not found")

// Repository defines persistence operations for blog posts. Only published
// posts are ever returned; drafts stay invisible to the public API. Insert
// exists for the out-of-band seeding path.
type Repository interface {
	Insert(ctx context.Context, p *models.BlogPost) error
	List(ctx context.Context, category string) ([]models.BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
}

// MongoRepository implements Repository on the blog_posts collection.
type MongoRepository struct {
	col *mongo.Collection
}

func NewMongoRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

func (r *MongoRepository) Insert(ctx context.Context, p *models.BlogPost) error {
	if _, err := r.col.InsertOne(ctx, p); err != nil {
		return fmt.Errorf("insert blog post: %w", err)
	}
	return nil
}

// List returns published posts newest first. Timestamps are stored as
// RFC 3339 UTC strings, so a descending sort on the raw field is descending
// in time as well.
func (r *MongoRepository) List(ctx context.Context, category string) ([]models.BlogPost, error) {
	query := bson.M{"published": true}
	if category != "" {
		query["category"] = category
	}
	opts := store.FindOpts().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("list blog posts: %w", err)
	}
	defer cur.Close(ctx)
	out := []models.BlogPost{}
	for cur.Next(ctx) {
		var p models.BlogPost
		if err := cur.Decode(&p); err != nil {
			return nil, fmt.Errorf("decode blog post: %w", err)
		}
		out = append(out, p)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list blog posts: %w", err)
	}
	return out, nil
}

func (r *MongoRepository) GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	var p models.BlogPost
	filter := bson.M{"slug": slug, "published": true}
	if err := r.col.FindOne(ctx, filter, store.FindOneOpts()).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get blog post: %w", err)
	}
	return &p, nil
}
