package portfolio

import (
	"context"
	"errors"
	"fmt"

	"github.com/atelierhq/agency-api/internal/models"
	"github.com/atelierhq/agency-api/internal/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrNotFound = errors.New("project not found")

// Filter selects projects by exact match. Zero values mean "no constraint".
type Filter struct {
	Category string
	Featured *bool
}

// Repository defines persistence operations for portfolio projects. Insert
// exists for the out-of-band seeding path; the API itself never writes.
type Repository interface {
	Insert(ctx context.Context, p *models.Project) error
	List(ctx context.Context, f Filter) ([]models.Project, error)
	GetByID(ctx context.Context, id string) (*models.Project, error)
}

// MongoRepository implements Repository on the projects collection.
type MongoRepository struct {
	col *mongo.Collection
}

func NewMongoRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

func (r *MongoRepository) Insert(ctx context.Context, p *models.Project) error {
	if _, err := r.col.InsertOne(ctx, p); err != nil {
		return fmt.Errorf("insert project: %w", err)
	}
	return nil
}

func (r *MongoRepository) List(ctx context.Context, f Filter) ([]models.Project, error) {
	query := bson.M{}
	if f.Category != "" {
		query["category"] = f.Category
	}
	if f.Featured != nil {
		query["featured"] = *f.Featured
	}
	cur, err := r.col.Find(ctx, query, store.FindOpts())
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer cur.Close(ctx)
	out := []models.Project{}
	for cur.Next(ctx) {
		var p models.Project
		if err := cur.Decode(&p); err != nil {
			return nil, fmt.Errorf("decode project: %w", err)
		}
		out = append(out, p)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return out, nil
}

func (r *MongoRepository) GetByID(ctx context.Context, id string) (*models.Project, error) {
	var p models.Project
	if err := r.col.FindOne(ctx, bson.M{"id": id}, store.FindOneOpts()).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get project: %w", err)
	}
	return &p, nil
}
