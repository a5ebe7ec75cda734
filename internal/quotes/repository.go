package quotes

import (
	"context"
	"fmt"

	"github.com/atelierhq/agency-api/internal/models"
	"github.com/atelierhq/agency-api/internal/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Repository defines persistence operations for quote requests.
type Repository interface {
	Insert(ctx context.Context, q *models.QuoteRequest) error
	List(ctx context.Context) ([]models.QuoteRequest, error)
}

// MongoRepository implements Repository on the quotes collection.
type MongoRepository struct {
	col *mongo.Collection
}

func NewMongoRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

func (r *MongoRepository) Insert(ctx context.Context, q *models.QuoteRequest) error {
	if _, err := r.col.InsertOne(ctx, q); err != nil {
		return fmt.Errorf("insert quote: %w", err)
	}
	return nil
}

func (r *MongoRepository) List(ctx context.Context) ([]models.QuoteRequest, error) {
	cur, err := r.col.Find(ctx, bson.M{}, store.FindOpts())
	if err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}
	defer cur.Close(ctx)
	out := []models.QuoteRequest{}
	for cur.Next(ctx) {
		var q models.QuoteRequest
		if err := cur.Decode(&q); err != nil {
			return nil, fmt.Errorf("decode quote: %w", err)
		}
		out = append(out, q)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}
	return out, nil
}
