package contacts

import (
	"context"
	"fmt"

	"github.com/atelierhq/agency-api/internal/models"
	"github.com/atelierhq/agency-api/internal/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Repository defines persistence operations for contact submissions.
type Repository interface {
	Insert(ctx context.Context, c *models.Contact) error
	List(ctx context.Context) ([]models.Contact, error)
}

// MongoRepository implements Repository on the contacts collection.
type MongoRepository struct {
	col *mongo.Collection
}

func NewMongoRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

func (r *MongoRepository) Insert(ctx context.Context, c *models.Contact) error {
	if _, err := r.col.InsertOne(ctx, c); err != nil {
		return fmt.Errorf("insert contact: %w", err)
	}
	return nil
}

func (r *MongoRepository) List(ctx context.Context) ([]models.Contact, error) {
	cur, err := r.col.Find(ctx, bson.M{}, store.FindOpts())
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer cur.Close(ctx)
	out := []models.Contact{}
	for cur.Next(ctx) {
		var c models.Contact
		if err := cur.Decode(&c); err != nil {
			return nil, fmt.Errorf("decode contact: %w", err)
		}
		out = append(out, c)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	return out, nil
}
