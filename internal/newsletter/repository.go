package newsletter

import (
	"context"
	"errors"
	"fmt"

	"github.com/atelierhq/agency-api/internal/models"
	"github.com/atelierhq/agency-api/internal/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrAlreadySubscribed is returned when the email already has a subscription.
var ErrAlreadySubscribed = errors.New("email already subscribed")

// Repository defines persistence operations for newsletter subscriptions.
// FindByEmail returns (nil, nil) when no subscription exists.
type Repository interface {
	Insert(ctx context.Context, n *models.Newsletter) error
	FindByEmail(ctx context.Context, email string) (*models.Newsletter, error)
}

// MongoRepository implements Repository on the newsletter collection.
type MongoRepository struct {
	col *mongo.Collection
}

func NewMongoRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

func (r *MongoRepository) Insert(ctx context.Context, n *models.Newsletter) error {
	if _, err := r.col.InsertOne(ctx, n); err != nil {
		return fmt.Errorf("insert subscription: %w", err)
	}
	return nil
}

func (r *MongoRepository) FindByEmail(ctx context.Context, email string) (*models.Newsletter, error) {
	var n models.Newsletter
	if err := r.col.FindOne(ctx, bson.M{"email": email}, store.FindOneOpts()).Decode(&n); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find subscription: %w", err)
	}
	return &n, nil
}
