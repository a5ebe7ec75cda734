package testimonials

import (
	"context"
	"fmt"
	"sync"

	"github.com/atelierhq/agency-api/internal/models"
	"github.com/atelierhq/agency-api/internal/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Repository defines persistence operations for testimonials. Insert exists
// for the out-of-band seeding path; the API only reads.
type Repository interface {
	Insert(ctx context.Context, t *models.Testimonial) error
	List(ctx context.Context) ([]models.Testimonial, error)
}

// MongoRepository implements Repository on the testimonials collection.
type MongoRepository struct {
	col *mongo.Collection
}

func NewMongoRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

func (r *MongoRepository) Insert(ctx context.Context, t *models.Testimonial) error {
	if _, err := r.col.InsertOne(ctx, t); err != nil {
		return fmt.Errorf("insert testimonial: %w", err)
	}
	return nil
}

func (r *MongoRepository) List(ctx context.Context) ([]models.Testimonial, error) {
	cur, err := r.col.Find(ctx, bson.M{}, store.FindOpts())
	if err != nil {
		return nil, fmt.Errorf("list testimonials: %w", err)
	}
	defer cur.Close(ctx)
	out := []models.Testimonial{}
	for cur.Next(ctx) {
		var t models.Testimonial
		if err := cur.Decode(&t); err != nil {
			return nil, fmt.Errorf("decode testimonial: %w", err)
		}
		out = append(out, t)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list testimonials: %w", err)
	}
	return out, nil
}

// MemoryRepository is an in-memory Repository used by unit tests.
type MemoryRepository struct {
	mu   sync.RWMutex
	docs []models.Testimonial
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (m *MemoryRepository) Insert(ctx context.Context, t *models.Testimonial) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs = append(m.docs, *t)
	return nil
}

func (m *MemoryRepository) List(ctx context.Context) ([]models.Testimonial, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	n := len(m.docs)
	if n > store.MaxResults {
		n = store.MaxResults
	}
	out := make([]models.Testimonial, n)
	copy(out, m.docs[:n])
	return out, nil
}
