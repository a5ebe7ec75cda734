package quotes

import (
	"context"
	"sync"

	"github.com/atelierhq/agency-api/internal/models"
	"github.com/atelierhq/agency-api/internal/store"
)

// MemoryRepository is an in-memory Repository used by unit tests.
type MemoryRepository struct {
	mu   sync.RWMutex
	docs []models.QuoteRequest
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (m *MemoryRepository) Insert(ctx context.Context, q *models.QuoteRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs = append(m.docs, *q)
	return nil
}

func (m *MemoryRepository) List(ctx context.Context) ([]models.QuoteRequest, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	n := len(m.docs)
	if n > store.MaxResults {
		n = store.MaxResults
	}
	out := make([]models.QuoteRequest, n)
	copy(out, m.docs[:n])
	return out, nil
}
