package contacts

import (
	"context"
	"sync"

	"github.com/atelierhq/agency-api/internal/models"
	"github.com/atelierhq/agency-api/internal/store"
)

// MemoryRepository is an in-memory Repository used by unit tests.
type MemoryRepository struct {
	mu   sync.RWMutex
	docs []models.Contact
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (m *MemoryRepository) Insert(ctx context.Context, c *models.Contact) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs = append(m.docs, *c)
	return nil
}

func (m *MemoryRepository) List(ctx context.Context) ([]models.Contact, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	n := len(m.docs)
	if n > store.MaxResults {
		n = store.MaxResults
	}
	out := make([]models.Contact, n)
	copy(out, m.docs[:n])
	return out, nil
}
