package newsletter

import (
	"context"
	"sync"

	"github.com/atelierhq/agency-api/internal/models"
)

// MemoryRepository is an in-memory Repository used by unit tests.
type MemoryRepository struct {
	mu   sync.RWMutex
	docs []models.Newsletter
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (m *MemoryRepository) Insert(ctx context.Context, n *models.Newsletter) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs = append(m.docs, *n)
	return nil
}

func (m *MemoryRepository) FindByEmail(ctx context.Context, email string) (*models.Newsletter, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, n := range m.docs {
		if n.Email == email {
			cp := n
			return &cp, nil
		}
	}
	return nil, nil
}

// Len reports the number of stored subscriptions.
func (m *MemoryRepository) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.docs)
}
