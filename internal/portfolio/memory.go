package portfolio

import (
	"context"
	"sync"

	"github.com/atelierhq/agency-api/internal/models"
	"github.com/atelierhq/agency-api/internal/store"
)

// MemoryRepository is an in-memory Repository used by unit tests.
type MemoryRepository struct {
	mu   sync.RWMutex
	docs []models.Project
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (m *MemoryRepository) Insert(ctx context.Context, p *models.Project) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs = append(m.docs, *p)
	return nil
}

func (m *MemoryRepository) List(ctx context.Context, f Filter) ([]models.Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []models.Project{}
	for _, p := range m.docs {
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if f.Featured != nil && p.Featured != *f.Featured {
			continue
		}
		out = append(out, p)
		if len(out) == store.MaxResults {
			break
		}
	}
	return out, nil
}

func (m *MemoryRepository) GetByID(ctx context.Context, id string) (*models.Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, p := range m.docs {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}
