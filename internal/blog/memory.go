package blog

import (
	"context"
	"sort"
	"sync"

	"github.com/atelierhq/agency-api/internal/models"
	"github.com/atelierhq/agency-api/internal/store"
)

// MemoryRepository is an in-memory Repository used by unit tests. It mirrors
// the Mongo repository's published filter and newest-first ordering.
type MemoryRepository struct {
	mu   sync.RWMutex
	docs []models.BlogPost
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (m *MemoryRepository) Insert(ctx context.Context, p *models.BlogPost) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs = append(m.docs, *p)
	return nil
}

func (m *MemoryRepository) List(ctx context.Context, category string) ([]models.BlogPost, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []models.BlogPost{}
	for _, p := range m.docs {
		if !p.Published {
			continue
		}
		if category != "" && p.Category != category {
			continue
		}
		out = append(out, p)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp.Time)
	})
	if len(out) > store.MaxResults {
		out = out[:store.MaxResults]
	}
	return out, nil
}

func (m *MemoryRepository) GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, p := range m.docs {
		if p.Slug == slug && p.Published {
			cp := p
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}
