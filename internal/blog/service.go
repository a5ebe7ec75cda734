package blog

import (
	"context"

	"github.com/atelierhq/agency-api/internal/models"
)

// Service exposes the public, published-only view of the blog.
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

func (s *Service) List(ctx context.Context, category string) ([]models.BlogPost, error) {
	return s.repo.List(ctx, category)
}

func (s *Service) GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	return s.repo.GetBySlug(ctx, slug)
}
