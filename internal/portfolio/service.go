package portfolio

import (
	"context"

	"github.com/atelierhq/agency-api/internal/models"
)

// Service exposes the read-only portfolio catalog.
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

func (s *Service) List(ctx context.Context, f Filter) ([]models.Project, error) {
	return s.repo.List(ctx, f)
}

func (s *Service) Get(ctx context.Context, id string) (*models.Project, error) {
	return s.repo.GetByID(ctx, id)
}
