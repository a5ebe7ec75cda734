package testimonials

import (
	"context"

	"github.com/atelierhq/agency-api/internal/models"
)

// Service exposes the read-only testimonial list.
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

func (s *Service) List(ctx context.Context) ([]models.Testimonial, error) {
	return s.repo.List(ctx)
}
