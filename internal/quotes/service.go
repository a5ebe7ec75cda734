package quotes

import (
	"context"

	"github.com/atelierhq/agency-api/internal/models"
)

// Service turns validated quote input into stored records.
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

func (s *Service) Create(ctx context.Context, in *models.QuoteRequestCreate) (*models.QuoteRequest, error) {
	q := &models.QuoteRequest{
		ID:          models.NewID(),
		Name:        in.Name,
		Email:       in.Email,
		Company:     in.Company,
		Phone:       in.Phone,
		ProjectType: in.ProjectType,
		Budget:      in.Budget,
		Timeline:    in.Timeline,
		Description: in.Description,
		Timestamp:   models.Now(),
	}
	if err := s.repo.Insert(ctx, q); err != nil {
		return nil, err
	}
	return q, nil
}

func (s *Service) List(ctx context.Context) ([]models.QuoteRequest, error) {
	return s.repo.List(ctx)
}
