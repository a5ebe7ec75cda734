package contacts

import (
	"context"

	"github.com/atelierhq/agency-api/internal/models"
)

// Service turns validated form input into stored contact records.
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

// Create assigns a fresh id and creation timestamp and persists the record.
func (s *Service) Create(ctx context.Context, in *models.ContactCreate) (*models.Contact, error) {
	c := &models.Contact{
		ID:              models.NewID(),
		Name:            in.Name,
		Email:           in.Email,
		Company:         in.Company,
		Phone:           in.Phone,
		Message:         in.Message,
		ServiceInterest: in.ServiceInterest,
		Timestamp:       models.Now(),
	}
	if err := s.repo.Insert(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) List(ctx context.Context) ([]models.Contact, error) {
	return s.repo.List(ctx)
}
