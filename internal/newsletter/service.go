package newsletter

import (
	"context"

	"github.com/atelierhq/agency-api/internal/models"
)

// Service handles newsletter signups with a one-subscription-per-email rule.
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

// Subscribe stores a new subscription, or returns ErrAlreadySubscribed and
// writes nothing when the email is already on file. The pre-check and insert
// are not atomic; the store enforces no uniqueness of its own.
func (s *Service) Subscribe(ctx context.Context, in *models.NewsletterCreate) (*models.Newsletter, error) {
	existing, err := s.repo.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadySubscribed
	}
	n := &models.Newsletter{
		ID:        models.NewID(),
		Email:     in.Email,
		Timestamp: models.Now(),
	}
	if err := s.repo.Insert(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}
