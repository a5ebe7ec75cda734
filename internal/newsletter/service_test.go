package newsletter

import (
	"context"
	"errors"
	"testing"

	"github.com/atelierhq/agency-api/internal/models"
)

func TestSubscribe(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo)
	ctx := context.Background()

	n, err := svc.Subscribe(ctx, &models.NewsletterCreate{Email: "a@b.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n == nil || n.ID == "" {
		t.Fatal("expected a record with a generated id")
	}
	if n.Timestamp.IsZero() {
		t.Fatal("expected a generated timestamp")
	}
	if n.Email != "a@b.com" {
		t.Fatalf("unexpected email: %s", n.Email)
	}
}

func TestSubscribeDuplicate(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo)
	ctx := context.Background()

	if _, err := svc.Subscribe(ctx, &models.NewsletterCreate{Email: "a@b.com"}); err != nil {
		t.Fatalf("first subscribe failed: %v", err)
	}
	_, err := svc.Subscribe(ctx, &models.NewsletterCreate{Email: "a@b.com"})
	if !errors.Is(err, ErrAlreadySubscribed) {
		t.Fatalf("expected ErrAlreadySubscribed, got %v", err)
	}
	if repo.Len() != 1 {
		t.Fatalf("duplicate subscribe must not write; stored %d docs", repo.Len())
	}
}
