package newsletter

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/voltmart/voltmart/internal/shared"
)

// WelcomeMailer enqueues the post-subscribe welcome mail. Delivery is fire
// and forget; a queue failure never fails the mutation.
type WelcomeMailer interface {
	EnqueueWelcome(ctx context.Context, email string) error
}

type Service struct {
	logger *slog.Logger
	repo   Repository
	mailer WelcomeMailer
}

// NewService constructs the newsletter service. mailer may be nil when no
// queue is configured.
func NewService(logger *slog.Logger, repo Repository, mailer WelcomeMailer) *Service {
	return &Service{logger: logger, repo: repo, mailer: mailer}
}

func (s *Service) Subscribe(ctx context.Context, req SubscribeRequest) (Subscription, error) {
	if err := shared.ValidateInput(req); err != nil {
		return Subscription{}, err
	}

	sub, err := s.repo.Subscribe(ctx, req.Email, uuid.NewString())
	if err != nil {
		return Subscription{}, fmt.Errorf("subscribe newsletter: %w", err)
	}

	if s.mailer != nil {
		if err := s.mailer.EnqueueWelcome(ctx, sub.Email); err != nil {
			s.logger.Warn("enqueue welcome mail failed", "error", err, "email", sub.Email)
		}
	}
	return sub, nil
}

func (s *Service) Unsubscribe(ctx context.Context, req UnsubscribeRequest) (Subscription, error) {
	if err := shared.ValidateInput(req); err != nil {
		return Subscription{}, err
	}
	sub, err := s.repo.Deactivate(ctx, req.Token)
	if err != nil {
		return Subscription{}, fmt.Errorf("unsubscribe newsletter: %w", err)
	}
	return sub, nil
}

func (s *Service) ActiveSubscribers(ctx context.Context) ([]Subscription, error) {
	return s.repo.ActiveSubscribers(ctx)
}
