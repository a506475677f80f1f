package impl

import (
	"context"
	"time"

	"charity/internal/domain/entity"
	"charity/internal/domain/identifier"
	"charity/internal/domain/repository"
	"charity/internal/usecase"

	"github.com/pkg/errors"
)

type newsletterService struct {
	subscriberRepo repository.SubscriberRepository
	now            func() time.Time
}

// NewNewsletterService creates a new newsletter service instance
func NewNewsletterService(subscriberRepo repository.SubscriberRepository) usecase.NewsletterUsecase {
	return &newsletterService{
		subscriberRepo: subscriberRepo,
		now:            time.Now,
	}
}

// Subscribe records a newsletter subscriber
func (s *newsletterService) Subscribe(ctx context.Context, subscriber *entity.Subscriber) error {
	subscriber.ID = identifier.Generate()
	subscriber.SubscribedAt = s.now().UTC()

	if err := s.subscriberRepo.Create(ctx, subscriber); err != nil {
		return errors.Wrap(err, "failed to subscribe to newsletter")
	}

	return nil
}
