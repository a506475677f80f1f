package usecase

import (
	"context"

	"charity/internal/domain/entity"
)

// NewsletterUsecase defines the interface for newsletter use cases
type NewsletterUsecase interface {
	Subscribe(ctx context.Context, subscriber *entity.Subscriber) error
}
