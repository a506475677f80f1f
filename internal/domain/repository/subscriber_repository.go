package repository

import (
	"context"

	"charity/internal/domain/entity"
)

// SubscriberRepository defines the interface for newsletter subscriber database operations.
type SubscriberRepository interface {
	// Create persists a new subscriber.
	Create(ctx context.Context, subscriber *entity.Subscriber) error
}
