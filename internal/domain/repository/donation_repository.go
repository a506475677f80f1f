package repository

import (
	"context"

	"charity/internal/domain/entity"
)

// DonationRepository defines the interface for donation-related database operations.
type DonationRepository interface {
	// Create persists a new donation.
	Create(ctx context.Context, donation *entity.Donation) error

	// Count returns the number of recorded donations.
	Count(ctx context.Context) (int64, error)
}
