package repository

import (
	"context"

	"charity/internal/domain/entity"
)

// SponsorshipRepository defines the interface for sponsorship-related database operations.
type SponsorshipRepository interface {
	// Create persists a new sponsorship.
	Create(ctx context.Context, sponsorship *entity.Sponsorship) error

	// Count returns the number of recorded sponsorships.
	Count(ctx context.Context) (int64, error)
}
