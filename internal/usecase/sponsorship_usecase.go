package usecase

import (
	"context"

	"charity/internal/domain/entity"
)

// SponsorshipUsecase defines the interface for sponsorship use cases
type SponsorshipUsecase interface {
	// CreateSponsorship assigns the sponsorship an identifier and creation time, then records it.
	// The referenced child is neither checked nor marked as sponsored.
	CreateSponsorship(ctx context.Context, sponsorship *entity.Sponsorship) error
}
