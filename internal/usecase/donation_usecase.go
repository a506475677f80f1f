package usecase

import (
	"context"

	"charity/internal/domain/entity"
)

// DonationUsecase defines the interface for donation use cases
type DonationUsecase interface {
	// CreateDonation assigns the donation an identifier and creation time, then records it
	CreateDonation(ctx context.Context, donation *entity.Donation) error

	// GetImpactStats counts recorded donations and sponsorships
	GetImpactStats(ctx context.Context) (*entity.ImpactStats, error)
}
