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

type donationService struct {
	donationRepo    repository.DonationRepository
	sponsorshipRepo repository.SponsorshipRepository
	now             func() time.Time
}

// NewDonationService creates a new donation service instance
func NewDonationService(donationRepo repository.DonationRepository, sponsorshipRepo repository.SponsorshipRepository) usecase.DonationUsecase {
	return &donationService{
		donationRepo:    donationRepo,
		sponsorshipRepo: sponsorshipRepo,
		now:             time.Now,
	}
}

// CreateDonation records a donation
func (s *donationService) CreateDonation(ctx context.Context, donation *entity.Donation) error {
	donation.ID = identifier.Generate()
	donation.CreatedAt = s.now().UTC()

	if err := s.donationRepo.Create(ctx, donation); err != nil {
		return errors.Wrap(err, "failed to create donation")
	}

	return nil
}

// GetImpactStats counts donations and sponsorships
func (s *donationService) GetImpactStats(ctx context.Context) (*entity.ImpactStats, error) {
	donations, err := s.donationRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count donations")
	}

	sponsorships, err := s.sponsorshipRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count sponsorships")
	}

	return &entity.ImpactStats{
		Donations:    donations,
		Sponsorships: sponsorships,
	}, nil
}
