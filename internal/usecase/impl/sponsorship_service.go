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

type sponsorshipService struct {
	sponsorshipRepo repository.SponsorshipRepository
	now             func() time.Time
}

// NewSponsorshipService creates a new sponsorship service instance
func NewSponsorshipService(sponsorshipRepo repository.SponsorshipRepository) usecase.SponsorshipUsecase {
	return &sponsorshipService{
		sponsorshipRepo: sponsorshipRepo,
		now:             time.Now,
	}
}

// CreateSponsorship records a sponsorship
func (s *sponsorshipService) CreateSponsorship(ctx context.Context, sponsorship *entity.Sponsorship) error {
	sponsorship.ID = identifier.Generate()
	sponsorship.CreatedAt = s.now().UTC()

	if err := s.sponsorshipRepo.Create(ctx, sponsorship); err != nil {
		return errors.Wrap(err, "failed to create sponsorship")
	}

	return nil
}
