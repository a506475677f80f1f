package impl

import (
	"context"
	"testing"

	"charity/internal/domain/entity"
	"charity/internal/domain/identifier"
	mockRepo "charity/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSponsorshipService_CreateSponsorship(t *testing.T) {
	ctx := context.Background()
	childID := identifier.Generate()

	sponsorshipRepo := mockRepo.NewMockSponsorshipRepository(t)
	service := NewSponsorshipService(sponsorshipRepo)

	sponsorship := &entity.Sponsorship{
		FirstName:     "A",
		LastName:      "B",
		Email:         "a@b.com",
		ChildID:       &childID,
		MonthlyAmount: 50,
		PaymentMethod: entity.PaymentMethodPayPal,
		Currency:      "USD",
	}

	sponsorshipRepo.EXPECT().Create(ctx, sponsorship).Return(nil).Once()

	require.NoError(t, service.CreateSponsorship(ctx, sponsorship))
	assert.False(t, sponsorship.ID.IsZero())
	assert.False(t, sponsorship.CreatedAt.IsZero())
	assert.Equal(t, childID, *sponsorship.ChildID)

	sponsorshipRepo.EXPECT().Create(ctx, mock.Anything).Return(errors.New("boom")).Once()
	err := service.CreateSponsorship(ctx, &entity.Sponsorship{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create sponsorship")
}
