package mongodb

import (
	"context"
	"testing"
	"time"

	"charity/internal/domain/entity"
	"charity/internal/domain/identifier"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestSponsorshipRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("create", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		sponsorship := &entity.Sponsorship{
			ID:            identifier.Generate(),
			FirstName:     "A",
			LastName:      "B",
			Email:         "a@b.com",
			MonthlyAmount: 50,
			PaymentMethod: entity.PaymentMethodCreditCard,
			Currency:      "USD",
			CreatedAt:     time.Now().UTC(),
		}
		require.NoError(mt, NewSponsorshipRepository(mt.DB).Create(context.Background(), sponsorship))
	})

	mt.Run("count", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "charity.sponsorships", mtest.FirstBatch,
			bson.D{{Key: "n", Value: int64(7)}},
		))

		count, err := NewSponsorshipRepository(mt.DB).Count(context.Background())
		require.NoError(mt, err)
		assert.Equal(mt, int64(7), count)
	})
}

func TestSponsorshipMapper(t *testing.T) {
	childID := identifier.Generate()
	sponsorship := &entity.Sponsorship{
		ID:            identifier.Generate(),
		FirstName:     "Grace",
		LastName:      "Hopper",
		Email:         "grace@example.com",
		ChildID:       &childID,
		MonthlyAmount: 30,
		PaymentMethod: entity.PaymentMethodMobileMoney,
		Currency:      "KES",
		CreatedAt:     time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}

	doc := fromSponsorshipDomain(sponsorship)
	assert.Equal(t, "mobile_money", doc.PaymentMethod)
	assert.Equal(t, sponsorship.ID.ObjectID(), doc.ID)
	require.NotNil(t, doc.ChildID)
	assert.Equal(t, childID.ObjectID(), *doc.ChildID)
	assert.InDelta(t, 30.0, doc.MonthlyAmount, 0.0001)
	assert.Equal(t, "KES", doc.Currency)
	assert.Equal(t, sponsorship.CreatedAt, doc.CreatedAt)
}
