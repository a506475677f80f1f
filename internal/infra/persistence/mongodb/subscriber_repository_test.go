package mongodb

import (
	"context"
	"testing"
	"time"

	"charity/internal/domain/entity"
	"charity/internal/domain/identifier"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestSubscriberRepository_Create(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	subscriber := &entity.Subscriber{
		ID:           identifier.Generate(),
		Email:        "reader@example.com",
		Preferences:  []string{"stories"},
		SubscribedAt: time.Now().UTC(),
	}

	mt.Run("success", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		require.NoError(mt, NewSubscriberRepository(mt.DB).Create(context.Background(), subscriber))
	})

	mt.Run("server error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    13,
			Name:    "Unauthorized",
			Message: "not authorized",
		}))

		require.Error(mt, NewSubscriberRepository(mt.DB).Create(context.Background(), subscriber))
	})
}
