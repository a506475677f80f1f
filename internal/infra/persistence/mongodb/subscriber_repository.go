package mongodb

import (
	"context"

	"charity/internal/domain/entity"
	domainerrors "charity/internal/domain/errors"
	"charity/internal/domain/repository"
	"charity/internal/infra/persistence/model"

	"go.mongodb.org/mongo-driver/mongo"
)

// subscriberRepository implements the repository.SubscriberRepository interface.
type subscriberRepository struct {
	coll *mongo.Collection
}

// NewSubscriberRepository is the constructor for subscriberRepository.
func NewSubscriberRepository(db *mongo.Database) repository.SubscriberRepository {
	return &subscriberRepository{
		coll: db.Collection(model.SubscriberCollection),
	}
}

// Create persists a newsletter subscriber. Repeated e-mail addresses are stored as separate records.
func (repo *subscriberRepository) Create(ctx context.Context, subscriber *entity.Subscriber) error {
	doc := &model.SubscriberModel{
		ID:           subscriber.ID.ObjectID(),
		Email:        subscriber.Email,
		FirstName:    subscriber.FirstName,
		LastName:     subscriber.LastName,
		Preferences:  subscriber.Preferences,
		SubscribedAt: subscriber.SubscribedAt,
	}

	if _, err := repo.coll.InsertOne(ctx, doc); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create subscriber")
	}

	return nil
}
