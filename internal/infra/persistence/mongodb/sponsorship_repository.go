package mongodb

import (
	"context"

	"charity/internal/domain/entity"
	domainerrors "charity/internal/domain/errors"
	"charity/internal/domain/repository"
	"charity/internal/infra/persistence/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// sponsorshipRepository implements the repository.SponsorshipRepository interface.
type sponsorshipRepository struct {
	coll *mongo.Collection
}

// NewSponsorshipRepository is the constructor for sponsorshipRepository.
func NewSponsorshipRepository(db *mongo.Database) repository.SponsorshipRepository {
	return &sponsorshipRepository{
		coll: db.Collection(model.SponsorshipCollection),
	}
}

// Create persists a new sponsorship. The sponsored child is not updated.
func (repo *sponsorshipRepository) Create(ctx context.Context, sponsorship *entity.Sponsorship) error {
	if _, err := repo.coll.InsertOne(ctx, fromSponsorshipDomain(sponsorship)); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create sponsorship")
	}

	return nil
}

// Count returns the number of recorded sponsorships.
func (repo *sponsorshipRepository) Count(ctx context.Context) (int64, error) {
	count, err := repo.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count sponsorships")
	}

	return count, nil
}

// --- Mapper Functions ---

func fromSponsorshipDomain(data *entity.Sponsorship) *model.SponsorshipModel {
	if data == nil {
		return nil
	}

	return &model.SponsorshipModel{
		ID:            data.ID.ObjectID(),
		FirstName:     data.FirstName,
		LastName:      data.LastName,
		Email:         data.Email,
		ChildID:       toObjectIDPtr(data.ChildID),
		MonthlyAmount: data.MonthlyAmount,
		PaymentMethod: data.PaymentMethod.String(),
		Currency:      data.Currency,
		CreatedAt:     data.CreatedAt,
	}
}
