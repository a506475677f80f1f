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

// donationRepository implements the repository.DonationRepository interface.
type donationRepository struct {
	coll *mongo.Collection
}

// NewDonationRepository is the constructor for donationRepository.
func NewDonationRepository(db *mongo.Database) repository.DonationRepository {
	return &donationRepository{
		coll: db.Collection(model.DonationCollection),
	}
}

// Create persists a new donation.
func (repo *donationRepository) Create(ctx context.Context, donation *entity.Donation) error {
	if _, err := repo.coll.InsertOne(ctx, fromDonationDomain(donation)); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create donation")
	}

	return nil
}

// Count returns the number of recorded donations.
func (repo *donationRepository) Count(ctx context.Context) (int64, error) {
	count, err := repo.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count donations")
	}

	return count, nil
}

// --- Mapper Functions ---

// fromDonationDomain converts a domain Donation entity to a DonationModel.
func fromDonationDomain(data *entity.Donation) *model.DonationModel {
	if data == nil {
		return nil
	}

	var paymentMethod *string
	if data.PaymentMethod != nil {
		pm := data.PaymentMethod.String()
		paymentMethod = &pm
	}

	return &model.DonationModel{
		ID:            data.ID.ObjectID(),
		FirstName:     data.FirstName,
		LastName:      data.LastName,
		Email:         data.Email,
		Phone:         data.Phone,
		Amount:        data.Amount,
		Currency:      data.Currency,
		ItemType:      data.ItemType,
		Description:   data.Description,
		Type:          data.Type.String(),
		Category:      data.Category.String(),
		PaymentMethod: paymentMethod,
		ChildID:       toObjectIDPtr(data.ChildID),
		CreatedAt:     data.CreatedAt,
	}
}
