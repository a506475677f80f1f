package mongodb

import (
	"context"

	"charity/internal/domain/entity"
	domainerrors "charity/internal/domain/errors"
	"charity/internal/domain/identifier"
	"charity/internal/domain/repository"
	"charity/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// childRepository implements the repository.ChildRepository interface.
type childRepository struct {
	coll *mongo.Collection
}

// NewChildRepository is the constructor for childRepository.
func NewChildRepository(db *mongo.Database) repository.ChildRepository {
	return &childRepository{
		coll: db.Collection(model.ChildCollection),
	}
}

// FindAll retrieves every child.
func (repo *childRepository) FindAll(ctx context.Context) ([]*entity.Child, error) {
	return repo.find(ctx, bson.D{}, options.Find())
}

// FindAvailable retrieves unsponsored children, optionally restricted to a country.
func (repo *childRepository) FindAvailable(ctx context.Context, filter entity.AvailableChildrenFilter) ([]*entity.Child, error) {
	query := unsponsoredFilter()
	if filter.Region != "" {
		query = append(query, bson.E{Key: "country", Value: filter.Region})
	}

	opts := options.Find()
	if filter.Limit > 0 {
		opts.SetLimit(int64(filter.Limit))
	}

	return repo.find(ctx, query, opts)
}

// FindFeatured retrieves the first unsponsored child in natural order.
func (repo *childRepository) FindFeatured(ctx context.Context) (*entity.Child, error) {
	return repo.findOne(ctx, unsponsoredFilter())
}

// FindByID retrieves a child by its identifier.
func (repo *childRepository) FindByID(ctx context.Context, id identifier.ID) (*entity.Child, error) {
	return repo.findOne(ctx, bson.D{{Key: "_id", Value: id.ObjectID()}})
}

// Seed removes every stored child, then inserts the given ones.
func (repo *childRepository) Seed(ctx context.Context, children []*entity.Child) error {
	if _, err := repo.coll.DeleteMany(ctx, bson.D{}); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear children")
	}

	if len(children) == 0 {
		return nil
	}

	docs := make([]any, 0, len(children))
	for _, child := range children {
		docs = append(docs, fromChildDomain(child))
	}

	if _, err := repo.coll.InsertMany(ctx, docs); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to insert children")
	}

	return nil
}

func (repo *childRepository) find(ctx context.Context, filter bson.D, opts *options.FindOptions) ([]*entity.Child, error) {
	cursor, err := repo.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find children")
	}

	var childModels []*model.ChildModel
	if err := cursor.All(ctx, &childModels); err != nil {
		return nil, errors.Wrap(err, "failed to decode children")
	}

	children := make([]*entity.Child, 0, len(childModels))
	for _, childM := range childModels {
		children = append(children, toChildDomain(childM))
	}

	return children, nil
}

func (repo *childRepository) findOne(ctx context.Context, filter bson.D) (*entity.Child, error) {
	var childM model.ChildModel

	if err := repo.coll.FindOne(ctx, filter).Decode(&childM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrChildNotFound
		}

		return nil, errors.Wrap(err, "failed to find child")
	}

	return toChildDomain(&childM), nil
}

// unsponsoredFilter also matches documents without is_sponsored, which decode as unsponsored.
func unsponsoredFilter() bson.D {
	return bson.D{{Key: "is_sponsored", Value: bson.D{{Key: "$ne", Value: true}}}}
}

// --- Mapper Functions ---

// toChildDomain converts a ChildModel to a domain Child entity.
func toChildDomain(data *model.ChildModel) *entity.Child {
	if data == nil {
		return nil
	}

	return &entity.Child{
		ID:          identifier.FromObjectID(data.ID),
		Name:        data.Name,
		Country:     data.Country,
		Age:         data.Age,
		PhotoURL:    data.PhotoURL,
		Story:       data.Story,
		IsSponsored: data.IsSponsored,
	}
}

// fromChildDomain converts a domain Child entity to a ChildModel.
func fromChildDomain(data *entity.Child) *model.ChildModel {
	if data == nil {
		return nil
	}

	return &model.ChildModel{
		ID:          data.ID.ObjectID(),
		Name:        data.Name,
		Country:     data.Country,
		Age:         data.Age,
		PhotoURL:    data.PhotoURL,
		Story:       data.Story,
		IsSponsored: data.IsSponsored,
	}
}
