package mongodb

import (
	"context"

	"charity/internal/domain/entity"
	"charity/internal/domain/identifier"
	"charity/internal/domain/repository"
	"charity/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// storyRepository implements the repository.StoryRepository interface.
type storyRepository struct {
	coll *mongo.Collection
}

// NewStoryRepository is the constructor for storyRepository.
func NewStoryRepository(db *mongo.Database) repository.StoryRepository {
	return &storyRepository{
		coll: db.Collection(model.StoryCollection),
	}
}

// FindAll retrieves every story.
func (repo *storyRepository) FindAll(ctx context.Context) ([]*entity.Story, error) {
	cursor, err := repo.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to find stories")
	}

	var storyModels []*model.StoryModel
	if err := cursor.All(ctx, &storyModels); err != nil {
		return nil, errors.Wrap(err, "failed to decode stories")
	}

	stories := make([]*entity.Story, 0, len(storyModels))
	for _, storyM := range storyModels {
		stories = append(stories, toStoryDomain(storyM))
	}

	return stories, nil
}

// FindByID retrieves a story by its identifier.
func (repo *storyRepository) FindByID(ctx context.Context, id identifier.ID) (*entity.Story, error) {
	var storyM model.StoryModel

	if err := repo.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id.ObjectID()}}).Decode(&storyM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrStoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find story by ID")
	}

	return toStoryDomain(&storyM), nil
}

func toStoryDomain(data *model.StoryModel) *entity.Story {
	if data == nil {
		return nil
	}

	return &entity.Story{
		ID:       identifier.FromObjectID(data.ID),
		Title:    data.Title,
		Content:  data.Content,
		ImageURL: data.ImageURL,
	}
}
