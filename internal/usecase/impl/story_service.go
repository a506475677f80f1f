package impl

import (
	"context"

	"charity/internal/domain/entity"
	domainerrors "charity/internal/domain/errors"
	"charity/internal/domain/identifier"
	"charity/internal/domain/repository"
	"charity/internal/usecase"

	"github.com/pkg/errors"
)

type storyService struct {
	storyRepo repository.StoryRepository
}

// NewStoryService creates a new story service instance
func NewStoryService(storyRepo repository.StoryRepository) usecase.StoryUsecase {
	return &storyService{
		storyRepo: storyRepo,
	}
}

// ListStories retrieves every story
func (s *storyService) ListStories(ctx context.Context) ([]*entity.Story, error) {
	stories, err := s.storyRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stories")
	}

	return stories, nil
}

// GetStory retrieves a story by its textual identifier
func (s *storyService) GetStory(ctx context.Context, rawID string) (*entity.Story, error) {
	id, err := identifier.Parse(rawID)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidStoryID, err.Error())
	}

	story, err := s.storyRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrStoryNotFound) {
			return nil, errors.Wrap(domainerrors.ErrStoryNotFound, "story "+id.String())
		}

		return nil, errors.Wrap(err, "failed to find story by ID")
	}

	return story, nil
}
