package usecase

import (
	"context"

	"charity/internal/domain/entity"
)

// StoryUsecase defines the interface for story use cases
type StoryUsecase interface {
	ListStories(ctx context.Context) ([]*entity.Story, error)
	GetStory(ctx context.Context, rawID string) (*entity.Story, error)
}
