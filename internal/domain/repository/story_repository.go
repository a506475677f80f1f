package repository

import (
	"context"

	"charity/internal/domain/entity"
	"charity/internal/domain/identifier"

	"github.com/pkg/errors"
)

// Domain-specific errors for story persistence.
var (
	// ErrStoryNotFound is returned when no story matches the query.
	ErrStoryNotFound = errors.New("story not found")
)

// StoryRepository defines the interface for story-related database operations.
type StoryRepository interface {
	// FindAll retrieves every story.
	FindAll(ctx context.Context) ([]*entity.Story, error)

	// FindByID retrieves a story by its identifier.
	FindByID(ctx context.Context, id identifier.ID) (*entity.Story, error)
}
