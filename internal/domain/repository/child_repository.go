// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"charity/internal/domain/entity"
	"charity/internal/domain/identifier"

	"github.com/pkg/errors"
)

// Domain-specific errors for child persistence.
var (
	// ErrChildNotFound is returned when no child matches the query.
	ErrChildNotFound = errors.New("child not found")
)

// ChildRepository defines the interface for child-related database operations.
type ChildRepository interface {
	// FindAll retrieves every child.
	FindAll(ctx context.Context) ([]*entity.Child, error)

	// FindAvailable retrieves up to filter.Limit children that are not sponsored,
	// restricted to filter.Region when it is set.
	FindAvailable(ctx context.Context, filter entity.AvailableChildrenFilter) ([]*entity.Child, error)

	// FindFeatured retrieves one child that is not sponsored.
	FindFeatured(ctx context.Context) (*entity.Child, error)

	// FindByID retrieves a child by its identifier.
	FindByID(ctx context.Context, id identifier.ID) (*entity.Child, error)

	// Seed replaces every stored child with the given ones.
	Seed(ctx context.Context, children []*entity.Child) error
}
