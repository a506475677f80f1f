package usecase

import (
	"context"

	"charity/internal/domain/entity"
)

// ChildUsecase defines the interface for child lookup use cases
type ChildUsecase interface {
	// ListChildren retrieves every child, sponsored or not
	ListChildren(ctx context.Context) ([]*entity.Child, error)

	// ListAvailableChildren retrieves unsponsored children, optionally filtered by country.
	// A nil limit falls back to the configured default.
	ListAvailableChildren(ctx context.Context, region string, limit *int) ([]*entity.Child, error)

	// GetFeaturedChild retrieves one unsponsored child to highlight
	GetFeaturedChild(ctx context.Context) (*entity.Child, error)

	// GetChild retrieves a child by its textual identifier
	GetChild(ctx context.Context, rawID string) (*entity.Child, error)

	// GetChildQRCode renders a PNG QR code linking to the child's sponsor page
	GetChildQRCode(ctx context.Context, rawID string) ([]byte, error)
}
