package impl

import (
	"context"

	"charity/config"
	"charity/internal/domain/entity"
	domainerrors "charity/internal/domain/errors"
	"charity/internal/domain/identifier"
	"charity/internal/domain/repository"
	"charity/internal/domain/service"
	"charity/internal/usecase"

	"github.com/pkg/errors"
)

const defaultAvailableLimit = 12

type childService struct {
	childRepo    repository.ChildRepository
	qrService    service.QRCodeService
	defaultLimit int
}

// NewChildService creates a new child service instance
func NewChildService(childRepo repository.ChildRepository, qrService service.QRCodeService, cfg *config.Config) usecase.ChildUsecase {
	limit := defaultAvailableLimit
	if cfg != nil && cfg.Children != nil && cfg.Children.DefaultAvailableLimit > 0 {
		limit = cfg.Children.DefaultAvailableLimit
	}

	return &childService{
		childRepo:    childRepo,
		qrService:    qrService,
		defaultLimit: limit,
	}
}

// ListChildren retrieves every child
func (s *childService) ListChildren(ctx context.Context) ([]*entity.Child, error) {
	children, err := s.childRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list children")
	}

	return children, nil
}

// ListAvailableChildren retrieves unsponsored children
func (s *childService) ListAvailableChildren(ctx context.Context, region string, limit *int) ([]*entity.Child, error) {
	filter := entity.AvailableChildrenFilter{
		Region: region,
		Limit:  s.defaultLimit,
	}

	if limit != nil {
		if *limit <= 0 {
			return nil, errors.WithStack(domainerrors.NewValidationError(domainerrors.FieldError{
				Field:   "limit",
				Message: "limit must be greater than 0",
			}))
		}
		filter.Limit = *limit
	}

	children, err := s.childRepo.FindAvailable(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list available children")
	}

	return children, nil
}

// GetFeaturedChild retrieves the first unsponsored child
func (s *childService) GetFeaturedChild(ctx context.Context) (*entity.Child, error) {
	child, err := s.childRepo.FindFeatured(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrChildNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNoFeaturedChild, "every child is sponsored")
		}

		return nil, errors.Wrap(err, "failed to find featured child")
	}

	return child, nil
}

// GetChild retrieves a child by its textual identifier
func (s *childService) GetChild(ctx context.Context, rawID string) (*entity.Child, error) {
	id, err := identifier.Parse(rawID)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidChildID, err.Error())
	}

	child, err := s.childRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrChildNotFound) {
			return nil, errors.Wrap(domainerrors.ErrChildNotFound, "child "+id.String())
		}

		return nil, errors.Wrap(err, "failed to find child by ID")
	}

	return child, nil
}

// GetChildQRCode renders the sponsor page QR code of an existing child
func (s *childService) GetChildQRCode(ctx context.Context, rawID string) ([]byte, error) {
	child, err := s.GetChild(ctx, rawID)
	if err != nil {
		return nil, err
	}

	png, err := s.qrService.GenerateChildQR(child.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate child QR code")
	}

	return png, nil
}
