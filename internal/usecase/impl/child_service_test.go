package impl

import (
	"context"
	"net/http"
	"testing"

	"charity/config"
	"charity/internal/domain/entity"
	domainerrors "charity/internal/domain/errors"
	"charity/internal/domain/identifier"
	"charity/internal/domain/repository"
	mockRepo "charity/internal/mocks/repository"
	mockSvc "charity/internal/mocks/service"
	"charity/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// childServiceFixtures holds all test dependencies for child service tests.
type childServiceFixtures struct {
	service   usecase.ChildUsecase
	childRepo *mockRepo.MockChildRepository
	qrService *mockSvc.MockQRCodeService
}

func createTestChildService(t *testing.T, cfg *config.Config) childServiceFixtures {
	childRepo := mockRepo.NewMockChildRepository(t)
	qrService := mockSvc.NewMockQRCodeService(t)

	return childServiceFixtures{
		service:   NewChildService(childRepo, qrService, cfg),
		childRepo: childRepo,
		qrService: qrService,
	}
}

func appError(t *testing.T, err error) domainerrors.AppError {
	t.Helper()

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %v", err)

	return appErr
}

func TestChildService_ListChildren(t *testing.T) {
	fx := createTestChildService(t, nil)
	ctx := context.Background()

	children := []*entity.Child{
		{ID: identifier.Generate(), Name: "Maria", IsSponsored: false},
		{ID: identifier.Generate(), Name: "David", IsSponsored: true},
	}
	fx.childRepo.EXPECT().FindAll(ctx).Return(children, nil)

	got, err := fx.service.ListChildren(ctx)
	require.NoError(t, err)
	assert.Equal(t, children, got)
}

func TestChildService_ListChildren_RepositoryError(t *testing.T) {
	fx := createTestChildService(t, nil)
	ctx := context.Background()

	fx.childRepo.EXPECT().FindAll(ctx).Return(nil, errors.New("connection reset"))

	_, err := fx.service.ListChildren(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list children")
}

func TestChildService_ListAvailableChildren(t *testing.T) {
	five := 5
	zero := 0
	negative := -3

	tests := []struct {
		name       string
		cfg        *config.Config
		region     string
		limit      *int
		wantFilter *entity.AvailableChildrenFilter
		wantCode   int
	}{
		{
			name:       "default limit",
			wantFilter: &entity.AvailableChildrenFilter{Limit: 12},
		},
		{
			name:       "configured default limit",
			cfg:        &config.Config{Children: &config.ChildrenConfig{DefaultAvailableLimit: 4}},
			wantFilter: &entity.AvailableChildrenFilter{Limit: 4},
		},
		{
			name:       "explicit limit and region",
			region:     "Kenya",
			limit:      &five,
			wantFilter: &entity.AvailableChildrenFilter{Region: "Kenya", Limit: 5},
		},
		{
			name:     "zero limit rejected",
			limit:    &zero,
			wantCode: http.StatusUnprocessableEntity,
		},
		{
			name:     "negative limit rejected",
			limit:    &negative,
			wantCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestChildService(t, tt.cfg)
			ctx := context.Background()

			if tt.wantFilter != nil {
				fx.childRepo.EXPECT().FindAvailable(ctx, *tt.wantFilter).Return([]*entity.Child{}, nil)
			}

			children, err := fx.service.ListAvailableChildren(ctx, tt.region, tt.limit)
			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, appError(t, err).HTTPCode())

				return
			}
			require.NoError(t, err)
			assert.NotNil(t, children)
		})
	}
}

func TestChildService_GetFeaturedChild(t *testing.T) {
	fx := createTestChildService(t, nil)
	ctx := context.Background()

	child := &entity.Child{ID: identifier.Generate(), Name: "Fatima"}
	fx.childRepo.EXPECT().FindFeatured(ctx).Return(child, nil).Once()

	got, err := fx.service.GetFeaturedChild(ctx)
	require.NoError(t, err)
	assert.Equal(t, child, got)

	fx.childRepo.EXPECT().FindFeatured(ctx).Return(nil, repository.ErrChildNotFound).Once()

	_, err = fx.service.GetFeaturedChild(ctx)
	require.Error(t, err)
	appErr := appError(t, err)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
	assert.Equal(t, "No featured child found", appErr.Message())
}

func TestChildService_GetChild(t *testing.T) {
	ctx := context.Background()
	id := identifier.Generate()

	t.Run("found", func(t *testing.T) {
		fx := createTestChildService(t, nil)
		child := &entity.Child{ID: id, Name: "Maria"}
		fx.childRepo.EXPECT().FindByID(ctx, id).Return(child, nil)

		got, err := fx.service.GetChild(ctx, id.String())
		require.NoError(t, err)
		assert.Equal(t, child, got)
	})

	t.Run("malformed identifier", func(t *testing.T) {
		fx := createTestChildService(t, nil)

		_, err := fx.service.GetChild(ctx, "not-a-valid-id")
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidChildID)
		assert.Equal(t, "Invalid child ID", appError(t, err).Message())
	})

	t.Run("not found", func(t *testing.T) {
		fx := createTestChildService(t, nil)
		fx.childRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrChildNotFound)

		_, err := fx.service.GetChild(ctx, id.String())
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrChildNotFound)
	})

	t.Run("repository failure", func(t *testing.T) {
		fx := createTestChildService(t, nil)
		fx.childRepo.EXPECT().FindByID(ctx, id).Return(nil, errors.New("timeout"))

		_, err := fx.service.GetChild(ctx, id.String())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to find child by ID")
	})
}

func TestChildService_GetChildQRCode(t *testing.T) {
	ctx := context.Background()
	id := identifier.Generate()

	t.Run("success", func(t *testing.T) {
		fx := createTestChildService(t, nil)
		fx.childRepo.EXPECT().FindByID(ctx, id).Return(&entity.Child{ID: id}, nil)
		fx.qrService.EXPECT().GenerateChildQR(id).Return([]byte{0x89, 0x50}, nil)

		png, err := fx.service.GetChildQRCode(ctx, id.String())
		require.NoError(t, err)
		assert.Equal(t, []byte{0x89, 0x50}, png)
	})

	t.Run("child missing", func(t *testing.T) {
		fx := createTestChildService(t, nil)
		fx.childRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrChildNotFound)

		_, err := fx.service.GetChildQRCode(ctx, id.String())
		assert.ErrorIs(t, err, domainerrors.ErrChildNotFound)
	})

	t.Run("generator failure", func(t *testing.T) {
		fx := createTestChildService(t, nil)
		fx.childRepo.EXPECT().FindByID(ctx, id).Return(&entity.Child{ID: id}, nil)
		fx.qrService.EXPECT().GenerateChildQR(id).Return(nil, errors.New("data too long"))

		_, err := fx.service.GetChildQRCode(ctx, id.String())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to generate child QR code")
	})
}
