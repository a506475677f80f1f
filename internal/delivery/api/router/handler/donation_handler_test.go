package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"charity/internal/domain/entity"
	domainerrors "charity/internal/domain/errors"
	"charity/internal/domain/identifier"
	mockUsecase "charity/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDonationHandler_CreateDonation(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMock  func(uc *mockUsecase.MockDonationUsecase)
		wantStatus int
		wantBody   string
		wantErr    bool
	}{
		{
			name: "sponsor donation with child",
			body: `{"firstName":"A","lastName":"B","email":"a@b.com","amount":40,"currency":"USD","type":"monthly","category":"sponsor","childId":"60c72b2f9b1d8e001f8e4e9a"}`,
			setupMock: func(uc *mockUsecase.MockDonationUsecase) {
				uc.EXPECT().
					CreateDonation(mock.Anything, mock.MatchedBy(func(d *entity.Donation) bool {
						return d.ChildID != nil && d.ChildID.String() == "60c72b2f9b1d8e001f8e4e9a" &&
							d.Amount != nil && *d.Amount == 40
					})).
					Return(nil)
			},
			wantStatus: http.StatusCreated,
			wantBody:   `{"message":"Donation successful!"}`,
		},
		{
			name:       "unknown category",
			body:       `{"firstName":"A","lastName":"B","email":"a@b.com","type":"monthly","category":"education"}`,
			setupMock:  func(uc *mockUsecase.MockDonationUsecase) {},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `{"detail":[{"field":"category","message":"category must be one of [general disaster sponsor items]"}]}`,
		},
		{
			name:       "malformed child id",
			body:       `{"firstName":"A","lastName":"B","email":"a@b.com","type":"monthly","category":"sponsor","childId":"123"}`,
			setupMock:  func(uc *mockUsecase.MockDonationUsecase) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"detail":"Invalid childId"}`,
		},
		{
			name: "storage failure is left to the error handler",
			body: `{"firstName":"A","lastName":"B","email":"a@b.com","type":"one-time","category":"disaster"}`,
			setupMock: func(uc *mockUsecase.MockDonationUsecase) {
				uc.EXPECT().CreateDonation(mock.Anything, mock.Anything).
					Return(domainerrors.NewDatabaseExecuteError(errors.New("write concern"), "failed to create donation"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := mockUsecase.NewMockDonationUsecase(t)
			tt.setupMock(uc)
			h := NewDonationHandler(DonationHandlerParams{DonationUC: uc})

			c, rec := newContext(http.MethodPost, "/donations", tt.body)
			err := h.CreateDonation(c)

			if tt.wantErr {
				var appErr domainerrors.AppError
				require.True(t, errors.As(err, &appErr))
				assert.Equal(t, http.StatusInternalServerError, appErr.HTTPCode())

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestDonationHandler_GetImpactStats(t *testing.T) {
	uc := mockUsecase.NewMockDonationUsecase(t)
	uc.EXPECT().GetImpactStats(mock.Anything).Return(&entity.ImpactStats{Donations: 0, Sponsorships: 0}, nil)
	h := NewDonationHandler(DonationHandlerParams{DonationUC: uc})

	c, rec := newContext(http.MethodGet, "/donations/impact-stats", "")
	require.NoError(t, h.GetImpactStats(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"totalDonations":{"count":0},"childSponsorship":{"count":0,"totalSponsored":"0 children"}}`, rec.Body.String())
}

func TestSponsorshipHandler_CreateSponsorship(t *testing.T) {
	uc := mockUsecase.NewMockSponsorshipUsecase(t)
	uc.EXPECT().
		CreateSponsorship(mock.Anything, mock.AnythingOfType("*entity.Sponsorship")).
		Run(func(_ context.Context, s *entity.Sponsorship) {
			s.ID = identifier.Generate()
			s.CreatedAt = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
		}).
		Return(nil)
	h := NewSponsorshipHandler(SponsorshipHandlerParams{SponsorshipUC: uc})

	c, rec := newContext(http.MethodPost, "/sponsorships",
		`{"firstName":"A","lastName":"B","email":"a@b.com","childId":"60c72b2f9b1d8e001f8e4e9a","monthlyAmount":30,"paymentMethod":"credit_card","currency":"EUR"}`)
	require.NoError(t, h.CreateSponsorship(c))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"message":"Sponsorship created successfully"`)
	assert.Contains(t, rec.Body.String(), `"childId":"60c72b2f9b1d8e001f8e4e9a"`)
	assert.Contains(t, rec.Body.String(), `"createdAt":"2024-05-01T12:00:00Z"`)
}

func TestSponsorshipHandler_CreateSponsorship_MissingFields(t *testing.T) {
	uc := mockUsecase.NewMockSponsorshipUsecase(t)
	h := NewSponsorshipHandler(SponsorshipHandlerParams{SponsorshipUC: uc})

	c, rec := newContext(http.MethodPost, "/sponsorships", `{"firstName":"A","lastName":"B","email":"a@b.com"}`)
	require.NoError(t, h.CreateSponsorship(c))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.JSONEq(t, `{"detail":[
		{"field":"monthlyAmount","message":"monthlyAmount is required"},
		{"field":"paymentMethod","message":"paymentMethod is required"},
		{"field":"currency","message":"currency is required"}
	]}`, rec.Body.String())
}

func TestNewsletterHandler_Subscribe(t *testing.T) {
	uc := mockUsecase.NewMockNewsletterUsecase(t)
	uc.EXPECT().
		Subscribe(mock.Anything, mock.MatchedBy(func(s *entity.Subscriber) bool {
			return s.Email == "reader@example.com" && s.FirstName != nil && *s.FirstName == "Sam"
		})).
		Return(nil)
	h := NewNewsletterHandler(NewsletterHandlerParams{NewsletterUC: uc})

	c, rec := newContext(http.MethodPost, "/newsletter/subscribe", `{"email":"reader@example.com","firstName":"Sam"}`)
	require.NoError(t, h.Subscribe(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"message":"Subscribed to newsletter successfully"}`, rec.Body.String())
}

func TestNewsletterHandler_Subscribe_MalformedBody(t *testing.T) {
	uc := mockUsecase.NewMockNewsletterUsecase(t)
	h := NewNewsletterHandler(NewsletterHandlerParams{NewsletterUC: uc})

	c, rec := newContext(http.MethodPost, "/newsletter/subscribe", `[1,2`)
	require.NoError(t, h.Subscribe(c))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.JSONEq(t, `{"detail":"Invalid request body"}`, rec.Body.String())
}
