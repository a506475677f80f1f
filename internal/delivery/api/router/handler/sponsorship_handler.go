package handler

import (
	"net/http"
	"time"

	"charity/internal/delivery/api/response"
	"charity/internal/domain/entity"
	"charity/internal/domain/identifier"
	"charity/internal/domain/schema"
	"charity/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const sponsorshipCreatedMessage = "Sponsorship created successfully"

// SponsorshipHandlerParams holds dependencies for SponsorshipHandler, injected by Fx.
type SponsorshipHandlerParams struct {
	fx.In

	SponsorshipUC usecase.SponsorshipUsecase
}

// SponsorshipHandler holds dependencies for sponsorship-related handlers
type SponsorshipHandler struct {
	sponsorshipUC usecase.SponsorshipUsecase
}

// NewSponsorshipHandler is the constructor for SponsorshipHandler
func NewSponsorshipHandler(params SponsorshipHandlerParams) *SponsorshipHandler {
	return &SponsorshipHandler{
		sponsorshipUC: params.SponsorshipUC,
	}
}

// SponsorshipResponse is the JSON representation of a stored sponsorship
type SponsorshipResponse struct {
	ID            string    `json:"id"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	Email         string    `json:"email"`
	ChildID       *string   `json:"childId"`
	MonthlyAmount float64   `json:"monthlyAmount"`
	PaymentMethod string    `json:"paymentMethod"`
	Currency      string    `json:"currency"`
	CreatedAt     time.Time `json:"createdAt"`
}

func newSponsorshipResponse(sponsorship *entity.Sponsorship) *SponsorshipResponse {
	return &SponsorshipResponse{
		ID:            identifier.Format(sponsorship.ID),
		FirstName:     sponsorship.FirstName,
		LastName:      sponsorship.LastName,
		Email:         sponsorship.Email,
		ChildID:       identifier.FormatPtr(sponsorship.ChildID),
		MonthlyAmount: sponsorship.MonthlyAmount,
		PaymentMethod: sponsorship.PaymentMethod.String(),
		Currency:      sponsorship.Currency,
		CreatedAt:     sponsorship.CreatedAt,
	}
}

// CreateSponsorship handles recording a sponsorship
func (h *SponsorshipHandler) CreateSponsorship(c echo.Context) error {
	var req schema.SponsorshipRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	sponsorship, err := req.Normalize()
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.sponsorshipUC.CreateSponsorship(c.Request().Context(), sponsorship); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.MessageWithData(c, http.StatusCreated, sponsorshipCreatedMessage, newSponsorshipResponse(sponsorship))
}
