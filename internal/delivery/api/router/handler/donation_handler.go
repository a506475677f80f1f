package handler

import (
	"net/http"
	"strconv"

	"charity/internal/delivery/api/response"
	"charity/internal/domain/schema"
	"charity/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const donationCreatedMessage = "Donation successful!"

// DonationHandlerParams holds dependencies for DonationHandler, injected by Fx.
type DonationHandlerParams struct {
	fx.In

	DonationUC usecase.DonationUsecase
}

// DonationHandler holds dependencies for donation-related handlers
type DonationHandler struct {
	donationUC usecase.DonationUsecase
}

// NewDonationHandler is the constructor for DonationHandler
func NewDonationHandler(params DonationHandlerParams) *DonationHandler {
	return &DonationHandler{
		donationUC: params.DonationUC,
	}
}

// ImpactStatsResponse reports how many donations and sponsorships were recorded
type ImpactStatsResponse struct {
	TotalDonations   DonationTotals    `json:"totalDonations"`
	ChildSponsorship SponsorshipTotals `json:"childSponsorship"`
}

type DonationTotals struct {
	Count int64 `json:"count"`
}

type SponsorshipTotals struct {
	Count          int64  `json:"count"`
	TotalSponsored string `json:"totalSponsored"`
}

// CreateDonation handles recording a donation
func (h *DonationHandler) CreateDonation(c echo.Context) error {
	var req schema.DonationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	donation, err := req.Normalize()
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.donationUC.CreateDonation(c.Request().Context(), donation); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusCreated, donationCreatedMessage)
}

// GetImpactStats handles reporting donation and sponsorship counts
func (h *DonationHandler) GetImpactStats(c echo.Context) error {
	stats, err := h.donationUC.GetImpactStats(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ImpactStatsResponse{
		TotalDonations: DonationTotals{Count: stats.Donations},
		ChildSponsorship: SponsorshipTotals{
			Count:          stats.Sponsorships,
			TotalSponsored: strconv.FormatInt(stats.Sponsorships, 10) + " children",
		},
	})
}
