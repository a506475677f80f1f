package schema

import "charity/internal/domain/entity"

// SponsorshipRequest is the schema of POST /sponsorships.
type SponsorshipRequest struct {
	FirstName     string               `json:"firstName" validate:"required"`
	LastName      string               `json:"lastName" validate:"required"`
	Email         string               `json:"email" validate:"required"`
	ChildID       *string              `json:"childId"`
	MonthlyAmount *float64             `json:"monthlyAmount" validate:"required,gt=0"`
	PaymentMethod entity.PaymentMethod `json:"paymentMethod" validate:"required,enum"`
	Currency      string               `json:"currency" validate:"required"`
}

// Normalize converts a validated request into a Sponsorship.
// A malformed childId fails with an INVALID_IDENTIFIER error.
func (r *SponsorshipRequest) Normalize() (*entity.Sponsorship, error) {
	childID, err := parseOptionalID("childId", r.ChildID)
	if err != nil {
		return nil, err
	}

	sponsorship := &entity.Sponsorship{
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		Email:         r.Email,
		ChildID:       childID,
		PaymentMethod: r.PaymentMethod,
		Currency:      r.Currency,
	}
	if r.MonthlyAmount != nil {
		sponsorship.MonthlyAmount = *r.MonthlyAmount
	}

	return sponsorship, nil
}
