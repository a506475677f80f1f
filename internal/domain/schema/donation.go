package schema

import "charity/internal/domain/entity"

// DonationRequest is the schema of POST /donations.
//
// Amount and currency are expected for every category except "items", and
// itemType and description only for "items", but neither rule is enforced:
// only the unconditional fields and the enumerations are checked.
type DonationRequest struct {
	FirstName     string                  `json:"firstName" validate:"required"`
	LastName      string                  `json:"lastName" validate:"required"`
	Email         string                  `json:"email" validate:"required"`
	Phone         *string                 `json:"phone"`
	Amount        *float64                `json:"amount"`
	Currency      *string                 `json:"currency"`
	ItemType      *string                 `json:"itemType"`
	Description   *string                 `json:"description"`
	Type          entity.DonationType     `json:"type" validate:"required,enum"`
	Category      entity.DonationCategory `json:"category" validate:"required,enum"`
	PaymentMethod *entity.PaymentMethod   `json:"paymentMethod" validate:"omitempty,enum"`
	ChildID       *string                 `json:"childId"`
}

// Normalize converts a validated request into a Donation.
// A malformed childId fails with an INVALID_IDENTIFIER error.
func (r *DonationRequest) Normalize() (*entity.Donation, error) {
	childID, err := parseOptionalID("childId", r.ChildID)
	if err != nil {
		return nil, err
	}

	return &entity.Donation{
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		Email:         r.Email,
		Phone:         r.Phone,
		Amount:        r.Amount,
		Currency:      r.Currency,
		ItemType:      r.ItemType,
		Description:   r.Description,
		Type:          r.Type,
		Category:      r.Category,
		PaymentMethod: r.PaymentMethod,
		ChildID:       childID,
	}, nil
}
