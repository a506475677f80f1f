package entity

import (
	"time"

	"charity/internal/domain/identifier"
)

// Donation is a recorded gift. Payment details are stored as submitted; nothing is charged.
type Donation struct {
	ID            identifier.ID
	FirstName     string
	LastName      string
	Email         string
	Phone         *string
	Amount        *float64
	Currency      *string
	ItemType      *string // Only meaningful for the "items" category.
	Description   *string // Only meaningful for the "items" category.
	Type          DonationType
	Category      DonationCategory
	PaymentMethod *PaymentMethod
	ChildID       *identifier.ID // Only meaningful for the "sponsor" category; not checked against children.
	CreatedAt     time.Time
}
