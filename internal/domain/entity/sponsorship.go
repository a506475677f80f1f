package entity

import (
	"time"

	"charity/internal/domain/identifier"
)

// Sponsorship is a monthly commitment, optionally tied to one child.
type Sponsorship struct {
	ID            identifier.ID
	FirstName     string
	LastName      string
	Email         string
	ChildID       *identifier.ID // Nil means the sponsorship goes to the general pool.
	MonthlyAmount float64
	PaymentMethod PaymentMethod
	Currency      string
	CreatedAt     time.Time
}
