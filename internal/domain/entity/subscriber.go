package entity

import (
	"time"

	"charity/internal/domain/identifier"
)

// Subscriber is a newsletter sign-up.
type Subscriber struct {
	ID           identifier.ID
	Email        string
	FirstName    *string
	LastName     *string
	Preferences  []string
	SubscribedAt time.Time
}
