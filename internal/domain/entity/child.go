package entity

import "charity/internal/domain/identifier"

// Child is a child who can be sponsored.
type Child struct {
	ID          identifier.ID
	Name        string
	Country     string
	Age         int
	PhotoURL    string
	Story       string
	IsSponsored bool // Never flipped by this service; a created sponsorship does not update it.
}

// AvailableChildrenFilter narrows the listing of children who are not yet sponsored.
type AvailableChildrenFilter struct {
	Region string // Matched against Country when non-empty.
	Limit  int
}
