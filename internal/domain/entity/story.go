package entity

import "charity/internal/domain/identifier"

// Story is a published impact story.
type Story struct {
	ID       identifier.ID
	Title    string
	Content  string
	ImageURL string
}
