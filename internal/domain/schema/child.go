package schema

import "charity/internal/domain/entity"

// ChildRequest is the schema of a child record.
type ChildRequest struct {
	Name        string `json:"name" validate:"required"`
	Country     string `json:"country" validate:"required"`
	Age         *int   `json:"age" validate:"required"`
	PhotoURL    string `json:"photoUrl" validate:"required"`
	Story       string `json:"story" validate:"required"`
	IsSponsored *bool  `json:"isSponsored"`
}

// Normalize converts a validated request into a Child, defaulting IsSponsored to false.
// The identifier is left zero for the caller to assign.
func (r *ChildRequest) Normalize() *entity.Child {
	child := &entity.Child{
		Name:     r.Name,
		Country:  r.Country,
		PhotoURL: r.PhotoURL,
		Story:    r.Story,
	}
	if r.Age != nil {
		child.Age = *r.Age
	}
	if r.IsSponsored != nil {
		child.IsSponsored = *r.IsSponsored
	}

	return child
}
