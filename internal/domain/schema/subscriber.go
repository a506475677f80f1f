package schema

import "charity/internal/domain/entity"

// SubscriberRequest is the schema of POST /newsletter/subscribe.
type SubscriberRequest struct {
	Email       string   `json:"email" validate:"required,email"`
	FirstName   *string  `json:"firstName"`
	LastName    *string  `json:"lastName"`
	Preferences []string `json:"preferences" validate:"omitempty,dive,required"`
}

// Normalize converts a validated request into a Subscriber.
func (r *SubscriberRequest) Normalize() *entity.Subscriber {
	return &entity.Subscriber{
		Email:       r.Email,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Preferences: r.Preferences,
	}
}
