package schema

import "charity/internal/domain/entity"

// StoryRequest is the schema of a story record.
type StoryRequest struct {
	Title    string `json:"title" validate:"required"`
	Content  string `json:"content" validate:"required"`
	ImageURL string `json:"imageUrl" validate:"required"`
}

// Normalize converts a validated request into a Story.
func (r *StoryRequest) Normalize() *entity.Story {
	return &entity.Story{
		Title:    r.Title,
		Content:  r.Content,
		ImageURL: r.ImageURL,
	}
}
