package handler

import (
	"net/http"

	"charity/internal/delivery/api/response"
	"charity/internal/domain/entity"
	"charity/internal/domain/identifier"
	"charity/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// StoryHandlerParams holds dependencies for StoryHandler, injected by Fx.
type StoryHandlerParams struct {
	fx.In

	StoryUC usecase.StoryUsecase
}

// StoryHandler holds dependencies for story-related handlers
type StoryHandler struct {
	storyUC usecase.StoryUsecase
}

// NewStoryHandler is the constructor for StoryHandler
func NewStoryHandler(params StoryHandlerParams) *StoryHandler {
	return &StoryHandler{
		storyUC: params.StoryUC,
	}
}

// StoryResponse is the JSON representation of a story
type StoryResponse struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	ImageURL string `json:"imageUrl"`
}

func newStoryResponse(story *entity.Story) *StoryResponse {
	return &StoryResponse{
		ID:       identifier.Format(story.ID),
		Title:    story.Title,
		Content:  story.Content,
		ImageURL: story.ImageURL,
	}
}

// ListStories handles listing every story
func (h *StoryHandler) ListStories(c echo.Context) error {
	stories, err := h.storyUC.ListStories(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	res := make([]*StoryResponse, 0, len(stories))
	for _, story := range stories {
		res = append(res, newStoryResponse(story))
	}

	return response.Success(c, http.StatusOK, res)
}

// GetStory handles retrieving a story by ID
func (h *StoryHandler) GetStory(c echo.Context) error {
	story, err := h.storyUC.GetStory(c.Request().Context(), c.Param("story_id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newStoryResponse(story))
}
