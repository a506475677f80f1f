package handler

import (
	"net/http"

	"charity/internal/delivery/api/response"
	"charity/internal/domain/entity"
	domainerrors "charity/internal/domain/errors"
	"charity/internal/domain/identifier"
	"charity/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ChildHandlerParams holds dependencies for ChildHandler, injected by Fx.
type ChildHandlerParams struct {
	fx.In

	ChildUC usecase.ChildUsecase
}

// ChildHandler holds dependencies for child-related handlers
type ChildHandler struct {
	childUC usecase.ChildUsecase
}

// NewChildHandler is the constructor for ChildHandler
func NewChildHandler(params ChildHandlerParams) *ChildHandler {
	return &ChildHandler{
		childUC: params.ChildUC,
	}
}

// ChildResponse is the JSON representation of a child
type ChildResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Country     string `json:"country"`
	Age         int    `json:"age"`
	PhotoURL    string `json:"photoUrl"`
	Story       string `json:"story"`
	IsSponsored bool   `json:"isSponsored"`
}

func newChildResponse(child *entity.Child) *ChildResponse {
	return &ChildResponse{
		ID:          identifier.Format(child.ID),
		Name:        child.Name,
		Country:     child.Country,
		Age:         child.Age,
		PhotoURL:    child.PhotoURL,
		Story:       child.Story,
		IsSponsored: child.IsSponsored,
	}
}

func newChildResponses(children []*entity.Child) []*ChildResponse {
	res := make([]*ChildResponse, 0, len(children))
	for _, child := range children {
		res = append(res, newChildResponse(child))
	}

	return res
}

// ListChildren handles listing every child
func (h *ChildHandler) ListChildren(c echo.Context) error {
	children, err := h.childUC.ListChildren(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newChildResponses(children))
}

// ListAvailableChildren handles listing unsponsored children, filtered by the region and limit query parameters
func (h *ChildHandler) ListAvailableChildren(c echo.Context) error {
	var limit *int
	if c.QueryParams().Has("limit") {
		var value int
		if err := echo.QueryParamsBinder(c).MustInt("limit", &value).BindError(); err != nil {
			return response.HandleAppError(c, domainerrors.NewValidationError(domainerrors.FieldError{
				Field:   "limit",
				Message: "limit must be an integer",
			}))
		}
		limit = &value
	}

	children, err := h.childUC.ListAvailableChildren(c.Request().Context(), c.QueryParam("region"), limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newChildResponses(children))
}

// GetFeaturedChild handles retrieving the featured child
func (h *ChildHandler) GetFeaturedChild(c echo.Context) error {
	child, err := h.childUC.GetFeaturedChild(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newChildResponse(child))
}

// GetChild handles retrieving a child by ID
func (h *ChildHandler) GetChild(c echo.Context) error {
	child, err := h.childUC.GetChild(c.Request().Context(), c.Param("child_id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newChildResponse(child))
}

// GetChildQRCode handles rendering the QR code of a child's sponsor page
func (h *ChildHandler) GetChildQRCode(c echo.Context) error {
	png, err := h.childUC.GetChildQRCode(c.Request().Context(), c.Param("child_id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
