package handler

import (
	"net/http"

	"charity/internal/delivery/api/response"
	"charity/internal/domain/schema"
	"charity/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const subscribedMessage = "Subscribed to newsletter successfully"

// NewsletterHandlerParams holds dependencies for NewsletterHandler, injected by Fx.
type NewsletterHandlerParams struct {
	fx.In

	NewsletterUC usecase.NewsletterUsecase
}

// NewsletterHandler holds dependencies for newsletter handlers
type NewsletterHandler struct {
	newsletterUC usecase.NewsletterUsecase
}

// NewNewsletterHandler is the constructor for NewsletterHandler
func NewNewsletterHandler(params NewsletterHandlerParams) *NewsletterHandler {
	return &NewsletterHandler{
		newsletterUC: params.NewsletterUC,
	}
}

// Subscribe handles a newsletter sign-up
func (h *NewsletterHandler) Subscribe(c echo.Context) error {
	var req schema.SubscriberRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.newsletterUC.Subscribe(c.Request().Context(), req.Normalize()); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusCreated, subscribedMessage)
}
