// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"charity/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ChildHandler       *handler.ChildHandler
	StoryHandler       *handler.StoryHandler
	DonationHandler    *handler.DonationHandler
	SponsorshipHandler *handler.SponsorshipHandler
	NewsletterHandler  *handler.NewsletterHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	childHandler       *handler.ChildHandler
	storyHandler       *handler.StoryHandler
	donationHandler    *handler.DonationHandler
	sponsorshipHandler *handler.SponsorshipHandler
	newsletterHandler  *handler.NewsletterHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		childHandler:       params.ChildHandler,
		storyHandler:       params.StoryHandler,
		donationHandler:    params.DonationHandler,
		sponsorshipHandler: params.SponsorshipHandler,
		newsletterHandler:  params.NewsletterHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/", handler.Root)
	e.GET("/health", handler.HealthCheck)

	childrenGroup := e.Group("/children")
	{
		childrenGroup.GET("", r.childHandler.ListChildren)
		// Static segments are matched before :child_id.
		childrenGroup.GET("/available", r.childHandler.ListAvailableChildren)
		childrenGroup.GET("/featured", r.childHandler.GetFeaturedChild)
		childrenGroup.GET("/:child_id", r.childHandler.GetChild)
		childrenGroup.GET("/:child_id/qr", r.childHandler.GetChildQRCode)
	}

	storiesGroup := e.Group("/stories")
	{
		storiesGroup.GET("", r.storyHandler.ListStories)
		storiesGroup.GET("/:story_id", r.storyHandler.GetStory)
	}

	donationsGroup := e.Group("/donations")
	{
		donationsGroup.POST("", r.donationHandler.CreateDonation)
		donationsGroup.GET("/impact-stats", r.donationHandler.GetImpactStats)
	}

	e.POST("/sponsorships", r.sponsorshipHandler.CreateSponsorship)
	e.POST("/newsletter/subscribe", r.newsletterHandler.Subscribe)
}
