package main

import (
	"context"
	"log/slog"
	"os"

	"charity/config"
	"charity/internal/delivery"
	"charity/internal/delivery/api"
	"charity/internal/delivery/api/router/handler"
	logs "charity/internal/infra/log"
	"charity/internal/infra/persistence/mongodb"
	"charity/internal/infra/qrcode"
	"charity/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		mongodb.New,
		mongodb.NewDatabase,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			mongodb.NewChildRepository,
			mongodb.NewStoryRepository,
			mongodb.NewDonationRepository,
			mongodb.NewSponsorshipRepository,
			mongodb.NewSubscriberRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			qrcode.NewFromConfig,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewChildService,
			impl.NewStoryService,
			impl.NewDonationService,
			impl.NewSponsorshipService,
			impl.NewNewsletterService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewChildHandler,
			handler.NewStoryHandler,
			handler.NewDonationHandler,
			handler.NewSponsorshipHandler,
			handler.NewNewsletterHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			for _, delivery := range params.Deliveries {
				go func() {
					if err := delivery.Serve(ctx); err != nil {
						slog.Error("Failed to start server", slog.Any("error", err))
						os.Exit(1)
					}
				}()
			}

			return nil
		},
	})
}
