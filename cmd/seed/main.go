package main

import (
	"context"
	"log/slog"

	"charity/config"
	"charity/internal/domain/entity"
	"charity/internal/domain/identifier"
	"charity/internal/domain/repository"
	"charity/internal/domain/schema"
	logs "charity/internal/infra/log"
	"charity/internal/infra/persistence/mongodb"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type seedParams struct {
	fx.In
	fx.Lifecycle

	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	ChildRepo  repository.ChildRepository
}

func main() {
	fx.New(
		fx.Provide(
			config.New,
			logs.New,
			mongodb.New,
			mongodb.NewDatabase,
			mongodb.NewChildRepository,
		),
		fx.Invoke(registerSeed),
	).Run()
}

// registerSeed runs once the database connection is up and stops the app afterwards.
func registerSeed(params seedParams) {
	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			exitCode := 0
			if err := seedChildren(ctx, params.ChildRepo, sampleChildren); err != nil {
				params.Logger.Error("Failed to seed children", slog.Any("error", err))
				exitCode = 1
			} else {
				params.Logger.Info("Database has been re-seeded with sample children", slog.Int("count", len(sampleChildren)))
			}

			return params.Shutdowner.Shutdown(fx.ExitCode(exitCode))
		},
	})
}

// seedChildren validates every record before replacing the stored children.
func seedChildren(ctx context.Context, repo repository.ChildRepository, requests []schema.ChildRequest) error {
	validator := schema.NewValidator()

	children := make([]*entity.Child, 0, len(requests))
	for i := range requests {
		if err := validator.Validate(&requests[i]); err != nil {
			return errors.Wrapf(err, "sample child %d", i)
		}

		child := requests[i].Normalize()
		child.ID = identifier.Generate()
		children = append(children, child)
	}

	if err := repo.Seed(ctx, children); err != nil {
		return errors.Wrap(err, "failed to seed children")
	}

	return nil
}
