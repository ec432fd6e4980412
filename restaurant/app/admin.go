package app

import (
	"context"

	"github.com/Astemirdum/friendly-eats/pkg/logger"
	"github.com/Astemirdum/friendly-eats/pkg/postgres"
	"github.com/Astemirdum/friendly-eats/restaurant/config"
	"github.com/Astemirdum/friendly-eats/restaurant/internal/repository"
	"github.com/Astemirdum/friendly-eats/restaurant/internal/service"
	"github.com/Astemirdum/friendly-eats/restaurant/migrations"
)

// Migrate applies the embedded migrations and exits.
func Migrate(ctx context.Context, cfg *config.Config) error {
	db, err := postgres.NewPostgresDB(ctx, &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		return err
	}
	db.Close()
	return nil
}

// Seed adds n random restaurants with reviews.
func Seed(ctx context.Context, cfg *config.Config, n int) (int, error) {
	log := logger.NewLogger(cfg.Log, "eatsctl")
	defer log.Sync() //nolint:errcheck

	db, err := postgres.NewPostgresDB(ctx, &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		return 0, err
	}
	defer db.Close()

	repo, err := repository.NewRepository(db, log)
	if err != nil {
		return 0, err
	}
	svc := service.NewService(repo, nil, nil, nil, nil, log)
	return svc.AddSampleRestaurantsN(ctx, n)
}
