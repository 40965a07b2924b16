// cmd/seeder/main.go
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/unclebandit/mvc-rest-api/internal/app"
	"github.com/unclebandit/mvc-rest-api/internal/bootstrap"
	"github.com/unclebandit/mvc-rest-api/internal/config"
	"github.com/unclebandit/mvc-rest-api/internal/db"
	"github.com/unclebandit/mvc-rest-api/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	logger := logging.New(cfg)
	ctx := logger.WithContext(context.Background())

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error().Err(err).Msg("seeding failed")
		os.Exit(1)
	}
	logger.Info().Msg("seeding completed")
}

// run migrates (postgres only) and seeds. Connections are closed before it
// returns, on success and failure alike.
func run(ctx context.Context, cfg *config.Config, logger zerolog.Logger) error {
	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("initialise storage: %w", err)
	}
	defer a.Close()

	return seed(ctx, a)
}

func seed(ctx context.Context, a *app.App) error {
	if a.DB != nil {
		if err := db.Migrate(a.DB, "up"); err != nil {
			return err
		}
	}
	return bootstrap.Load(ctx, a.Customers, a.Vendors)
}
