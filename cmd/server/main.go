// cmd/server/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/unclebandit/mvc-rest-api/internal/app"
	"github.com/unclebandit/mvc-rest-api/internal/bootstrap"
	"github.com/unclebandit/mvc-rest-api/internal/config"
	"github.com/unclebandit/mvc-rest-api/internal/db"
	"github.com/unclebandit/mvc-rest-api/internal/logging"
	"github.com/unclebandit/mvc-rest-api/internal/server"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	serveCmd := newServeCmd()

	root := &cobra.Command{
		Use:           "server",
		Short:         "Customer and vendor REST API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serveCmd.RunE,
	}
	root.Flags().AddFlagSet(serveCmd.Flags())
	root.AddCommand(serveCmd, newMigrateCmd())
	return root
}

func newServeCmd() *cobra.Command {
	var migrate, seed bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger := logging.New(cfg)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			ctx = logger.WithContext(ctx)

			return serve(ctx, cfg, logger, migrate, seed || cfg.Seed.Enabled)
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", false, "apply database migrations before serving (postgres only)")
	cmd.Flags().BoolVar(&seed, "seed", false, "load the starter data set into empty stores")
	return cmd
}

func serve(ctx context.Context, cfg *config.Config, logger zerolog.Logger, migrate, seed bool) error {
	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	if migrate {
		if a.DB == nil {
			logger.Warn().Msg("--migrate ignored with the memory store")
		} else {
			logger.Info().Msg("running database migrations")
			if err := db.Migrate(a.DB, "up"); err != nil {
				return err
			}
		}
	}

	if seed {
		if err := bootstrap.Load(ctx, a.Customers, a.Vendors); err != nil {
			return err
		}
	}

	srv := server.NewServer(cfg.Server, logger, server.Deps{
		Customers: a.Customers,
		Vendors:   a.Vendors,
		Checks:    a.Checks,
	})
	return srv.Run(ctx)
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|down|status]",
		Short:     "Run database migrations",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"up", "down", "status"},
		RunE: func(cmd *cobra.Command, args []string) error {
			command := "up"
			if len(args) == 1 {
				command = args[0]
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cfg.Storage.Driver != "postgres" {
				return fmt.Errorf("migrate requires storage.driver=postgres, got %q", cfg.Storage.Driver)
			}
			logger := logging.New(cfg)

			conn, err := db.Open(cmd.Context(), cfg.Database)
			if err != nil {
				return err
			}
			defer conn.Close()

			logger.Info().Str("command", command).Msg("running database migrations")
			return db.Migrate(conn, command)
		},
	}
}
