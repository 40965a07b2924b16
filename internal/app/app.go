// Package app wires storage, events and services from configuration. It is
// shared by the server and seeder binaries.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/unclebandit/mvc-rest-api/internal/config"
	"github.com/unclebandit/mvc-rest-api/internal/db"
	"github.com/unclebandit/mvc-rest-api/internal/handler"
	"github.com/unclebandit/mvc-rest-api/internal/queue"
	"github.com/unclebandit/mvc-rest-api/internal/repository"
	"github.com/unclebandit/mvc-rest-api/internal/service"
)

type App struct {
	Customers service.CustomerService
	Vendors   service.VendorService
	// DB is nil with the memory store.
	DB     *sql.DB
	Events queue.Publisher
	Checks map[string]handler.Pinger

	customerRepo repository.CustomerRepositoryInterface
	vendorRepo   repository.VendorRepositoryInterface
	closers      []func() error
}

// New builds the application. Callers must Close it.
func New(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*App, error) {
	a := &App{Checks: map[string]handler.Pinger{}}

	if err := a.openStorage(ctx, cfg, logger); err != nil {
		return nil, err
	}
	if err := a.openEvents(cfg, logger); err != nil {
		a.Close()
		return nil, err
	}

	return a, nil
}

func (a *App) openStorage(ctx context.Context, cfg *config.Config, logger zerolog.Logger) error {
	var (
		customerRepo repository.CustomerRepositoryInterface
		vendorRepo   repository.VendorRepositoryInterface
	)

	switch cfg.Storage.Driver {
	case "postgres":
		conn, err := db.Open(ctx, cfg.Database)
		if err != nil {
			return err
		}
		a.DB = conn
		a.Checks["database"] = conn
		a.closers = append(a.closers, conn.Close)
		customerRepo = repository.NewCustomerRepository(conn)
		vendorRepo = repository.NewVendorRepository(conn)
	case "memory":
		customerRepo = repository.NewMemoryCustomerRepository()
		vendorRepo = repository.NewMemoryVendorRepository()
	default:
		return fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
	logger.Info().Str("driver", cfg.Storage.Driver).Msg("storage ready")

	a.customerRepo, a.vendorRepo = customerRepo, vendorRepo
	return nil
}

func (a *App) openEvents(cfg *config.Config, logger zerolog.Logger) error {
	switch cfg.Events.Driver {
	case "amqp":
		pub, err := queue.DialAMQP(cfg.Events.AMQPURL)
		if err != nil {
			return err
		}
		a.closers = append(a.closers, pub.Close)
		a.Events = pub
	case "memory":
		q := queue.NewInMemoryQueue(logger)
		if err := queue.StartEventLogSubscriber(q, logger); err != nil {
			return err
		}
		a.closers = append(a.closers, func() error { q.Wait(); return nil })
		a.Events = q
	default:
		a.Events = queue.NopQueue{}
	}
	logger.Info().Str("driver", cfg.Events.Driver).Msg("events ready")

	a.Customers = service.NewCustomerService(a.customerRepo, a.Events)
	a.Vendors = service.NewVendorService(a.vendorRepo, a.Events)
	return nil
}

// Close releases connections in reverse order of opening.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
