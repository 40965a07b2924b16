// cmd/worker/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/unclebandit/mvc-rest-api/internal/config"
	"github.com/unclebandit/mvc-rest-api/internal/logging"
	"github.com/unclebandit/mvc-rest-api/internal/queue"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}
	logger := logging.New(cfg).With().Str("component", "worker").Logger()

	if cfg.Events.AMQPURL == "" {
		logger.Fatal().Msg("RESTAPP_EVENTS__AMQP_URL is required")
	}

	conn, err := queue.DialAMQP(cfg.Events.AMQPURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to RabbitMQ")
	}
	defer conn.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info().Str("queue", queue.TopicResourceEvents).Msg("worker running, waiting for events")
	err = conn.Consume(ctx, queue.TopicResourceEvents, func(event queue.ResourceEvent) error {
		queue.LogEvent(logger, event)
		return nil
	}, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("consume failed")
	}
	logger.Info().Msg("worker stopped")
}
