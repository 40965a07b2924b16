// Package service holds the CRUD operations for customers and vendors.
//
// Services load and mutate entities through a repository, convert them with
// the mapper, fill in the resource URL, and turn repository misses into
// apperrors.NotFound. Every successful write publishes a queue.ResourceEvent.
package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/unclebandit/mvc-rest-api/internal/queue"
)

// publish is best-effort: a broker failure is logged, never returned.
func publish(ctx context.Context, events queue.Publisher, resource, action string, id int64, url string) {
	if events == nil {
		return
	}
	event := queue.ResourceEvent{
		Resource:   resource,
		Action:     action,
		ID:         id,
		URL:        url,
		OccurredAt: time.Now().UTC(),
	}
	if err := events.Publish(queue.TopicResourceEvents, event); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).
			Str("resource", resource).
			Str("action", action).
			Int64("id", id).
			Msg("failed to publish resource event")
	}
}
