package queue

import (
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// TopicResourceEvents carries a ResourceEvent for every customer/vendor change.
const TopicResourceEvents = "resource_events"

// Actions recorded in ResourceEvent.Action.
const (
	ActionCreated  = "created"
	ActionReplaced = "replaced"
	ActionPatched  = "patched"
	ActionDeleted  = "deleted"
)

// ResourceEvent describes one successful write.
type ResourceEvent struct {
	Resource   string    `json:"resource"`
	Action     string    `json:"action"`
	ID         int64     `json:"id"`
	URL        string    `json:"url"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Publisher is what the services need.
type Publisher interface {
	Publish(topic string, payload any) error
}

// Queue interface
type Queue interface {
	Publisher
	Subscribe(topic string, handler func(payload any) error) error
}

// InMemoryQueue fans each message out to every subscriber in its own
// goroutine and retries a failing handler up to MaxRetries times.
type InMemoryQueue struct {
	mu       sync.Mutex
	handlers map[string][]func(payload any) error
	wg       sync.WaitGroup

	MaxRetries int
	Backoff    time.Duration
	logger     zerolog.Logger
}

// NewInMemoryQueue creates a new queue
func NewInMemoryQueue(logger zerolog.Logger) *InMemoryQueue {
	return &InMemoryQueue{
		handlers:   make(map[string][]func(payload any) error),
		MaxRetries: 3,
		Backoff:    500 * time.Millisecond,
		logger:     logger,
	}
}

// jobPayload wraps a message payload with retry info
type jobPayload struct {
	Topic      string
	Payload    any
	RetryCount int
}

// Publish sends a message to all subscribers
func (q *InMemoryQueue) Publish(topic string, payload any) error {
	q.mu.Lock()
	handlers := q.handlers[topic]
	q.mu.Unlock()

	if len(handlers) == 0 {
		return fmt.Errorf("no subscribers for topic %s", topic)
	}

	for _, handler := range handlers {
		q.wg.Add(1)
		go q.processJob(handler, jobPayload{Topic: topic, Payload: payload})
	}
	return nil
}

// processJob handles retries and errors
func (q *InMemoryQueue) processJob(handler func(payload any) error, job jobPayload) {
	defer q.wg.Done()

	for {
		err := handler(job.Payload)
		if err == nil {
			return
		}

		job.RetryCount++
		if job.RetryCount > q.MaxRetries {
			q.logger.Error().Err(err).Str("topic", job.Topic).Int("attempts", job.RetryCount).
				Msg("job permanently failed")
			return
		}
		q.logger.Warn().Err(err).Str("topic", job.Topic).Int("attempt", job.RetryCount).
			Msg("job failed, retrying")

		// Linear backoff before retry
		time.Sleep(time.Duration(job.RetryCount) * q.Backoff)
	}
}

// Subscribe adds a handler for a topic
func (q *InMemoryQueue) Subscribe(topic string, handler func(payload any) error) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.handlers[topic] = append(q.handlers[topic], handler)
	return nil
}

// Wait blocks until every in-flight job has finished.
func (q *InMemoryQueue) Wait() {
	q.wg.Wait()
}

// NopQueue drops every message.
type NopQueue struct{}

func (NopQueue) Publish(string, any) error                       { return nil }
func (NopQueue) Subscribe(string, func(payload any) error) error { return nil }

// StartEventLogSubscriber logs every ResourceEvent published on q.
func StartEventLogSubscriber(q Queue, logger zerolog.Logger) error {
	return q.Subscribe(TopicResourceEvents, func(payload any) error {
		event, ok := payload.(ResourceEvent)
		if !ok {
			logger.Warn().Str("type", fmt.Sprintf("%T", payload)).Msg("unexpected event payload")
			return nil // no retry
		}
		LogEvent(logger, event)
		return nil
	})
}

// LogEvent writes one structured line for event.
func LogEvent(logger zerolog.Logger, event ResourceEvent) {
	logger.Info().
		Str("resource", event.Resource).
		Str("action", event.Action).
		Int64("id", event.ID).
		Str("url", event.URL).
		Time("occurred_at", event.OccurredAt).
		Msg("resource event")
}

var (
	_ Queue = (*InMemoryQueue)(nil)
	_ Queue = NopQueue{}
)
