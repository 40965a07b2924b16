package queue

import (
	"bytes"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryQueue_PublishWithoutSubscribers(t *testing.T) {
	q := NewInMemoryQueue(zerolog.Nop())

	err := q.Publish(TopicResourceEvents, ResourceEvent{ID: 1})

	assert.Error(t, err)
}

func TestInMemoryQueue_FansOutToSubscribers(t *testing.T) {
	q := NewInMemoryQueue(zerolog.Nop())
	var calls int32
	for i := 0; i < 3; i++ {
		require.NoError(t, q.Subscribe(TopicResourceEvents, func(payload any) error {
			atomic.AddInt32(&calls, 1)
			return nil
		}))
	}

	require.NoError(t, q.Publish(TopicResourceEvents, ResourceEvent{ID: 1}))
	q.Wait()

	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestInMemoryQueue_RetriesFailingHandler(t *testing.T) {
	q := NewInMemoryQueue(zerolog.Nop())
	q.Backoff = time.Millisecond
	var attempts int32
	require.NoError(t, q.Subscribe("t", func(payload any) error {
		if atomic.AddInt32(&attempts, 1) < 3 {
			return errors.New("broker hiccup")
		}
		return nil
	}))

	require.NoError(t, q.Publish("t", "x"))
	q.Wait()

	assert.Equal(t, int32(3), atomic.LoadInt32(&attempts))
}

func TestInMemoryQueue_GivesUpAfterMaxRetries(t *testing.T) {
	q := NewInMemoryQueue(zerolog.Nop())
	q.Backoff = time.Millisecond
	q.MaxRetries = 2
	var attempts int32
	require.NoError(t, q.Subscribe("t", func(payload any) error {
		atomic.AddInt32(&attempts, 1)
		return errors.New("always")
	}))

	require.NoError(t, q.Publish("t", "x"))
	q.Wait()

	assert.Equal(t, int32(3), atomic.LoadInt32(&attempts))
}

func TestStartEventLogSubscriber(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	q := NewInMemoryQueue(zerolog.Nop())
	require.NoError(t, StartEventLogSubscriber(q, logger))

	require.NoError(t, q.Publish(TopicResourceEvents, ResourceEvent{
		Resource: "vendor",
		Action:   ActionCreated,
		ID:       1,
		URL:      "/api/v1/vendors/1",
	}))
	q.Wait()

	out := buf.String()
	assert.Contains(t, out, `"resource":"vendor"`)
	assert.Contains(t, out, `"action":"created"`)
	assert.Contains(t, out, `"url":"/api/v1/vendors/1"`)
}

func TestNopQueue(t *testing.T) {
	var q Queue = NopQueue{}

	assert.NoError(t, q.Publish(TopicResourceEvents, ResourceEvent{}))
	assert.NoError(t, q.Subscribe(TopicResourceEvents, func(any) error { return nil }))
}
