package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/streadway/amqp"
)

// AMQPPublisher publishes JSON messages to durable RabbitMQ queues named
// after the topic, through the default exchange.
type AMQPPublisher struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	ch       *amqp.Channel
	declared map[string]bool
}

// DialAMQP connects to url and opens a channel.
func DialAMQP(url string) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	return &AMQPPublisher{conn: conn, ch: ch, declared: map[string]bool{}}, nil
}

// DeclareQueue declares the durable queue used for topic.
func DeclareQueue(ch *amqp.Channel, topic string) (amqp.Queue, error) {
	return ch.QueueDeclare(
		topic, // name
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
}

func (p *AMQPPublisher) Publish(topic string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.declared[topic] {
		if _, err := DeclareQueue(p.ch, topic); err != nil {
			return fmt.Errorf("declare queue %s: %w", topic, err)
		}
		p.declared[topic] = true
	}

	err = p.ch.Publish(
		"",
		topic,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish to %s: %w", topic, err)
	}
	return nil
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.ch.Close(); err != nil {
		p.conn.Close()
		return err
	}
	return p.conn.Close()
}

// Consume declares topic's queue and feeds its messages to handle until ctx
// is done or the channel closes. Acks are manual.
func (p *AMQPPublisher) Consume(ctx context.Context, topic string, handle func(ResourceEvent) error, logger zerolog.Logger) error {
	p.mu.Lock()
	q, err := DeclareQueue(p.ch, topic)
	if err != nil {
		p.mu.Unlock()
		return fmt.Errorf("declare queue %s: %w", topic, err)
	}
	p.declared[topic] = true
	msgs, err := p.ch.Consume(
		q.Name,
		"",    // consumer
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	p.mu.Unlock()
	if err != nil {
		return fmt.Errorf("consume %s: %w", topic, err)
	}

	HandleDeliveries(ctx, msgs, handle, logger)
	return nil
}

// HandleDeliveries decodes each delivery as a ResourceEvent and passes it to
// handle. Undecodable bodies are acked and dropped. A failing handler gets the
// message requeued once; a second failure rejects it. Returns when deliveries
// is closed or ctx is done.
func HandleDeliveries(ctx context.Context, deliveries <-chan amqp.Delivery, handle func(ResourceEvent) error, logger zerolog.Logger) {
	for {
		select {
		case <-ctx.Done():
			return
		case d, ok := <-deliveries:
			if !ok {
				return
			}
			handleDelivery(d, handle, logger)
		}
	}
}

func handleDelivery(d amqp.Delivery, handle func(ResourceEvent) error, logger zerolog.Logger) {
	var event ResourceEvent
	if err := json.Unmarshal(d.Body, &event); err != nil {
		logger.Warn().Err(err).Msg("invalid event body")
		if err := d.Ack(false); err != nil {
			logger.Error().Err(err).Msg("ack failed")
		}
		return
	}

	if err := handle(event); err != nil {
		requeue := !d.Redelivered
		logger.Warn().Err(err).Bool("requeue", requeue).Msg("event handler failed")
		if err := d.Nack(false, requeue); err != nil {
			logger.Error().Err(err).Msg("nack failed")
		}
		return
	}

	if err := d.Ack(false); err != nil {
		logger.Error().Err(err).Msg("ack failed")
	}
}

var _ Publisher = (*AMQPPublisher)(nil)
