package amqp

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"

	"github.com/dafibh/budget-tracker/budget-backend/internal/websocket"
)

const publishTimeout = 5 * time.Second

// publishChannel is the subset of *amqp091.Channel the publisher uses.
type publishChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
	Close() error
}

// Publisher forwards budget change events to a durable direct exchange so
// other services can react to them.
type Publisher struct {
	conn       *amqp091.Connection
	channel    publishChannel
	exchange   string
	routingKey string
	mu         sync.Mutex
}

// Ensure Publisher implements websocket.EventPublisher
var _ websocket.EventPublisher = (*Publisher)(nil)

// NewPublisher dials the broker and declares the exchange
func NewPublisher(url, exchange, routingKey string) (*Publisher, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		exchange, // name
		"direct", // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	log.Info().Str("exchange", exchange).Msg("Connected to AMQP broker")

	return &Publisher{
		conn:       conn,
		channel:    channel,
		exchange:   exchange,
		routingKey: routingKey,
	}, nil
}

// Publish implements websocket.EventPublisher. Failures are logged, never
// returned, so a broker outage cannot block budget edits.
func (p *Publisher) Publish(event websocket.Event) {
	if err := p.PublishContext(context.Background(), event); err != nil {
		log.Error().
			Err(err).
			Str("event_type", event.Type).
			Str("exchange", p.exchange).
			Msg("Failed to publish event")
	}
}

// PublishContext sends one event as a persistent JSON message
func (p *Publisher) PublishContext(ctx context.Context, event websocket.Event) error {
	body, err := event.ToJSON()
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.channel.PublishWithContext(
		ctx,
		p.exchange,   // exchange
		p.routingKey, // routing key
		false,        // mandatory
		false,        // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    event.Timestamp,
			Type:         event.Type,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}

	log.Debug().
		Str("event_type", event.Type).
		Str("exchange", p.exchange).
		Msg("Published event")

	return nil
}

// Close closes the channel and connection
func (p *Publisher) Close() error {
	var firstErr error
	if p.channel != nil {
		if err := p.channel.Close(); err != nil {
			firstErr = err
		}
	}
	if p.conn != nil {
		if err := p.conn.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
