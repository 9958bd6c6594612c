package messaging

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"

	"github.com/iho/cashflow/internal/domain"
	"github.com/iho/cashflow/internal/infrastructure/metrics"
	"github.com/iho/cashflow/internal/usecase"
)

// EventHandler folds a consumed event into the read model.
type EventHandler interface {
	ApplyEntryCreated(ctx context.Context, event *domain.EntryCreatedEvent) error
}

// Consumer reads entry-created events off the queue one at a time and
// hands them to the handler. Prefetch is pinned to a single unacked
// delivery so processing stays strictly sequential.
type Consumer struct {
	channel *amqp.Channel
	queue   string
	handler EventHandler
	retrier usecase.Retrier
	logger  zerolog.Logger
	metrics *metrics.Metrics
}

// NewConsumer opens a channel, declares the topology, and caps prefetch at one.
func NewConsumer(conn *amqp.Connection, topology Topology, handler EventHandler, retrier usecase.Retrier, logger zerolog.Logger, m *metrics.Metrics) (*Consumer, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err := topology.declare(ch); err != nil {
		ch.Close()
		return nil, err
	}

	if err := ch.Qos(1, 0, false); err != nil {
		ch.Close()
		return nil, fmt.Errorf("set prefetch: %w", err)
	}

	return &Consumer{
		channel: ch,
		queue:   topology.Queue,
		handler: handler,
		retrier: retrier,
		logger:  logger,
		metrics: m,
	}, nil
}

// Start consumes deliveries until the context is cancelled or the
// delivery channel closes.
func (c *Consumer) Start(ctx context.Context) error {
	deliveries, err := c.channel.Consume(
		c.queue,
		"",    // consumer tag (auto-generated)
		false, // auto-ack, acks are manual
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		return fmt.Errorf("register consumer: %w", err)
	}

	c.logger.Info().Str("queue", c.queue).Msg("consumer started")

	for {
		select {
		case <-ctx.Done():
			c.logger.Info().Msg("consumer shutting down")
			return ctx.Err()

		case delivery, ok := <-deliveries:
			if !ok {
				return fmt.Errorf("delivery channel closed")
			}
			c.handleDelivery(ctx, delivery)
		}
	}
}

// handleDelivery settles exactly one delivery. Undecodable payloads are
// acked and dropped so they cannot wedge the queue. Processing failures
// are nacked without requeue.
func (c *Consumer) handleDelivery(ctx context.Context, delivery amqp.Delivery) {
	var event domain.EntryCreatedEvent
	if err := json.Unmarshal(delivery.Body, &event); err != nil {
		c.logger.Warn().
			Err(err).
			Str("message_id", delivery.MessageId).
			Msg("dropping undecodable message")
		c.countOutcome("poison")
		if ackErr := delivery.Ack(false); ackErr != nil {
			c.logger.Error().Err(ackErr).Msg("ack failed for dropped message")
		}
		return
	}

	err := c.retrier.Retry(ctx, func() error {
		return c.handler.ApplyEntryCreated(ctx, &event)
	})
	if err != nil {
		c.logger.Error().
			Err(err).
			Str("entry_id", event.EntryID).
			Str("user_id", event.UserID).
			Msg("event processing failed")
		c.countOutcome("failed")
		if nackErr := delivery.Nack(false, false); nackErr != nil {
			c.logger.Error().Err(nackErr).Msg("nack failed")
		}
		return
	}

	c.countOutcome("processed")
	if ackErr := delivery.Ack(false); ackErr != nil {
		c.logger.Error().Err(ackErr).Str("entry_id", event.EntryID).Msg("ack failed")
	}
}

func (c *Consumer) countOutcome(outcome string) {
	if c.metrics != nil {
		c.metrics.EventsConsumed.WithLabelValues(outcome).Inc()
	}
}

// Close closes the consumer's channel.
func (c *Consumer) Close() error {
	if c.channel != nil {
		return c.channel.Close()
	}
	return nil
}
