package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"

	"github.com/iho/cashflow/internal/domain"
	"github.com/iho/cashflow/internal/infrastructure/metrics"
)

type amqpPublisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// EventPublisher implements usecase.EventPublisher on top of RabbitMQ.
type EventPublisher struct {
	channel    amqpPublisher
	exchange   string
	routingKey string
	logger     zerolog.Logger
	metrics    *metrics.Metrics
}

// NewEventPublisher opens a channel on the connection, declares the
// topology, and returns a publisher bound to the exchange.
func NewEventPublisher(conn *amqp.Connection, topology Topology, logger zerolog.Logger, m *metrics.Metrics) (*EventPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err := topology.declare(ch); err != nil {
		ch.Close()
		return nil, err
	}

	return newEventPublisherWithChannel(ch, topology, logger, m), nil
}

func newEventPublisherWithChannel(ch amqpPublisher, topology Topology, logger zerolog.Logger, m *metrics.Metrics) *EventPublisher {
	return &EventPublisher{
		channel:    ch,
		exchange:   topology.Exchange,
		routingKey: topology.RoutingKey,
		logger:     logger,
		metrics:    m,
	}
}

// Publish sends an entry-created event to the exchange. Callers treat a
// failure here as non-fatal, so the error only carries diagnostics.
func (p *EventPublisher) Publish(ctx context.Context, event *domain.EntryCreatedEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	err = p.channel.PublishWithContext(ctx,
		p.exchange,
		p.routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    event.EntryID,
			Type:         domain.EventTypeEntryCreated,
			Timestamp:    time.Now().UTC(),
			Body:         body,
		},
	)
	if err != nil {
		if p.metrics != nil {
			p.metrics.EventsPublished.WithLabelValues("error").Inc()
		}
		return fmt.Errorf("publish to %q: %w", p.exchange, err)
	}

	if p.metrics != nil {
		p.metrics.EventsPublished.WithLabelValues("ok").Inc()
	}
	p.logger.Debug().
		Str("entry_id", event.EntryID).
		Str("routing_key", p.routingKey).
		Msg("event published")

	return nil
}
