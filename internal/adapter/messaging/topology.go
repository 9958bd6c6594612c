package messaging

import (
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Topology describes the broker objects both sides of the event stream rely on.
type Topology struct {
	Exchange   string
	Queue      string
	RoutingKey string
}

// declare sets up the exchange, the queue, and the binding between them.
// Declarations are idempotent, so publisher and consumer can both run this
// regardless of which one starts first.
func (t Topology) declare(ch *amqp.Channel) error {
	err := ch.ExchangeDeclare(
		t.Exchange, // name
		"topic",    // type
		true,       // durable
		false,      // auto-deleted
		false,      // internal
		false,      // no-wait
		nil,        // arguments
	)
	if err != nil {
		return fmt.Errorf("declare exchange %q: %w", t.Exchange, err)
	}

	queue, err := ch.QueueDeclare(
		t.Queue, // name
		true,    // durable
		false,   // delete when unused
		false,   // exclusive
		false,   // no-wait
		nil,     // arguments
	)
	if err != nil {
		return fmt.Errorf("declare queue %q: %w", t.Queue, err)
	}

	err = ch.QueueBind(queue.Name, t.RoutingKey, t.Exchange, false, nil)
	if err != nil {
		return fmt.Errorf("bind queue %q to %q: %w", t.Queue, t.Exchange, err)
	}

	return nil
}
