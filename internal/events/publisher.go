// Package events publishes pickup lifecycle events to RabbitMQ so
// downstream consumers (analytics, notification fan-out) can react
// without the API waiting on them.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const exchangeName = "enviromat.pickups"

// PickupEvent is the wire payload for a lifecycle transition.
type PickupEvent struct {
	PickupID  string    `json:"pickupId"`
	UserID    int64     `json:"userId"`
	PickerID  *int64    `json:"pickerId,omitempty"`
	Status    string    `json:"status"`
	WasteType string    `json:"wasteType"`
	At        time.Time `json:"at"`
}

// Publisher delivers pickup events. Implementations must not block the
// request path on broker trouble.
type Publisher interface {
	Publish(ctx context.Context, event PickupEvent)
	Close() error
}

// AMQPPublisher publishes events to a topic exchange, one routing key
// per status.
type AMQPPublisher struct {
	conn *amqp091.Connection
	ch   *amqp091.Channel
	lg   *zap.SugaredLogger
}

// NewAMQPPublisher dials the broker and declares the exchange.
func NewAMQPPublisher(url string, lg *zap.SugaredLogger) (*AMQPPublisher, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	err = ch.ExchangeDeclare(
		exchangeName,
		"topic",
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	return &AMQPPublisher{conn: conn, ch: ch, lg: lg}, nil
}

// Publish sends the event with routing key "pickup.<status>". Failures
// are logged and swallowed.
func (p *AMQPPublisher) Publish(ctx context.Context, event PickupEvent) {
	body, err := json.Marshal(event)
	if err != nil {
		p.lg.Errorf("events: marshal pickup event: %s", err)
		return
	}

	err = p.ch.PublishWithContext(ctx,
		exchangeName,
		"pickup."+event.Status,
		false, // mandatory
		false, // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			Body:         body,
			Timestamp:    time.Now(),
			DeliveryMode: amqp091.Persistent,
		},
	)
	if err != nil {
		p.lg.Errorf("events: publish pickup event: %s", err)
	}
}

func (p *AMQPPublisher) Close() error {
	if err := p.ch.Close(); err != nil {
		return err
	}
	return p.conn.Close()
}

// NopPublisher is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(ctx context.Context, event PickupEvent) {}

func (NopPublisher) Close() error { return nil }
