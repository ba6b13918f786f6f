package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rabbitmq/amqp091-go"

	"costevida/internal/logger"
)

// Delivery hands reminder messages to a transport. The transport itself
// (push, email) lives outside this service; implementations only enqueue.
// Delivery does not retry.
type Delivery interface {
	Deliver(ctx context.Context, userID string, msg *Message) error
	Close() error
}

// envelope is the wire format published to the broker.
type envelope struct {
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Timestamp time.Time `json:"timestamp"`
}

// AMQPDelivery publishes reminders to a RabbitMQ direct exchange. Downstream
// consumers fan the messages out to the actual push/email transports.
type AMQPDelivery struct {
	conn     *amqp091.Connection
	channel  *amqp091.Channel
	exchange string
	queue    string
}

// NewAMQPDelivery dials the broker and declares the exchange, queue, and
// binding.
func NewAMQPDelivery(url, exchange, queue string) (*AMQPDelivery, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	d := &AMQPDelivery{conn: conn, channel: channel, exchange: exchange, queue: queue}
	if err := d.setup(); err != nil {
		d.Close()
		return nil, fmt.Errorf("setup exchange and queue: %w", err)
	}

	return d, nil
}

func (d *AMQPDelivery) setup() error {
	if err := d.channel.ExchangeDeclare(d.exchange, "direct", true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}
	if _, err := d.channel.QueueDeclare(d.queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}
	// Routing key matches the queue name on a direct exchange.
	if err := d.channel.QueueBind(d.queue, d.queue, d.exchange, false, nil); err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}
	return nil
}

// Deliver publishes one reminder as a persistent JSON message.
func (d *AMQPDelivery) Deliver(ctx context.Context, userID string, msg *Message) error {
	body, err := json.Marshal(envelope{
		UserID:    userID,
		Title:     msg.Title,
		Body:      msg.Body,
		Timestamp: time.Now(),
	})
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = d.channel.PublishWithContext(ctx, d.exchange, d.queue, false, false,
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}

	logger.Get().Infow("published reminder",
		"user_id", userID,
		"title", msg.Title,
		"exchange", d.exchange,
	)
	return nil
}

// Close releases the channel and connection.
func (d *AMQPDelivery) Close() error {
	if d.channel != nil {
		_ = d.channel.Close()
	}
	if d.conn != nil {
		return d.conn.Close()
	}
	return nil
}
