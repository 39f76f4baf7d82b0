package events

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/pocketledger/backend/internal/models"
	"github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"
)

// AMQP publishes activities to a durable topic exchange.
type AMQP struct {
	conn     *amqp091.Connection
	channel  *amqp091.Channel
	exchange string

	// Channels are not safe for concurrent publishing
	mu sync.Mutex
}

// NewAMQP connects to the broker and declares the exchange.
func NewAMQP(url, exchange string) (*AMQP, error) {
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
		"topic",  // type
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

	return &AMQP{conn: conn, channel: channel, exchange: exchange}, nil
}

func (a *AMQP) Publish(ctx context.Context, activity models.Activity) error {
	msg := NewMessage(activity)
	body, err := msg.ToJSON()
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	a.mu.Lock()
	defer a.mu.Unlock()

	err = a.channel.PublishWithContext(
		ctx,
		a.exchange,       // exchange
		msg.RoutingKey(), // routing key
		false,            // mandatory
		false,            // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    msg.CreatedAt,
			MessageId:    fmt.Sprintf("activity-%d", msg.ID),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}

	log.Debug().Str("exchange", a.exchange).Str("routing-key", msg.RoutingKey()).Uint64("id", msg.ID).Msg("published activity")
	return nil
}

func (a *AMQP) Close() error {
	if a.channel != nil {
		a.channel.Close()
	}
	if a.conn != nil {
		return a.conn.Close()
	}
	return nil
}
