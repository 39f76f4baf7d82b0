// Package events publishes the activities of owners to other services.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/pocketledger/backend/internal/models"
	"github.com/rs/zerolog"
)

// Publisher sends activities to subscribers.
type Publisher interface {
	Publish(ctx context.Context, activity models.Activity) error
	Close() error
}

// Message is the payload of a published activity.
type Message struct {
	ID          uint64              `json:"id"`
	Owner       string              `json:"owner"`
	Type        models.ActivityType `json:"type"`
	Description string              `json:"description"`
	ResourceID  uint64              `json:"resourceId"`
	CreatedAt   time.Time           `json:"createdAt"`
}

// NewMessage converts an activity to a message.
func NewMessage(a models.Activity) Message {
	return Message(a)
}

// ToJSON encodes the message.
func (m Message) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// RoutingKey is the routing key of the message on a topic exchange.
func (m Message) RoutingKey() string {
	return fmt.Sprintf("activity.%s", m.Type)
}

// Log writes activities to a logger instead of publishing them.
type Log struct {
	Logger zerolog.Logger
}

func (l Log) Publish(_ context.Context, activity models.Activity) error {
	m := NewMessage(activity)

	l.Logger.Info().
		Str("routing-key", m.RoutingKey()).
		Str("owner", m.Owner).
		Uint64("resource-id", m.ResourceID).
		Msg(m.Description)

	return nil
}

func (Log) Close() error {
	return nil
}
