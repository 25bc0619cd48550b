package order

import (
	"context"
	"errors"
	"time"
)

var ErrOrderNotFound = errors.New("order not found")

// OutboxEvent is a pending domain event awaiting publication to Kafka.
type OutboxEvent struct {
	ID          string    `bson:"_id,omitempty"`
	AggregateID string    `bson:"aggregate_id"`
	EventType   string    `bson:"event_type"`
	Payload     []byte    `bson:"payload"`
	Processed   bool      `bson:"processed"`
	CreatedAt   time.Time `bson:"created_at"`
}

// OrderRepository defines the interface for order data operations
// Consumers define this interface, not the MongoDB implementation
type OrderRepository interface {
	CreateOrder(ctx context.Context, o *Order, event *OutboxEvent) error
	GetOrdersByUser(ctx context.Context, userID string) ([]*Order, error)
	ListOrders(ctx context.Context) ([]*Order, error)
	UpdateStatus(ctx context.Context, id string, status Status) (*Order, error)
	GetUnprocessedEvents(ctx context.Context, limit int) ([]*OutboxEvent, error)
	MarkEventAsProcessed(ctx context.Context, id string) error
}
