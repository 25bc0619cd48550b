package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrNoItems       = errors.New("no order items provided")
	ErrInvalidStatus = errors.New("invalid order status")
)

const EventOrderPlaced = "order.placed"

type Service struct {
	repo OrderRepository
}

func NewService(repo OrderRepository) *Service {
	return &Service{repo: repo}
}

// Create snapshots the caller-supplied items into an immutable order and
// queues an order-placed event for the outbox poller. The total is summed
// from the line items, never taken from the caller.
func (s *Service) Create(ctx context.Context, o *Order) (*Order, error) {
	if len(o.Items) == 0 {
		return nil, ErrNoItems
	}

	total := 0.0
	for _, item := range o.Items {
		if item.Quantity < 1 {
			return nil, fmt.Errorf("%w: quantity must be at least 1", ErrNoItems)
		}
		total += float64(item.Quantity) * item.UnitPrice
	}

	o.ID = uuid.NewString()
	o.Status = StatusPending
	o.TotalPrice = total

	payload, err := json.Marshal(map[string]interface{}{
		"orderId":    o.ID,
		"userId":     o.UserID,
		"totalPrice": o.TotalPrice,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal order event: %w", err)
	}

	event := &OutboxEvent{
		ID:          primitive.NewObjectID().Hex(),
		AggregateID: o.ID,
		EventType:   EventOrderPlaced,
		Payload:     payload,
	}

	if err := s.repo.CreateOrder(ctx, o, event); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *Service) ListMine(ctx context.Context, userID string) ([]*Order, error) {
	orders, err := s.repo.GetOrdersByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []*Order{}
	}
	return orders, nil
}

func (s *Service) ListAll(ctx context.Context) ([]*Order, error) {
	orders, err := s.repo.ListOrders(ctx)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []*Order{}
	}
	return orders, nil
}

func (s *Service) UpdateStatus(ctx context.Context, id string, status Status) (*Order, error) {
	if !ValidStatus(status) {
		return nil, ErrInvalidStatus
	}
	return s.repo.UpdateStatus(ctx, id, status)
}
