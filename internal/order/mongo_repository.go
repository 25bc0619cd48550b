package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoRepository struct {
	orders *mongo.Collection
	outbox *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) OrderRepository {
	return &mongoRepository{
		orders: db.Collection("orders"),
		outbox: db.Collection("outbox"),
	}
}

// CreateOrder inserts the order and its outbox event. The outbox insert is
// a separate write: if it fails the order still stands and the event is
// lost, which costs only the asynchronous cart cleanup.
func (m *mongoRepository) CreateOrder(ctx context.Context, o *Order, event *OutboxEvent) error {
	now := time.Now()
	o.CreatedAt = now
	o.UpdatedAt = now

	if _, err := m.orders.InsertOne(ctx, o); err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	event.CreatedAt = now
	if _, err := m.outbox.InsertOne(ctx, event); err != nil {
		return fmt.Errorf("failed to insert outbox event: %w", err)
	}
	return nil
}

func (m *mongoRepository) GetOrdersByUser(ctx context.Context, userID string) ([]*Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := m.orders.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to get user orders: %w", err)
	}
	defer cursor.Close(ctx)

	var orders []*Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("failed to decode orders: %w", err)
	}
	return orders, nil
}

func (m *mongoRepository) ListOrders(ctx context.Context) ([]*Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := m.orders.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer cursor.Close(ctx)

	var orders []*Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("failed to decode orders: %w", err)
	}
	return orders, nil
}

func (m *mongoRepository) UpdateStatus(ctx context.Context, id string, status Status) (*Order, error) {
	update := bson.M{"$set": bson.M{
		"status":     status,
		"updated_at": time.Now(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var o Order
	err := m.orders.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&o)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}
	return &o, nil
}

func (m *mongoRepository) GetUnprocessedEvents(ctx context.Context, limit int) ([]*OutboxEvent, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: 1}}).
		SetLimit(int64(limit))

	cursor, err := m.outbox.Find(ctx, bson.M{"processed": false}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to get unprocessed events: %w", err)
	}
	defer cursor.Close(ctx)

	var events []*OutboxEvent
	if err := cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("failed to decode outbox events: %w", err)
	}
	return events, nil
}

func (m *mongoRepository) MarkEventAsProcessed(ctx context.Context, id string) error {
	update := bson.M{"$set": bson.M{"processed": true}}
	result, err := m.outbox.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to mark event as processed: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("outbox event %s not found", id)
	}
	return nil
}

func (m *mongoRepository) CreateIndexes(ctx context.Context) error {
	_, err := m.orders.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create order indexes: %w", err)
	}

	_, err = m.outbox.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "processed", Value: 1}, {Key: "created_at", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create outbox indexes: %w", err)
	}
	return nil
}
