package message

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
	collection *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) MessageRepository {
	return &mongoRepository{
		collection: db.Collection("messages"),
	}
}

func (m *mongoRepository) Insert(ctx context.Context, msg *Message) error {
	now := time.Now()
	msg.CreatedAt = now
	msg.UpdatedAt = now

	_, err := m.collection.InsertOne(ctx, msg)
	if err != nil {
		return fmt.Errorf("failed to insert message: %w", err)
	}
	return nil
}

func (m *mongoRepository) List(ctx context.Context) ([]*Message, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := m.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	defer cursor.Close(ctx)

	var messages []*Message
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, fmt.Errorf("failed to decode messages: %w", err)
	}
	return messages, nil
}

func (m *mongoRepository) Get(ctx context.Context, id string) (*Message, error) {
	var msg Message

	err := m.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&msg)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrMessageNotFound
		}
		return nil, fmt.Errorf("failed to get message: %w", err)
	}
	return &msg, nil
}

func (m *mongoRepository) MarkRead(ctx context.Context, id string) error {
	update := bson.M{"$set": bson.M{
		"is_read":    true,
		"updated_at": time.Now(),
	}}
	result, err := m.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to mark message as read: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrMessageNotFound
	}
	return nil
}

func (m *mongoRepository) SetReply(ctx context.Context, id, reply string) error {
	update := bson.M{"$set": bson.M{
		"reply":      reply,
		"updated_at": time.Now(),
	}}
	result, err := m.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to set reply: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrMessageNotFound
	}
	return nil
}

func (m *mongoRepository) Delete(ctx context.Context, id string) error {
	result, err := m.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrMessageNotFound
	}
	return nil
}
