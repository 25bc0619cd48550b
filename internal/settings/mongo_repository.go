package settings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// The singleton settings document always uses this fixed _id.
const settingsID = "store"

type mongoRepository struct {
	collection *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) SettingsRepository {
	return &mongoRepository{
		collection: db.Collection("settings"),
	}
}

func (m *mongoRepository) Get(ctx context.Context) (*Settings, error) {
	var s Settings

	err := m.collection.FindOne(ctx, bson.M{"_id": settingsID}).Decode(&s)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrSettingsNotFound
		}
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	return &s, nil
}

func (m *mongoRepository) Save(ctx context.Context, s *Settings) error {
	s.ID = settingsID
	s.UpdatedAt = time.Now()

	filter := bson.M{"_id": settingsID}
	update := bson.M{"$set": s}
	opts := options.Update().SetUpsert(true)

	if _, err := m.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}
