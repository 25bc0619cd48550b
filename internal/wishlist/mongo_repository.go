package wishlist

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

func NewMongoRepository(db *mongo.Database) WishlistRepository {
	return &mongoRepository{
		collection: db.Collection("wishlists"),
	}
}

func (m *mongoRepository) GetWishlist(ctx context.Context, userID string) (*Wishlist, error) {
	var wishlist Wishlist

	filter := bson.M{"user_id": userID}
	err := m.collection.FindOne(ctx, filter).Decode(&wishlist)

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrWishlistNotFound
		}
		return nil, fmt.Errorf("failed to get wishlist: %w", err)
	}

	return &wishlist, nil
}

func (m *mongoRepository) AddProduct(ctx context.Context, userID, productID string) error {
	now := time.Now()

	filter := bson.M{"user_id": userID}
	// $addToSet gives the set semantics: a duplicate add changes nothing.
	update := bson.M{
		"$addToSet":    bson.M{"product_ids": productID},
		"$set":         bson.M{"updated_at": now},
		"$setOnInsert": bson.M{"created_at": now},
	}
	opts := options.Update().SetUpsert(true)

	if _, err := m.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to add product to wishlist: %w", err)
	}

	return nil
}

func (m *mongoRepository) RemoveProduct(ctx context.Context, userID, productID string) error {
	filter := bson.M{"user_id": userID}
	update := bson.M{
		"$pull": bson.M{"product_ids": productID},
		"$set":  bson.M{"updated_at": time.Now()},
	}

	result, err := m.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to remove product from wishlist: %w", err)
	}

	if result.MatchedCount == 0 {
		return ErrWishlistNotFound
	}

	return nil
}

func (m *mongoRepository) DeleteWishlist(ctx context.Context, userID string) error {
	filter := bson.M{"user_id": userID}

	result, err := m.collection.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to delete wishlist: %w", err)
	}

	if result.DeletedCount == 0 {
		return ErrWishlistNotFound
	}

	return nil
}

func (m *mongoRepository) CreateIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := m.collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	return nil
}
