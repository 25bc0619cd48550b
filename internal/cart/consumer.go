package cart

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/segmentio/kafka-go"
)

// Consumer drains order-placed events and empties the purchaser's cart,
// so a checkout from any channel leaves the cart clean.
type Consumer struct {
	repo   CartRepository
	cache  CartCache
	reader *kafka.Reader
}

func NewConsumer(repo CartRepository, cache CartCache, topic string, brokers ...string) *Consumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  brokers,
		Topic:    topic,
		GroupID:  "cart-consumer",
		MaxBytes: 10e6, // 10MB
	})
	return &Consumer{repo: repo, cache: cache, reader: reader}
}

func (c *Consumer) Run(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			return
		}
		c.processMessage(ctx)
	}
}

func (c *Consumer) Close() {
	if err := c.reader.Close(); err != nil {
		log.Printf("error closing kafka reader: %v", err)
	}
}

func (c *Consumer) processMessage(ctx context.Context) {
	m, err := c.reader.ReadMessage(ctx)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			log.Printf("error reading message: %v", err)
		}
		return
	}

	var payload struct {
		UserID string `json:"userId"`
	}
	if errUnmarshal := json.Unmarshal(m.Value, &payload); errUnmarshal != nil {
		log.Printf("error parsing message: %v", errUnmarshal)
		return
	}
	if payload.UserID == "" {
		log.Println("missing or invalid userId")
		return
	}

	errDelete := c.repo.DeleteCart(ctx, payload.UserID)
	if errDelete != nil && !errors.Is(errDelete, ErrCartNotFound) {
		log.Printf("failed to delete cart: %v", errDelete)
	}

	if errCache := c.cache.Delete(ctx, payload.UserID); errCache != nil {
		log.Printf("failed to delete cached cart: %v", errCache)
	}
}
