package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/kafka"
	"gotest.tools/v3/assert"
)

const testTopic = "order-events"

func setupKafka(t *testing.T) (string, func()) {
	ctx := context.Background()

	kafkaContainer, err := kafka.Run(ctx, "confluentinc/confluent-local:7.5.0")
	require.NoError(t, err)

	brokers, err := kafkaContainer.Brokers(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, brokers)

	cleanup := func() {
		if err := kafkaContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate kafka container: %v", err)
		}
	}

	return brokers[0], cleanup
}

func createTopic(t *testing.T, brokerAddr string) {
	conn, err := kafkaGo.Dial("tcp", brokerAddr)
	require.NoError(t, err)
	defer conn.Close()

	controller, err := conn.Controller()
	require.NoError(t, err)

	controllerConn, err := kafkaGo.Dial("tcp", fmt.Sprintf("%s:%d", controller.Host, controller.Port))
	require.NoError(t, err)
	defer controllerConn.Close()

	err = controllerConn.CreateTopics(kafkaGo.TopicConfig{
		Topic:             testTopic,
		NumPartitions:     1,
		ReplicationFactor: 1,
	})
	if err != nil {
		t.Logf("topic creation error (may already exist): %v", err)
	}
}

func writeOrderPlaced(t *testing.T, brokerAddr, userID string) {
	payload, err := json.Marshal(map[string]interface{}{
		"orderId":    "order-1",
		"userId":     userID,
		"totalPrice": 17.20,
	})
	require.NoError(t, err)

	w := &kafkaGo.Writer{
		Addr:                   kafkaGo.TCP(brokerAddr),
		Topic:                  testTopic,
		Balancer:               &kafkaGo.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
	defer w.Close()

	err = w.WriteMessages(context.Background(), kafkaGo.Message{
		Key:   []byte("order-1"),
		Value: payload,
		Headers: []kafkaGo.Header{
			{Key: "event_type", Value: []byte("order.placed")},
		},
	})
	require.NoError(t, err)
}

func TestConsumer_ClearsCartAndCache(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	brokerAddr, cleanupKafka := setupKafka(t)
	defer cleanupKafka()
	createTopic(t, brokerAddr)

	repo := &mockRepository{
		cart: &Cart{UserID: "user-test-1", Items: []CartItem{{ProductID: "p1", Quantity: 2}}},
	}
	cache := &mockCache{cart: &Cart{UserID: "user-test-1"}}
	assert.Equal(t, 1, len(repo.getCart().Items))

	writeOrderPlaced(t, brokerAddr, "user-test-1")

	c := NewConsumer(repo, cache, testTopic, brokerAddr)
	defer c.Close()
	go c.Run(ctx)

	require.Eventually(t, func() bool {
		return repo.getCart() == nil && cache.getCart() == nil
	}, 15*time.Second, 500*time.Millisecond)
}

func TestConsumer_MissingCartIsHarmless(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	brokerAddr, cleanupKafka := setupKafka(t)
	defer cleanupKafka()
	createTopic(t, brokerAddr)

	repo := &mockRepository{cart: nil}
	cache := &mockCache{cart: &Cart{UserID: "user-test-2"}}

	writeOrderPlaced(t, brokerAddr, "user-test-2")

	c := NewConsumer(repo, cache, testTopic, brokerAddr)
	defer c.Close()
	go c.Run(ctx)

	require.Eventually(t, func() bool {
		return cache.getCart() == nil
	}, 15*time.Second, 500*time.Millisecond)
}
