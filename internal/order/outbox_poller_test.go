package order

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/kafka"
)

func setupKafka(t *testing.T) (string, func()) {
	ctx := context.Background()

	kafkaContainer, err := kafka.Run(ctx, "confluentinc/confluent-local:7.5.0")
	require.NoError(t, err)

	brokers, err := kafkaContainer.Brokers(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, brokers, "broker address should not be empty")

	cleanup := func() {
		if err := kafkaContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate kafka container: %v", err)
		}
	}

	return brokers[0], cleanup
}

func createTopic(t *testing.T, brokerAddr, topic string) {
	conn, err := kafkaGo.Dial("tcp", brokerAddr)
	require.NoError(t, err)
	defer conn.Close()

	controller, err := conn.Controller()
	require.NoError(t, err)

	controllerConn, err := kafkaGo.Dial("tcp", fmt.Sprintf("%s:%d", controller.Host, controller.Port))
	require.NoError(t, err)
	defer controllerConn.Close()

	err = controllerConn.CreateTopics(kafkaGo.TopicConfig{
		Topic:             topic,
		NumPartitions:     1,
		ReplicationFactor: 1,
	})
	if err != nil {
		t.Logf("topic creation error (may already exist): %v", err)
	}
}

func TestOutboxPoller_PublishesEventsToKafka(t *testing.T) {
	brokerAddr, cleanup := setupKafka(t)
	defer cleanup()

	createTopic(t, brokerAddr, "order-events")

	// Give Kafka time to fully initialize the topic
	time.Sleep(5 * time.Second)

	mockRepo := &mockRepository{
		events: []*OutboxEvent{
			{
				ID:          "evt-1",
				AggregateID: "order-123",
				EventType:   EventOrderPlaced,
				Payload:     json.RawMessage(`{"orderId":"order-123","userId":"user-456","totalPrice":17.2}`),
				CreatedAt:   time.Now(),
			},
		},
	}

	writer := &kafkaGo.Writer{
		Addr:         kafkaGo.TCP(brokerAddr),
		Topic:        "order-events",
		Balancer:     &kafkaGo.LeastBytes{},
		WriteTimeout: 10 * time.Second,
		ReadTimeout:  10 * time.Second,
	}
	defer writer.Close()

	poller := &OutboxPoller{
		eventTick: time.Second,
		batchSize: 10,
		repo:      mockRepo,
		writer:    writer,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	go poller.Run(ctx)

	reader := kafkaGo.NewReader(kafkaGo.ReaderConfig{
		Brokers:  []string{brokerAddr},
		Topic:    "order-events",
		GroupID:  "test-consumer",
		MinBytes: 1,
		MaxBytes: 10e6,
	})
	defer reader.Close()

	msg, err := reader.ReadMessage(ctx)
	require.NoError(t, err)

	assert.Equal(t, "order-123", string(msg.Key))

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(msg.Value, &payload))
	assert.Equal(t, "order-123", payload["orderId"])
	assert.Equal(t, "user-456", payload["userId"])

	require.Len(t, msg.Headers, 1)
	assert.Equal(t, "event_type", msg.Headers[0].Key)
	assert.Equal(t, EventOrderPlaced, string(msg.Headers[0].Value))

	// Verify event was marked as processed
	require.Eventually(t, func() bool {
		return mockRepo.events[0].Processed
	}, 5*time.Second, 100*time.Millisecond)
}
