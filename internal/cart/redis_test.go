package cart

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestRedis creates a miniredis server and returns a RedisCache instance
func setupTestRedis(t *testing.T) (*RedisCache, *miniredis.Miniredis, func()) {
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	cache := NewRedisCache(client)

	cleanup := func() {
		client.Close()
		mr.Close()
	}

	return cache, mr, cleanup
}

func TestCacheGet_Success(t *testing.T) {
	cache, mr, cleanup := setupTestRedis(t)
	defer cleanup()

	ctx := context.Background()
	userID := "user123"

	cart := &Cart{
		UserID: userID,
		Items: []CartItem{
			{ProductID: "p1", Quantity: 2, UnitPrice: 6.50},
			{ProductID: "p2", Quantity: 3, UnitPrice: 4.20},
		},
		TotalPrice: 25.60,
		Version:    4,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	cartJSON, _ := json.Marshal(cart)
	mr.Set(cacheKey(userID), string(cartJSON))

	result, err := cache.Get(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, userID, result.UserID)
	assert.Len(t, result.Items, 2)
	assert.Equal(t, "p1", result.Items[0].ProductID)
	// The optimistic version must survive the cache round trip
	assert.Equal(t, int64(4), result.Version)
}

func TestCacheGet_CacheMiss(t *testing.T) {
	cache, _, cleanup := setupTestRedis(t)
	defer cleanup()

	result, err := cache.Get(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, ErrCacheMiss)
	assert.Nil(t, result)
}

func TestCacheGet_InvalidJSON(t *testing.T) {
	cache, mr, cleanup := setupTestRedis(t)
	defer cleanup()

	require.NoError(t, mr.Set(cacheKey("user123"), "{not json"))

	_, err := cache.Get(context.Background(), "user123")
	require.ErrorContains(t, err, "unmarshal cart failed")
}

func TestCacheSet_Success(t *testing.T) {
	cache, mr, cleanup := setupTestRedis(t)
	defer cleanup()

	userID := "user456"
	cart := &Cart{
		UserID:     userID,
		Items:      []CartItem{{ProductID: "p1", Quantity: 5, UnitPrice: 6.50}},
		TotalPrice: 32.50,
	}

	err := cache.Set(context.Background(), userID, cart)
	require.NoError(t, err)

	stored, err := mr.Get(cacheKey(userID))
	require.NoError(t, err)

	var storedCart Cart
	require.NoError(t, json.Unmarshal([]byte(stored), &storedCart))
	assert.Equal(t, userID, storedCart.UserID)
	assert.Len(t, storedCart.Items, 1)
	assert.InDelta(t, 32.50, storedCart.TotalPrice, 0.001)
}

func TestCacheSet_WithTTL(t *testing.T) {
	cache, mr, cleanup := setupTestRedis(t)
	defer cleanup()

	err := cache.Set(context.Background(), "user789", &Cart{UserID: "user789"})
	require.NoError(t, err)

	ttl := mr.TTL(cacheKey("user789"))
	assert.True(t, ttl >= 15*time.Minute, "TTL should be at least base TTL")
	assert.True(t, ttl <= 20*time.Minute, "TTL should be base + max jitter")
}

func TestCacheDelete_Success(t *testing.T) {
	cache, mr, cleanup := setupTestRedis(t)
	defer cleanup()

	userID := "user123"
	mr.Set(cacheKey(userID), `{"userId":"user123"}`)

	err := cache.Delete(context.Background(), userID)
	require.NoError(t, err)
	assert.False(t, mr.Exists(cacheKey(userID)))
}

func TestCacheDelete_MissingKeyIsNoop(t *testing.T) {
	cache, _, cleanup := setupTestRedis(t)
	defer cleanup()

	err := cache.Delete(context.Background(), "nonexistent")
	assert.NoError(t, err)
}
