package cart

import (
	"context"
	"errors"
)

type CartCache interface {
	Get(ctx context.Context, userID string) (*Cart, error)
	Set(ctx context.Context, userID string, cart *Cart) error
	Delete(ctx context.Context, userID string) error
}

var ErrCacheMiss = errors.New("cache miss")
