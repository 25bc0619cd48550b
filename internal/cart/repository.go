package cart

import (
	"context"
	"errors"
)

var (
	ErrCartNotFound    = errors.New("cart not found")
	ErrItemNotFound    = errors.New("item not found in cart")
	ErrVersionConflict = errors.New("cart was modified concurrently")
)

// CartRepository defines the interface for cart data operations
// Consumers define this interface, not the MongoDB implementation
type CartRepository interface {
	GetCart(ctx context.Context, userID string) (*Cart, error)
	// SaveCart persists the cart with an optimistic version check: a cart
	// with Version 0 is inserted, anything else replaces the stored document
	// only when the stored version still matches. ErrVersionConflict means
	// another writer got there first.
	SaveCart(ctx context.Context, cart *Cart) error
	DeleteCart(ctx context.Context, userID string) error
}
