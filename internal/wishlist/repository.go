package wishlist

import (
	"context"
	"errors"
)

var ErrWishlistNotFound = errors.New("wishlist not found")

// WishlistRepository defines the interface for wishlist data operations
// Consumers define this interface, not the MongoDB implementation
type WishlistRepository interface {
	GetWishlist(ctx context.Context, userID string) (*Wishlist, error)
	// AddProduct inserts the product into the user's wishlist with set
	// semantics: adding a product that is already present is a no-op.
	// The wishlist is created lazily on first add.
	AddProduct(ctx context.Context, userID, productID string) error
	RemoveProduct(ctx context.Context, userID, productID string) error
	DeleteWishlist(ctx context.Context, userID string) error
}
