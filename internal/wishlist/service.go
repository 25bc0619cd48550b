package wishlist

import (
	"context"
	"errors"

	"github.com/chei-t/spice.com/internal/cart"
)

type WishlistService struct {
	repo     WishlistRepository
	products cart.ProductLookup
}

func NewWishlistService(repo WishlistRepository, products cart.ProductLookup) *WishlistService {
	return &WishlistService{repo: repo, products: products}
}

// GetWishlist returns the user's resolved wishlist, or an empty default when
// none has been persisted yet.
func (s *WishlistService) GetWishlist(ctx context.Context, userID string) (*ResolvedWishlist, error) {
	wl, err := s.repo.GetWishlist(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrWishlistNotFound) {
			empty := &Wishlist{UserID: userID, ProductIDs: []string{}}
			return empty.Resolve(nil), nil
		}
		return nil, err
	}
	return s.resolve(ctx, wl)
}

// AddProduct inserts the product into the wishlist if it is not already
// there. The product must exist in the catalog.
func (s *WishlistService) AddProduct(ctx context.Context, userID, productID string) (*ResolvedWishlist, error) {
	if _, err := s.products.Get(ctx, productID); err != nil {
		return nil, err
	}

	if err := s.repo.AddProduct(ctx, userID, productID); err != nil {
		return nil, err
	}

	wl, err := s.repo.GetWishlist(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.resolve(ctx, wl)
}

// RemoveProduct removes the product if present. The wishlist itself must
// exist; removing an absent product is a no-op.
func (s *WishlistService) RemoveProduct(ctx context.Context, userID, productID string) (*ResolvedWishlist, error) {
	if err := s.repo.RemoveProduct(ctx, userID, productID); err != nil {
		return nil, err
	}

	wl, err := s.repo.GetWishlist(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.resolve(ctx, wl)
}

// ClearWishlist deletes the wishlist document entirely. Clearing an absent
// wishlist is not an error.
func (s *WishlistService) ClearWishlist(ctx context.Context, userID string) error {
	err := s.repo.DeleteWishlist(ctx, userID)
	if err != nil && !errors.Is(err, ErrWishlistNotFound) {
		return err
	}
	return nil
}

func (s *WishlistService) resolve(ctx context.Context, wl *Wishlist) (*ResolvedWishlist, error) {
	if len(wl.ProductIDs) == 0 {
		return wl.Resolve(nil), nil
	}
	products, err := s.products.GetMany(ctx, wl.ProductIDs)
	if err != nil {
		return nil, err
	}
	return wl.Resolve(products), nil
}
