package cart

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/chei-t/spice.com/internal/catalog"
	"golang.org/x/sync/singleflight"
)

var ErrInvalidQuantity = errors.New("quantity must be at least 1")

// maxSaveAttempts bounds the optimistic read-modify-write retry loop.
const maxSaveAttempts = 3

// ProductLookup is the catalog collaborator: the authoritative source of
// price and product details at the moment an item is added.
type ProductLookup interface {
	Get(ctx context.Context, id string) (*catalog.Product, error)
	GetMany(ctx context.Context, ids []string) ([]*catalog.Product, error)
}

type CartService struct {
	repo     CartRepository
	cache    CartCache
	products ProductLookup
	sfg      singleflight.Group // Prevents cache stampede
}

func NewCartService(repo CartRepository, cache CartCache, products ProductLookup) *CartService {
	return &CartService{
		repo:     repo,
		cache:    cache,
		products: products,
	}
}

// GetCart returns the user's resolved cart. A user with no persisted cart
// gets an empty default without creating a record as a side effect.
func (s *CartService) GetCart(ctx context.Context, userID string) (*ResolvedCart, error) {
	// Use singleflight to prevent multiple concurrent cache misses for same key
	v, err, _ := s.sfg.Do(userID, func() (interface{}, error) {

		cart, err := s.cache.Get(ctx, userID)
		if err == nil {
			return cart, nil // cart is in cache
		}

		if !errors.Is(err, ErrCacheMiss) {
			log.Printf("cache get error: %v \n", err) // log cache error but continue
		}

		cart, errGet := s.repo.GetCart(ctx, userID)
		if errGet != nil && errors.Is(errGet, ErrCartNotFound) {
			// Read default, never persisted.
			return &Cart{UserID: userID, Items: []CartItem{}}, nil
		}
		if errGet != nil {
			return nil, errGet
		}

		// set cache
		go func() {
			errSet := s.cache.Set(context.Background(), userID, cart)
			if errSet != nil {
				log.Printf("cache set error: %v \n", errSet)
			}
		}()

		return cart, nil // cart was not in cache, return it from repo
	})

	if err != nil {
		return nil, err
	}

	return s.resolve(ctx, v.(*Cart))
}

// AddItem merges the quantity into the user's cart, capturing the unit price
// from the catalog at call time. The cart is created lazily on first add.
func (s *CartService) AddItem(ctx context.Context, userID, productID string, qty int) (*ResolvedCart, error) {
	if qty < 1 {
		return nil, ErrInvalidQuantity
	}

	product, err := s.products.Get(ctx, productID)
	if err != nil {
		return nil, err
	}

	return s.mutate(ctx, userID, true, func(c *Cart) error {
		c.AddItem(productID, qty, product.Price)
		return nil
	})
}

// UpdateItem overwrites the quantity of an existing line item. A quantity of
// zero or less removes the line. Both the cart and the line item must
// already exist.
func (s *CartService) UpdateItem(ctx context.Context, userID, productID string, qty int) (*ResolvedCart, error) {
	return s.mutate(ctx, userID, false, func(c *Cart) error {
		if !c.SetQuantity(productID, qty) {
			return ErrItemNotFound
		}
		return nil
	})
}

// RemoveItem removes the line item for the product if present. Removing an
// absent item is a no-op.
func (s *CartService) RemoveItem(ctx context.Context, userID, productID string) (*ResolvedCart, error) {
	return s.mutate(ctx, userID, false, func(c *Cart) error {
		c.RemoveItem(productID)
		return nil
	})
}

// ClearCart deletes the cart document entirely. Clearing an absent cart is
// not an error.
func (s *CartService) ClearCart(ctx context.Context, userID string) error {
	err := s.repo.DeleteCart(ctx, userID)
	if err != nil && !errors.Is(err, ErrCartNotFound) {
		log.Printf("repo delete cart error: %v \n", err)
		return err
	}

	s.invalidateCache(userID)
	return nil
}

// mutate runs one read-modify-write cycle under the optimistic version
// check, retrying on conflict. Every mutation ends with a full-scan total
// recompute before the save.
func (s *CartService) mutate(ctx context.Context, userID string, lazyCreate bool, fn func(*Cart) error) (*ResolvedCart, error) {
	for attempt := 0; attempt < maxSaveAttempts; attempt++ {
		cart, err := s.repo.GetCart(ctx, userID)
		if err != nil {
			if !errors.Is(err, ErrCartNotFound) || !lazyCreate {
				return nil, err
			}
			cart = &Cart{UserID: userID, Items: []CartItem{}}
		}

		if err := fn(cart); err != nil {
			return nil, err
		}
		cart.Recalculate()

		if err := s.repo.SaveCart(ctx, cart); err != nil {
			if errors.Is(err, ErrVersionConflict) {
				continue
			}
			return nil, err
		}

		s.invalidateCache(userID)
		return s.resolve(ctx, cart)
	}

	return nil, ErrVersionConflict
}

func (s *CartService) resolve(ctx context.Context, c *Cart) (*ResolvedCart, error) {
	if len(c.Items) == 0 {
		return c.Resolve(nil), nil
	}
	products, err := s.products.GetMany(ctx, c.ProductIDs())
	if err != nil {
		return nil, err
	}
	return c.Resolve(products), nil
}

func (s *CartService) invalidateCache(userID string) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.cache.Delete(ctx, userID); err != nil {
		log.Printf("cache invalidate error: %v \n", err)
	}
}
