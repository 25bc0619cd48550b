package wishlist

import (
	"time"

	"github.com/chei-t/spice.com/internal/catalog"
)

type Wishlist struct {
	ID         string    `bson:"_id,omitempty" json:"id,omitempty"`
	UserID     string    `bson:"user_id" json:"userId"`
	ProductIDs []string  `bson:"product_ids" json:"productIds"`
	CreatedAt  time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updatedAt"`
}

// ResolvedWishlist is the read-side projection with product references
// replaced by full product documents.
type ResolvedWishlist struct {
	ID        string             `json:"id,omitempty"`
	UserID    string             `json:"userId"`
	Products  []*catalog.Product `json:"products"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

func (w *Wishlist) Resolve(products []*catalog.Product) *ResolvedWishlist {
	if products == nil {
		products = []*catalog.Product{}
	}
	return &ResolvedWishlist{
		ID:        w.ID,
		UserID:    w.UserID,
		Products:  products,
		UpdatedAt: w.UpdatedAt,
	}
}
