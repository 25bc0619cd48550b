package cart

import (
	"time"

	"github.com/chei-t/spice.com/internal/catalog"
)

type Cart struct {
	ID         string     `bson:"_id,omitempty" json:"id,omitempty"`
	UserID     string     `bson:"user_id" json:"userId"`
	Items      []CartItem `bson:"items" json:"items"`
	TotalPrice float64    `bson:"total_price" json:"totalPrice"`
	Version    int64      `bson:"version" json:"version"`
	CreatedAt  time.Time  `bson:"created_at" json:"createdAt"`
	UpdatedAt  time.Time  `bson:"updated_at" json:"updatedAt"`
}

type CartItem struct {
	ProductID string    `bson:"product_id" json:"productId"`
	Quantity  int       `bson:"quantity" json:"quantity"`
	UnitPrice float64   `bson:"unit_price" json:"unitPrice"`
	AddedAt   time.Time `bson:"added_at" json:"addedAt"`
}

// AddItem merges the quantity into an existing line item for the product,
// or appends a new line item with the captured unit price.
func (c *Cart) AddItem(productID string, qty int, unitPrice float64) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity += qty
			return
		}
	}
	c.Items = append(c.Items, CartItem{
		ProductID: productID,
		Quantity:  qty,
		UnitPrice: unitPrice,
		AddedAt:   time.Now(),
	})
}

// SetQuantity overwrites the quantity of an existing line item. A quantity
// of zero or less removes the line. Returns false when no line item exists
// for the product.
func (c *Cart) SetQuantity(productID string, qty int) bool {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			if qty <= 0 {
				c.Items = append(c.Items[:i], c.Items[i+1:]...)
			} else {
				c.Items[i].Quantity = qty
			}
			return true
		}
	}
	return false
}

func (c *Cart) RemoveItem(productID string) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// Recalculate sums unit price times quantity over all current items.
// Always a full scan, never an incremental total.
func (c *Cart) Recalculate() {
	var total float64
	for _, item := range c.Items {
		total += item.UnitPrice * float64(item.Quantity)
	}
	c.TotalPrice = total
}

func (c *Cart) ProductIDs() []string {
	ids := make([]string, len(c.Items))
	for i, item := range c.Items {
		ids[i] = item.ProductID
	}
	return ids
}

// ResolvedCart is the read-side projection: line items with full product
// details joined in for display.
type ResolvedCart struct {
	ID         string         `json:"id,omitempty"`
	UserID     string         `json:"userId"`
	Items      []ResolvedItem `json:"items"`
	TotalPrice float64        `json:"totalPrice"`
	UpdatedAt  time.Time      `json:"updatedAt"`
}

type ResolvedItem struct {
	Product   *catalog.Product `json:"product"`
	Quantity  int              `json:"quantity"`
	UnitPrice float64          `json:"unitPrice"`
	AddedAt   time.Time        `json:"addedAt"`
}

// Resolve joins product details into the cart's line items. Items whose
// product has been deleted from the catalog keep a nil product rather than
// disappearing, so the captured price still counts toward the total.
func (c *Cart) Resolve(products []*catalog.Product) *ResolvedCart {
	byID := make(map[string]*catalog.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	resolved := &ResolvedCart{
		ID:         c.ID,
		UserID:     c.UserID,
		Items:      make([]ResolvedItem, len(c.Items)),
		TotalPrice: c.TotalPrice,
		UpdatedAt:  c.UpdatedAt,
	}
	for i, item := range c.Items {
		resolved.Items[i] = ResolvedItem{
			Product:   byID[item.ProductID],
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			AddedAt:   item.AddedAt,
		}
	}
	return resolved
}
