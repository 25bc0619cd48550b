package cart

import (
	"testing"

	"github.com/chei-t/spice.com/internal/catalog"
	"github.com/stretchr/testify/assert"
)

func TestAddItem_MergesQuantityForSameProduct(t *testing.T) {
	c := &Cart{UserID: "u1", Items: []CartItem{}}

	c.AddItem("p1", 2, 4.50)
	c.AddItem("p1", 3, 9.99)

	assert.Len(t, c.Items, 1)
	assert.Equal(t, 5, c.Items[0].Quantity)
	// First captured price wins on merge
	assert.Equal(t, 4.50, c.Items[0].UnitPrice)
}

func TestAddItem_AppendsNewProduct(t *testing.T) {
	c := &Cart{UserID: "u1", Items: []CartItem{}}

	c.AddItem("p1", 1, 4.50)
	c.AddItem("p2", 2, 3.10)

	assert.Len(t, c.Items, 2)
	assert.Equal(t, "p2", c.Items[1].ProductID)
	assert.Equal(t, 3.10, c.Items[1].UnitPrice)
}

func TestSetQuantity_ZeroRemovesLine(t *testing.T) {
	c := &Cart{Items: []CartItem{
		{ProductID: "p1", Quantity: 2, UnitPrice: 4.50},
		{ProductID: "p2", Quantity: 1, UnitPrice: 3.10},
	}}

	ok := c.SetQuantity("p1", 0)

	assert.True(t, ok)
	assert.Len(t, c.Items, 1)
	assert.Equal(t, "p2", c.Items[0].ProductID)
}

func TestSetQuantity_MissingProduct(t *testing.T) {
	c := &Cart{Items: []CartItem{{ProductID: "p1", Quantity: 2}}}

	ok := c.SetQuantity("p9", 5)

	assert.False(t, ok)
	assert.Len(t, c.Items, 1)
}

func TestRemoveItem_AbsentProductIsNoop(t *testing.T) {
	c := &Cart{Items: []CartItem{{ProductID: "p1", Quantity: 2}}}

	c.RemoveItem("p9")

	assert.Len(t, c.Items, 1)
}

func TestRecalculate_FullScanTotal(t *testing.T) {
	c := &Cart{
		Items: []CartItem{
			{ProductID: "p1", Quantity: 2, UnitPrice: 4.50},
			{ProductID: "p2", Quantity: 3, UnitPrice: 3.10},
		},
		TotalPrice: 999, // stale total must be overwritten
	}

	c.Recalculate()

	assert.InDelta(t, 18.30, c.TotalPrice, 0.001)
}

func TestRecalculate_EmptyCartIsZero(t *testing.T) {
	c := &Cart{Items: []CartItem{}, TotalPrice: 42}

	c.Recalculate()

	assert.Equal(t, 0.0, c.TotalPrice)
}

func TestResolve_DeletedProductKeepsLine(t *testing.T) {
	c := &Cart{
		UserID: "u1",
		Items: []CartItem{
			{ProductID: "p1", Quantity: 2, UnitPrice: 4.50},
			{ProductID: "gone", Quantity: 1, UnitPrice: 9.00},
		},
		TotalPrice: 18.00,
	}

	resolved := c.Resolve([]*catalog.Product{{ID: "p1", Name: "Ceylon Cinnamon"}})

	assert.Len(t, resolved.Items, 2)
	assert.Equal(t, "Ceylon Cinnamon", resolved.Items[0].Product.Name)
	assert.Nil(t, resolved.Items[1].Product)
	assert.Equal(t, 18.00, resolved.TotalPrice)
}
