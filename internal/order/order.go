package order

import "time"

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
)

func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered:
		return true
	}
	return false
}

type OrderItem struct {
	ProductID string  `bson:"product_id" json:"productId"`
	Name      string  `bson:"name" json:"name"`
	Quantity  int     `bson:"quantity" json:"quantity"`
	UnitPrice float64 `bson:"unit_price" json:"unitPrice"`
}

type ShippingAddress struct {
	Address    string `bson:"address" json:"address"`
	City       string `bson:"city" json:"city"`
	PostalCode string `bson:"postal_code" json:"postalCode"`
	Country    string `bson:"country" json:"country"`
}

// Order is an immutable snapshot of the cart at checkout: items and total
// are copied from the caller, never re-priced.
type Order struct {
	ID              string          `bson:"_id,omitempty" json:"id"`
	UserID          string          `bson:"user_id" json:"userId"`
	Items           []OrderItem     `bson:"items" json:"items"`
	TotalPrice      float64         `bson:"total_price" json:"totalPrice"`
	ShippingAddress ShippingAddress `bson:"shipping_address" json:"shippingAddress"`
	PaymentMethod   string          `bson:"payment_method" json:"paymentMethod"`
	Status          Status          `bson:"status" json:"status"`
	CreatedAt       time.Time       `bson:"created_at" json:"createdAt"`
	UpdatedAt       time.Time       `bson:"updated_at" json:"updatedAt"`
}
