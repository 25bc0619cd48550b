package settings

import "time"

type PaymentMethods struct {
	CreditCard bool `bson:"credit_card" json:"creditCard"`
	PayPal     bool `bson:"paypal" json:"paypal"`
	GooglePay  bool `bson:"google_pay" json:"googlePay"`
	ApplePay   bool `bson:"apple_pay" json:"applePay"`
	COD        bool `bson:"cod" json:"cod"`
}

type PaymentGateway struct {
	Provider string `bson:"provider" json:"provider"`
	APIKey   string `bson:"api_key" json:"apiKey"`
}

type Shipping struct {
	FlatRate      float64 `bson:"flat_rate" json:"flatRate"`
	FreeThreshold float64 `bson:"free_threshold" json:"freeThreshold"`
}

// Settings is a singleton document: the store has exactly one.
type Settings struct {
	ID             string         `bson:"_id,omitempty" json:"id,omitempty"`
	PaymentMethods PaymentMethods `bson:"payment_methods" json:"paymentMethods"`
	PaymentGateway PaymentGateway `bson:"payment_gateway" json:"paymentGateway"`
	Shipping       Shipping       `bson:"shipping" json:"shipping"`
	UpdatedAt      time.Time      `bson:"updated_at" json:"updatedAt"`
}

// Defaults mirrors a fresh store configuration.
func Defaults() *Settings {
	return &Settings{
		PaymentMethods: PaymentMethods{
			CreditCard: true,
			PayPal:     true,
			COD:        true,
		},
		PaymentGateway: PaymentGateway{Provider: "Stripe"},
		Shipping: Shipping{
			FlatRate:      8.00,
			FreeThreshold: 100.00,
		},
	}
}
