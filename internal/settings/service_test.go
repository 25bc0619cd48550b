package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockRepository struct {
	stored *Settings
	err    error
}

func (m *mockRepository) Get(context.Context) (*Settings, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.stored == nil {
		return nil, ErrSettingsNotFound
	}
	return m.stored, nil
}

func (m *mockRepository) Save(_ context.Context, s *Settings) error {
	if m.err != nil {
		return m.err
	}
	m.stored = s
	return nil
}

func TestGet_NoDocumentReturnsDefaults(t *testing.T) {
	sut := NewService(&mockRepository{})

	s, err := sut.Get(context.Background())
	require.NoError(t, err)
	assert.True(t, s.PaymentMethods.CreditCard)
	assert.True(t, s.PaymentMethods.COD)
	assert.False(t, s.PaymentMethods.GooglePay)
	assert.Equal(t, "Stripe", s.PaymentGateway.Provider)
	assert.Equal(t, 8.00, s.Shipping.FlatRate)
	assert.Equal(t, 100.00, s.Shipping.FreeThreshold)
}

func TestSavePayment_CreatesSingleton(t *testing.T) {
	repo := &mockRepository{}
	sut := NewService(repo)

	saved, err := sut.SavePayment(context.Background(), SavePaymentInput{
		Shipping: &Shipping{FlatRate: 5.00, FreeThreshold: 50.00},
	})
	require.NoError(t, err)
	assert.Equal(t, 5.00, saved.Shipping.FlatRate)
	// Untouched sections keep their defaults
	assert.True(t, saved.PaymentMethods.CreditCard)
	assert.NotNil(t, repo.stored)
}

func TestSavePayment_NilSectionLeavesStoredValues(t *testing.T) {
	repo := &mockRepository{
		stored: &Settings{
			PaymentMethods: PaymentMethods{PayPal: true},
			PaymentGateway: PaymentGateway{Provider: "Mollie", APIKey: "key1"},
			Shipping:       Shipping{FlatRate: 3.00},
		},
	}
	sut := NewService(repo)

	saved, err := sut.SavePayment(context.Background(), SavePaymentInput{
		PaymentMethods: &PaymentMethods{CreditCard: true},
	})
	require.NoError(t, err)
	assert.True(t, saved.PaymentMethods.CreditCard)
	assert.False(t, saved.PaymentMethods.PayPal)
	assert.Equal(t, "Mollie", saved.PaymentGateway.Provider)
	assert.Equal(t, 3.00, saved.Shipping.FlatRate)
}

func TestSavePayment_EmptyGatewayProviderDefaultsToStripe(t *testing.T) {
	sut := NewService(&mockRepository{})

	saved, err := sut.SavePayment(context.Background(), SavePaymentInput{
		PaymentGateway: &PaymentGateway{APIKey: "sk_test"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Stripe", saved.PaymentGateway.Provider)
	assert.Equal(t, "sk_test", saved.PaymentGateway.APIKey)
}
