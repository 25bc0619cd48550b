package payment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateIntent_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/payment_intents", r.URL.Path)
		assert.Equal(t, "Bearer sk_test", r.Header.Get("Authorization"))

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "1720", r.Form.Get("amount"))
		assert.Equal(t, "eur", r.Form.Get("currency"))

		json.NewEncoder(w).Encode(Intent{
			ID:           "pi_123",
			ClientSecret: "pi_123_secret",
			Amount:       1720,
			Currency:     "eur",
			Status:       "requires_payment_method",
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "sk_test")
	intent, err := client.CreateIntent(context.Background(), 1720, "eur")
	require.NoError(t, err)
	assert.Equal(t, "pi_123", intent.ID)
	assert.Equal(t, int64(1720), intent.Amount)
}

func TestCreateIntent_DefaultCurrency(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "usd", r.Form.Get("currency"))
		json.NewEncoder(w).Encode(Intent{ID: "pi_123"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "sk_test")
	_, err := client.CreateIntent(context.Background(), 100, "")
	require.NoError(t, err)
}

func TestGetIntent_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/payment_intents/pi_123", r.URL.Path)
		json.NewEncoder(w).Encode(Intent{ID: "pi_123", Status: "succeeded"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "sk_test")
	intent, err := client.GetIntent(context.Background(), "pi_123")
	require.NoError(t, err)
	assert.Equal(t, "succeeded", intent.Status)
}

func TestCreateIntent_ServerErrorIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "sk_test")
	_, err := client.CreateIntent(context.Background(), 100, "usd")
	assert.ErrorIs(t, err, ErrGatewayUnavailable)
}

func TestCreateIntent_ClientErrorIsRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "sk_test")
	_, err := client.CreateIntent(context.Background(), 100, "usd")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrGatewayUnavailable)
	assert.Contains(t, err.Error(), "rejected")
}

func TestBreaker_OpensAfterConsecutiveFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "sk_test")
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := client.CreateIntent(ctx, 100, "usd")
		assert.ErrorIs(t, err, ErrGatewayUnavailable)
	}

	// Breaker is now open: the request fails without reaching the server
	_, err := client.CreateIntent(ctx, 100, "usd")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrGatewayUnavailable)
}
