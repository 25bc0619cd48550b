package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sony/gobreaker/v2"
)

var ErrGatewayUnavailable = errors.New("payment gateway unavailable")

// Intent is a payment intent at the external gateway. Amounts are in minor
// units (cents).
type Intent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
	Status       string `json:"status"`
}

// Client talks to a Stripe-style payment gateway over HTTP. All calls run
// through a circuit breaker so a dead gateway fails fast instead of tying
// up request handlers.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	breaker *gobreaker.CircuitBreaker[*Intent]
}

func NewClient(baseURL, apiKey string) *Client {
	settings := gobreaker.Settings{
		Name:    "payment-gateway",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	}

	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 10 * time.Second},
		breaker: gobreaker.NewCircuitBreaker[*Intent](settings),
	}
}

// CreateIntent registers a payment intent for the given amount.
func (c *Client) CreateIntent(ctx context.Context, amount int64, currency string) (*Intent, error) {
	if currency == "" {
		currency = "usd"
	}

	return c.breaker.Execute(func() (*Intent, error) {
		form := url.Values{}
		form.Set("amount", strconv.FormatInt(amount, 10))
		form.Set("currency", currency)

		req, err := http.NewRequestWithContext(ctx, http.MethodPost,
			c.baseURL+"/v1/payment_intents", bytes.NewBufferString(form.Encode()))
		if err != nil {
			return nil, fmt.Errorf("build intent request: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		return c.do(req)
	})
}

// GetIntent fetches the current state of a payment intent.
func (c *Client) GetIntent(ctx context.Context, id string) (*Intent, error) {
	return c.breaker.Execute(func() (*Intent, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet,
			c.baseURL+"/v1/payment_intents/"+id, nil)
		if err != nil {
			return nil, fmt.Errorf("build intent request: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+c.apiKey)

		return c.do(req)
	})
}

func (c *Client) do(req *http.Request) (*Intent, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		return nil, fmt.Errorf("%w: status %d", ErrGatewayUnavailable, resp.StatusCode)
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("payment gateway rejected request: status %d", resp.StatusCode)
	}

	var intent Intent
	if err := json.NewDecoder(resp.Body).Decode(&intent); err != nil {
		return nil, fmt.Errorf("decode intent response: %w", err)
	}
	return &intent, nil
}
