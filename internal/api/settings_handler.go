package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/chei-t/spice.com/internal/payment"
	"github.com/chei-t/spice.com/internal/settings"
)

// SettingsService covers the store-wide configuration singleton.
type SettingsService interface {
	Get(ctx context.Context) (*settings.Settings, error)
	SavePayment(ctx context.Context, in settings.SavePaymentInput) (*settings.Settings, error)
}

// GatewayClient is the payment gateway as the settings surface consumes it.
type GatewayClient interface {
	CreateIntent(ctx context.Context, amount int64, currency string) (*payment.Intent, error)
}

type SettingsHandler struct {
	service SettingsService
	gateway GatewayClient
}

func NewSettingsHandler(service SettingsService, gateway GatewayClient) *SettingsHandler {
	return &SettingsHandler{service: service, gateway: gateway}
}

func (h *SettingsHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	s, err := h.service.Get(r.Context())
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, s)
}

func (h *SettingsHandler) SavePaymentSettings(w http.ResponseWriter, r *http.Request) {
	var req settings.SavePaymentInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	saved, err := h.service.SavePayment(r.Context(), req)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, saved)
}

// TestGateway creates a minimal payment intent to verify the configured
// gateway credentials actually work.
func (h *SettingsHandler) TestGateway(w http.ResponseWriter, r *http.Request) {
	intent, err := h.gateway.CreateIntent(r.Context(), 100, "usd")
	if err != nil {
		if errors.Is(err, payment.ErrGatewayUnavailable) {
			respondError(w, http.StatusBadGateway, "gateway_unavailable", "payment gateway unavailable")
			return
		}
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"status":   "ok",
		"intentId": intent.ID,
	})
}
