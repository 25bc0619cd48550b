package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/chei-t/spice.com/internal/cart"
	"github.com/go-chi/chi/v5"
)

// CartService is the cart aggregate as the handlers consume it.
type CartService interface {
	GetCart(ctx context.Context, userID string) (*cart.ResolvedCart, error)
	AddItem(ctx context.Context, userID, productID string, qty int) (*cart.ResolvedCart, error)
	UpdateItem(ctx context.Context, userID, productID string, qty int) (*cart.ResolvedCart, error)
	RemoveItem(ctx context.Context, userID, productID string) (*cart.ResolvedCart, error)
	ClearCart(ctx context.Context, userID string) error
}

type CartHandler struct {
	service CartService
}

func NewCartHandler(service CartService) *CartHandler {
	return &CartHandler{service: service}
}

type cartItemRequestDTO struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r.Context())

	var req cartItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if req.ProductID == "" {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "productId is required")
		return
	}
	if req.Quantity <= 0 || req.Quantity > 99 {
		respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity must be between 1 and 99")
		return
	}

	resolved, err := h.service.AddItem(r.Context(), u.ID, req.ProductID, req.Quantity)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, resolved)
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r.Context())

	resolved, err := h.service.GetCart(r.Context(), u.ID)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, resolved)
}

func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r.Context())

	var req cartItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if req.ProductID == "" {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "productId is required")
		return
	}
	// Zero or negative quantity removes the line item, so only an upper
	// bound is enforced here.
	if req.Quantity > 99 {
		respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity must not exceed 99")
		return
	}

	resolved, err := h.service.UpdateItem(r.Context(), u.ID, req.ProductID, req.Quantity)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, resolved)
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r.Context())

	productID := chi.URLParam(r, "productId")
	if productID == "" {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "productId is required")
		return
	}

	resolved, err := h.service.RemoveItem(r.Context(), u.ID, productID)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, resolved)
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r.Context())

	if err := h.service.ClearCart(r.Context(), u.ID); err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "cart cleared"})
}
