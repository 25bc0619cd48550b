package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/chei-t/spice.com/internal/wishlist"
	"github.com/go-chi/chi/v5"
)

// WishlistService is the wishlist aggregate as the handlers consume it.
type WishlistService interface {
	GetWishlist(ctx context.Context, userID string) (*wishlist.ResolvedWishlist, error)
	AddProduct(ctx context.Context, userID, productID string) (*wishlist.ResolvedWishlist, error)
	RemoveProduct(ctx context.Context, userID, productID string) (*wishlist.ResolvedWishlist, error)
	ClearWishlist(ctx context.Context, userID string) error
}

type WishlistHandler struct {
	service WishlistService
}

func NewWishlistHandler(service WishlistService) *WishlistHandler {
	return &WishlistHandler{service: service}
}

func (h *WishlistHandler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r.Context())

	resolved, err := h.service.GetWishlist(r.Context(), u.ID)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, resolved)
}

func (h *WishlistHandler) AddProduct(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r.Context())

	var req struct {
		ProductID string `json:"productId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.ProductID == "" {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "productId is required")
		return
	}

	resolved, err := h.service.AddProduct(r.Context(), u.ID, req.ProductID)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, resolved)
}

func (h *WishlistHandler) RemoveProduct(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r.Context())

	productID := chi.URLParam(r, "productId")
	if productID == "" {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "productId is required")
		return
	}

	resolved, err := h.service.RemoveProduct(r.Context(), u.ID, productID)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, resolved)
}

func (h *WishlistHandler) ClearWishlist(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r.Context())

	if err := h.service.ClearWishlist(r.Context(), u.ID); err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "wishlist cleared"})
}
