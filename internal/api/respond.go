package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/chei-t/spice.com/internal/cart"
	"github.com/chei-t/spice.com/internal/catalog"
	"github.com/chei-t/spice.com/internal/message"
	"github.com/chei-t/spice.com/internal/order"
	"github.com/chei-t/spice.com/internal/user"
	"github.com/chei-t/spice.com/internal/wishlist"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{
		Error:   message,
		Code:    code,
		Details: "",
	})
}

// respondDomainError maps domain sentinel errors to HTTP statuses. Anything
// unrecognized is an internal failure.
func respondDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, catalog.ErrProductNotFound):
		respondError(w, http.StatusNotFound, "not_found", "product not found")
	case errors.Is(err, cart.ErrCartNotFound):
		respondError(w, http.StatusNotFound, "not_found", "cart not found")
	case errors.Is(err, cart.ErrItemNotFound):
		respondError(w, http.StatusNotFound, "not_found", "item not found in cart")
	case errors.Is(err, wishlist.ErrWishlistNotFound):
		respondError(w, http.StatusNotFound, "not_found", "wishlist not found")
	case errors.Is(err, user.ErrUserNotFound):
		respondError(w, http.StatusNotFound, "not_found", "user not found")
	case errors.Is(err, order.ErrOrderNotFound):
		respondError(w, http.StatusNotFound, "not_found", "order not found")
	case errors.Is(err, message.ErrMessageNotFound):
		respondError(w, http.StatusNotFound, "not_found", "message not found")
	case errors.Is(err, user.ErrEmailTaken):
		respondError(w, http.StatusBadRequest, "email_taken", "user already exists")
	case errors.Is(err, user.ErrInvalidCredentials):
		respondError(w, http.StatusUnauthorized, "invalid_credentials", "invalid email or password")
	case errors.Is(err, cart.ErrVersionConflict):
		respondError(w, http.StatusConflict, "conflict", "cart was modified concurrently, retry the request")
	case errors.Is(err, catalog.ErrDuplicateName),
		errors.Is(err, catalog.ErrInvalidName),
		errors.Is(err, catalog.ErrInvalidImage),
		errors.Is(err, catalog.ErrInvalidPrice),
		errors.Is(err, catalog.ErrInvalidDescription),
		errors.Is(err, catalog.ErrInvalidCategory),
		errors.Is(err, user.ErrInvalidName),
		errors.Is(err, user.ErrInvalidEmail),
		errors.Is(err, user.ErrPasswordTooShort),
		errors.Is(err, cart.ErrInvalidQuantity),
		errors.Is(err, order.ErrNoItems),
		errors.Is(err, order.ErrInvalidStatus),
		errors.Is(err, message.ErrInvalidMessage):
		respondError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		log.Printf("internal error: %v", err)
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}
