package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/chei-t/spice.com/internal/order"
	"github.com/go-chi/chi/v5"
)

// OrderService covers checkout and order administration.
type OrderService interface {
	Create(ctx context.Context, o *order.Order) (*order.Order, error)
	ListMine(ctx context.Context, userID string) ([]*order.Order, error)
	ListAll(ctx context.Context) ([]*order.Order, error)
	UpdateStatus(ctx context.Context, id string, status order.Status) (*order.Order, error)
}

type OrderHandler struct {
	service OrderService
}

func NewOrderHandler(service OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

type createOrderRequestDTO struct {
	Items           []order.OrderItem     `json:"items"`
	ShippingAddress order.ShippingAddress `json:"shippingAddress"`
	PaymentMethod   string                `json:"paymentMethod"`
}

func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r.Context())

	var req createOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	created, err := h.service.Create(r.Context(), &order.Order{
		UserID:          u.ID,
		Items:           req.Items,
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, created)
}

func (h *OrderHandler) ListMyOrders(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r.Context())

	orders, err := h.service.ListMine(r.Context(), u.ID)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, orders)
}

func (h *OrderHandler) ListAllOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.ListAll(r.Context())
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, orders)
}

func (h *OrderHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	updated, err := h.service.UpdateStatus(r.Context(), id, order.Status(req.Status))
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, updated)
}
