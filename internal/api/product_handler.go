package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/chei-t/spice.com/internal/catalog"
	"github.com/go-chi/chi/v5"
)

// ProductService is the catalog as the handlers consume it.
type ProductService interface {
	List(ctx context.Context) ([]*catalog.Product, error)
	Get(ctx context.Context, id string) (*catalog.Product, error)
	Create(ctx context.Context, p *catalog.Product) (*catalog.Product, error)
	Update(ctx context.Context, p *catalog.Product) (*catalog.Product, error)
	Delete(ctx context.Context, id string) error
}

type ProductHandler struct {
	service ProductService
}

func NewProductHandler(service ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

type productRequestDTO struct {
	Name        string  `json:"name"`
	Image       string  `json:"image"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Stock       int     `json:"stock"`
}

func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.List(r.Context())
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, products)
}

func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	product, err := h.service.Get(r.Context(), id)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, product)
}

func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	product, err := h.service.Create(r.Context(), &catalog.Product{
		Name:        req.Name,
		Image:       req.Image,
		Price:       req.Price,
		Description: req.Description,
		Category:    req.Category,
		Stock:       req.Stock,
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, product)
}

func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req productRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	product, err := h.service.Update(r.Context(), &catalog.Product{
		ID:          id,
		Name:        req.Name,
		Image:       req.Image,
		Price:       req.Price,
		Description: req.Description,
		Category:    req.Category,
		Stock:       req.Stock,
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, product)
}

func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.Delete(r.Context(), id); err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "product deleted"})
}
