package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/chei-t/spice.com/internal/user"
)

// UserService covers registration, login and profile reads.
type UserService interface {
	Register(ctx context.Context, name, email, password string) (*user.AuthResponse, error)
	Login(ctx context.Context, email, password string) (*user.AuthResponse, error)
	Profile(ctx context.Context, userID string) (*user.User, error)
}

type UserHandler struct {
	service UserService
}

func NewUserHandler(service UserService) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	resp, err := h.service.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, resp)
}

func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	resp, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, resp)
}

func (h *UserHandler) Profile(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r.Context())

	profile, err := h.service.Profile(r.Context(), u.ID)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, profile)
}
