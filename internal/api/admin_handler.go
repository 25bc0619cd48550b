package api

import (
	"context"
	"net/http"

	"github.com/chei-t/spice.com/internal/user"
	"github.com/go-chi/chi/v5"
)

// AdminUserService covers account administration.
type AdminUserService interface {
	List(ctx context.Context) ([]*user.User, error)
	Delete(ctx context.Context, id string) error
}

type AdminHandler struct {
	users AdminUserService
}

func NewAdminHandler(users AdminUserService) *AdminHandler {
	return &AdminHandler{users: users}
}

func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, users)
}

func (h *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	// An admin cannot delete their own account.
	if u := currentUser(r.Context()); u.ID == id {
		respondError(w, http.StatusBadRequest, "invalid_request", "cannot delete your own account")
		return
	}

	if err := h.users.Delete(r.Context(), id); err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "user deleted"})
}
