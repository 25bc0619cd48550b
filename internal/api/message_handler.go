package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/chei-t/spice.com/internal/message"
	"github.com/go-chi/chi/v5"
)

// MessageService covers the contact-form inbox.
type MessageService interface {
	Create(ctx context.Context, msg *message.Message) (*message.Message, error)
	List(ctx context.Context) ([]*message.Message, error)
	MarkRead(ctx context.Context, id string) error
	Reply(ctx context.Context, id, reply string) error
	Delete(ctx context.Context, id string) error
}

type MessageHandler struct {
	service MessageService
}

func NewMessageHandler(service MessageService) *MessageHandler {
	return &MessageHandler{service: service}
}

func (h *MessageHandler) CreateMessage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Inquiry string `json:"inquiry"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	created, err := h.service.Create(r.Context(), &message.Message{
		Name:    req.Name,
		Email:   req.Email,
		Inquiry: req.Inquiry,
		Body:    req.Message,
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, created)
}

func (h *MessageHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.service.List(r.Context())
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, messages)
}

func (h *MessageHandler) MarkMessageRead(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.MarkRead(r.Context(), id); err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "marked as read"})
}

func (h *MessageHandler) ReplyToMessage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req struct {
		Reply string `json:"reply"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if err := h.service.Reply(r.Context(), id, req.Reply); err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "reply sent"})
}

func (h *MessageHandler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.Delete(r.Context(), id); err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "message deleted"})
}
