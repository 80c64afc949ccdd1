package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/liammahoney/site-api/internal/domain"
	"github.com/liammahoney/site-api/internal/service/contact"
)

type contactService interface {
	Send(ctx context.Context, input contact.SendInput) error
}

// ContactHandler relays contact-form messages.
type ContactHandler struct {
	svc     contactService
	log     *slog.Logger
	maxBody int64
}

// NewContactHandler creates a ContactHandler.
func NewContactHandler(svc contactService, logger *slog.Logger, maxBody int64) *ContactHandler {
	return &ContactHandler{svc: svc, log: logger.With("handler", "contact"), maxBody: maxBody}
}

type contactRequest struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
	Email   string `json:"email"`
}

// Send handles POST /contact. A relayed message gets an empty 200.
func (h *ContactHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := decodeJSON(w, r, h.maxBody, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.svc.Send(r.Context(), contact.SendInput{
		Subject: req.Subject,
		Body:    req.Body,
		Email:   req.Email,
	})
	switch {
	case err == nil:
		w.WriteHeader(http.StatusOK)
	case errors.Is(err, domain.ErrValidation):
		writeValidationError(w, err)
	default:
		writeError(w, http.StatusInternalServerError, "message could not be sent")
	}
}
