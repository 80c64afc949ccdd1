package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/liammahoney/site-api/internal/domain"
	"github.com/liammahoney/site-api/internal/service/project"
	"github.com/liammahoney/site-api/pkg/ctxutil"
)

type projectService interface {
	List(ctx context.Context) ([]domain.Project, error)
	Create(ctx context.Context, input project.CreateInput) (*domain.Project, error)
	Update(ctx context.Context, input project.UpdateInput) (int, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProjectHandler serves the portfolio endpoints.
type ProjectHandler struct {
	svc     projectService
	log     *slog.Logger
	maxBody int64
}

// NewProjectHandler creates a ProjectHandler. Request bodies larger than
// maxBody bytes are rejected.
func NewProjectHandler(svc projectService, logger *slog.Logger, maxBody int64) *ProjectHandler {
	return &ProjectHandler{svc: svc, log: logger.With("handler", "project"), maxBody: maxBody}
}

type projectRequest struct {
	ID           string   `json:"_id"`
	Title        string   `json:"title"`
	Link         string   `json:"link"`
	Repo         string   `json:"repo"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
}

func (p projectRequest) createInput() project.CreateInput {
	return project.CreateInput{
		Title:        p.Title,
		Link:         p.Link,
		Repo:         p.Repo,
		Description:  p.Description,
		Technologies: p.Technologies,
	}
}

type projectResponse struct {
	ID           string    `json:"_id"`
	Title        string    `json:"title"`
	Link         string    `json:"link"`
	Repo         string    `json:"repo,omitempty"`
	Description  string    `json:"description"`
	Technologies []string  `json:"technologies"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func toProjectResponse(p domain.Project) projectResponse {
	techs := p.Technologies
	if techs == nil {
		techs = []string{}
	}
	return projectResponse{
		ID:           p.ID.String(),
		Title:        p.Title,
		Link:         p.Link,
		Repo:         p.Repo,
		Description:  p.Description,
		Technologies: techs,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// List handles GET /projects.
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.svc.List(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := make([]projectResponse, 0, len(projects))
	for _, p := range projects {
		resp = append(resp, toProjectResponse(p))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Create handles POST /project.
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req projectRequest
	if err := decodeJSON(w, r, h.maxBody, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.Create(r.Context(), req.createInput())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"inserted": 1,
		"_id":      created.ID.String(),
	})
}

// Update handles PUT /project. The body replaces every editable field.
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req projectRequest
	if err := decodeJSON(w, r, h.maxBody, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := parseProjectID(req.ID)
	if err != nil {
		writeValidationError(w, err)
		return
	}

	modified, err := h.svc.Update(r.Context(), project.UpdateInput{ID: id, CreateInput: req.createInput()})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"modified": modified})
}

// Delete handles DELETE /project. The body is either a bare JSON string id
// or an object with an "_id" field.
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var raw json.RawMessage
	if err := decodeJSON(w, r, h.maxBody, &raw); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rawID, ok := deleteTarget(raw)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := parseProjectID(rawID)
	if err != nil {
		writeValidationError(w, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"deleted": 1})
}

func deleteTarget(raw json.RawMessage) (string, bool) {
	var id string
	if err := json.Unmarshal(raw, &id); err == nil {
		return id, true
	}
	var obj struct {
		ID string `json:"_id"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil {
		return obj.ID, true
	}
	return "", false
}

// parseProjectID returns uuid.Nil for a blank id so the service reports it
// as a missing field.
func parseProjectID(raw string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domain.NewValidationError("_id", "invalid id")
	}
	return id, nil
}

func (h *ProjectHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeValidationError(w, err)
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "project not found")
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusUnauthorized, "unauthorized request")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "already exists")
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, "concurrent update, retry")
	default:
		h.log.ErrorContext(r.Context(), "internal error",
			slog.String("method", r.Method),
			slog.String("ip", ctxutil.ClientIPFromCtx(r.Context())),
			slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
