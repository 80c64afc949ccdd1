package project

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/liammahoney/site-api/internal/domain"
	"github.com/liammahoney/site-api/pkg/ctxutil"
)

// Create stores a new project and returns it with its generated id.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Project, error) {
	if !ctxutil.IsAdmin(ctx) {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	p := domain.Project{ID: uuid.New(), CreatedAt: now, UpdatedAt: now}
	input.apply(&p)

	created, err := s.projects.Create(ctx, &p)
	if err != nil {
		return nil, fmt.Errorf("project.Create: %w", err)
	}

	s.log.InfoContext(ctx, "project created",
		slog.String("project_id", created.ID.String()),
		slog.String("title", created.Title),
		slog.String("ip", ctxutil.ClientIPFromCtx(ctx)))

	return created, nil
}

// Update replaces the project's editable fields and returns how many
// projects were modified: 0 when the stored project already matches.
func (s *Service) Update(ctx context.Context, input UpdateInput) (int, error) {
	if !ctxutil.IsAdmin(ctx) {
		return 0, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return 0, err
	}

	modified := 0
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		current, err := s.projects.GetForUpdate(ctx, input.ID)
		if err != nil {
			return err
		}

		next := *current
		input.apply(&next)
		if current.SameContent(next) {
			return nil
		}

		next.UpdatedAt = time.Now().UTC()
		if _, err := s.projects.Update(ctx, &next); err != nil {
			return err
		}
		modified = 1
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("project.Update: %w", err)
	}

	s.log.InfoContext(ctx, "project updated",
		slog.String("project_id", input.ID.String()),
		slog.Int("modified", modified),
		slog.String("ip", ctxutil.ClientIPFromCtx(ctx)))

	return modified, nil
}

// Delete removes a project by id.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if !ctxutil.IsAdmin(ctx) {
		return domain.ErrUnauthorized
	}
	if id == uuid.Nil {
		return domain.NewValidationError("_id", "required")
	}

	if err := s.projects.Delete(ctx, id); err != nil {
		return fmt.Errorf("project.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "project deleted",
		slog.String("project_id", id.String()),
		slog.String("ip", ctxutil.ClientIPFromCtx(ctx)))

	return nil
}
