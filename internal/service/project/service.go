// Package project manages the portfolio shown on the public site.
package project

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/liammahoney/site-api/internal/domain"
)

type projectRepo interface {
	List(ctx context.Context) ([]domain.Project, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	Create(ctx context.Context, p *domain.Project) (*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) (*domain.Project, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides project listing and admin-only writes.
type Service struct {
	projects projectRepo
	tx       txManager
	log      *slog.Logger
}

// NewService creates a new project service.
func NewService(log *slog.Logger, projects projectRepo, tx txManager) *Service {
	return &Service{
		projects: projects,
		tx:       tx,
		log:      log.With("service", "project"),
	}
}

// List returns every project ordered by title. Never returns a nil slice.
func (s *Service) List(ctx context.Context) ([]domain.Project, error) {
	projects, err := s.projects.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("project.List: %w", err)
	}
	if projects == nil {
		projects = []domain.Project{}
	}
	return projects, nil
}
