package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/liammahoney/site-api/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedProject inserts a project with a unique title prefixed by title.
// Returns the stored domain.Project.
func SeedProject(t *testing.T, pool *pgxpool.Pool, title string) domain.Project {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	p := domain.Project{
		ID:           uuid.New(),
		Title:        title + " " + uniqueSuffix(),
		Link:         "https://example.com/" + uniqueSuffix(),
		Repo:         "https://github.com/example/" + uniqueSuffix(),
		Description:  "seeded project",
		Technologies: []string{"Go", "PostgreSQL"},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO projects (id, title, link, repo, description, technologies, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		p.ID, p.Title, p.Link, p.Repo, p.Description, p.Technologies, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProject insert: %v", err)
	}

	return p
}
