// Package project implements the portfolio project repository using PostgreSQL.
package project

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/liammahoney/site-api/internal/adapter/postgres"
	"github.com/liammahoney/site-api/internal/domain"
)

const entity = "project"

var (
	psql      = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	columns   = []string{"id", "title", "link", "repo", "description", "technologies", "created_at", "updated_at"}
	returning = "RETURNING " + strings.Join(columns, ", ")
)

// Repo provides project persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new project repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// List returns every project ordered by title. Returns an empty slice when
// there are none.
func (r *Repo) List(ctx context.Context) ([]domain.Project, error) {
	query, args, err := psql.Select(columns...).
		From("projects").
		OrderBy("title ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list projects query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	projects := make([]domain.Project, 0)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	return projects, nil
}

// GetByID returns a project by primary key.
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate is GetByID with a row lock held until the surrounding
// transaction ends. Outside a transaction the lock is released immediately.
func (r *Repo) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	return r.get(ctx, id, true)
}

func (r *Repo) get(ctx context.Context, id uuid.UUID, lock bool) (*domain.Project, error) {
	b := psql.Select(columns...).From("projects").Where(sq.Eq{"id": id})
	if lock {
		b = b.Suffix("FOR UPDATE")
	}
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get project query: %w", err)
	}

	p, err := scanProject(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return &p, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a project and returns the stored row.
func (r *Repo) Create(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	query, args, err := psql.Insert("projects").
		Columns(columns...).
		Values(p.ID, p.Title, p.Link, p.Repo, p.Description, nonNil(p.Technologies), p.CreatedAt, p.UpdatedAt).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert project query: %w", err)
	}

	created, err := scanProject(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, entity, p.ID)
	}
	return &created, nil
}

// Update replaces the editable fields of an existing project and bumps
// updated_at. Returns domain.ErrNotFound if the id is unknown.
func (r *Repo) Update(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	query, args, err := psql.Update("projects").
		SetMap(map[string]any{
			"title":        p.Title,
			"link":         p.Link,
			"repo":         p.Repo,
			"description":  p.Description,
			"technologies": nonNil(p.Technologies),
			"updated_at":   p.UpdatedAt,
		}).
		Where(sq.Eq{"id": p.ID}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update project query: %w", err)
	}

	updated, err := scanProject(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, entity, p.ID)
	}
	return &updated, nil
}

// Delete removes a project. Returns domain.ErrNotFound if it does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := psql.Delete("projects").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete project query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, entity, id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func scanProject(row pgx.Row) (domain.Project, error) {
	var p domain.Project
	err := row.Scan(&p.ID, &p.Title, &p.Link, &p.Repo, &p.Description, &p.Technologies, &p.CreatedAt, &p.UpdatedAt)
	if p.Technologies == nil {
		p.Technologies = []string{}
	}
	return p, err
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
