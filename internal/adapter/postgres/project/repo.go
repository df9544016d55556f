// Package project implements the Project repository using PostgreSQL.
package project

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/timetrack-backend/internal/adapter/postgres"
	"github.com/heartmarshall/timetrack-backend/internal/domain"
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
// SQL constants
// ---------------------------------------------------------------------------

const projectColumns = `id, user_id, name, description, color, created_at, deleted`

const createSQL = `
INSERT INTO projects (id, user_id, name, description, color, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + projectColumns

const getByIDSQL = `
SELECT ` + projectColumns + `
FROM projects
WHERE id = $1 AND user_id = $2 AND NOT deleted`

const listByUserSQL = `
SELECT ` + projectColumns + `
FROM projects
WHERE user_id = $1 AND NOT deleted
ORDER BY created_at DESC`

const updateSQL = `
UPDATE projects
SET name = $3, description = $4, color = $5
WHERE id = $1 AND user_id = $2 AND NOT deleted
RETURNING ` + projectColumns

const softDeleteSQL = `
UPDATE projects
SET deleted = true
WHERE id = $1 AND user_id = $2 AND NOT deleted`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a non-deleted project by primary key filtered by user_id.
// Returns domain.ErrNotFound if the project does not exist, is deleted,
// or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, userID, projectID uuid.UUID) (*domain.Project, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	p, err := scanProject(querier.QueryRow(ctx, getByIDSQL, projectID, userID))
	if err != nil {
		return nil, mapError(err, "project", projectID)
	}

	return p, nil
}

// ListByUser returns all non-deleted projects for a user, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Project, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listByUserSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list projects by user_id: %w", err)
	}
	defer rows.Close()

	projects, err := scanProjects(rows)
	if err != nil {
		return nil, fmt.Errorf("list projects by user_id: %w", err)
	}

	return projects, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new project and returns the persisted domain.Project.
// A duplicate name for the same user results in domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)

	row := querier.QueryRow(ctx, createSQL,
		p.ID,
		p.UserID,
		p.Name,
		p.Description,
		p.Color,
		now,
	)

	created, err := scanProject(row)
	if err != nil {
		return nil, mapError(err, "project", p.ID)
	}

	return created, nil
}

// Update modifies name, description, and color for the given project.
// Returns domain.ErrNotFound if the project does not exist or is deleted.
func (r *Repo) Update(ctx context.Context, userID, projectID uuid.UUID, params domain.ProjectUpdateParams) (*domain.Project, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, updateSQL,
		projectID,
		userID,
		params.Name,
		params.Description,
		params.Color,
	)

	updated, err := scanProject(row)
	if err != nil {
		return nil, mapError(err, "project", projectID)
	}

	return updated, nil
}

// SoftDelete marks a project as deleted. Cascading to the project's tasks
// and their records is the caller's responsibility (within a transaction).
// Returns domain.ErrNotFound if the project does not exist or is already deleted.
func (r *Repo) SoftDelete(ctx context.Context, userID, projectID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := querier.Exec(ctx, softDeleteSQL, projectID, userID)
	if err != nil {
		return mapError(err, "project", projectID)
	}

	if ct.RowsAffected() == 0 {
		return fmt.Errorf("project %s: %w", projectID, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanProject(row pgx.Row) (*domain.Project, error) {
	var p domain.Project
	if err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.Name,
		&p.Description,
		&p.Color,
		&p.CreatedAt,
		&p.Deleted,
	); err != nil {
		return nil, err
	}
	return &p, nil
}

func scanProjects(rows pgx.Rows) ([]*domain.Project, error) {
	projects := []*domain.Project{}
	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(
			&p.ID,
			&p.UserID,
			&p.Name,
			&p.Description,
			&p.Color,
			&p.CreatedAt,
			&p.Deleted,
		); err != nil {
			return nil, err
		}
		projects = append(projects, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return projects, nil
}

// ---------------------------------------------------------------------------
// Error mapping
// ---------------------------------------------------------------------------

// mapError converts pgx/pgconn errors into domain errors.
func mapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrInvalidReference)
		case "23514": // check_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrValidation)
		}
	}

	return fmt.Errorf("%s %s: %w", entity, id, err)
}
