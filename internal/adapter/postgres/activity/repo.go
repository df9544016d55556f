// Package activity implements the Activity repository using PostgreSQL.
package activity

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

// Repo provides activity persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new activity repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const activityColumns = `id, user_id, name, created_at, deleted`

const createSQL = `
INSERT INTO activities (id, user_id, name, created_at)
VALUES ($1, $2, $3, $4)
RETURNING ` + activityColumns

const getByIDSQL = `
SELECT ` + activityColumns + `
FROM activities
WHERE id = $1 AND user_id = $2 AND NOT deleted`

const listByUserSQL = `
SELECT ` + activityColumns + `
FROM activities
WHERE user_id = $1 AND NOT deleted
ORDER BY created_at DESC`

const updateSQL = `
UPDATE activities
SET name = $3
WHERE id = $1 AND user_id = $2 AND NOT deleted
RETURNING ` + activityColumns

const softDeleteSQL = `
UPDATE activities
SET deleted = true
WHERE id = $1 AND user_id = $2 AND NOT deleted`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a non-deleted activity by primary key filtered by user_id.
// Returns domain.ErrNotFound if the activity does not exist, is deleted,
// or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, userID, activityID uuid.UUID) (*domain.Activity, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	a, err := scanActivity(querier.QueryRow(ctx, getByIDSQL, activityID, userID))
	if err != nil {
		return nil, mapError(err, "activity", activityID)
	}

	return a, nil
}

// ListByUser returns all non-deleted activities for a user, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Activity, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listByUserSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list activities by user_id: %w", err)
	}
	defer rows.Close()

	activities, err := scanActivities(rows)
	if err != nil {
		return nil, fmt.Errorf("list activities by user_id: %w", err)
	}

	return activities, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new activity and returns the persisted domain.Activity.
// A duplicate name for the same user results in domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, a *domain.Activity) (*domain.Activity, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)

	created, err := scanActivity(querier.QueryRow(ctx, createSQL, a.ID, a.UserID, a.Name, now))
	if err != nil {
		return nil, mapError(err, "activity", a.ID)
	}

	return created, nil
}

// Update renames the given activity.
// Returns domain.ErrNotFound if the activity does not exist or is deleted.
func (r *Repo) Update(ctx context.Context, userID, activityID uuid.UUID, name string) (*domain.Activity, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	updated, err := scanActivity(querier.QueryRow(ctx, updateSQL, activityID, userID, name))
	if err != nil {
		return nil, mapError(err, "activity", activityID)
	}

	return updated, nil
}

// SoftDelete marks an activity as deleted. Cascading to the activity's tasks
// and their records is the caller's responsibility (within a transaction).
// Returns domain.ErrNotFound if the activity does not exist or is already deleted.
func (r *Repo) SoftDelete(ctx context.Context, userID, activityID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := querier.Exec(ctx, softDeleteSQL, activityID, userID)
	if err != nil {
		return mapError(err, "activity", activityID)
	}

	if ct.RowsAffected() == 0 {
		return fmt.Errorf("activity %s: %w", activityID, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanActivity(row pgx.Row) (*domain.Activity, error) {
	var a domain.Activity
	if err := row.Scan(
		&a.ID,
		&a.UserID,
		&a.Name,
		&a.CreatedAt,
		&a.Deleted,
	); err != nil {
		return nil, err
	}
	return &a, nil
}

func scanActivities(rows pgx.Rows) ([]*domain.Activity, error) {
	activities := []*domain.Activity{}
	for rows.Next() {
		var a domain.Activity
		if err := rows.Scan(
			&a.ID,
			&a.UserID,
			&a.Name,
			&a.CreatedAt,
			&a.Deleted,
		); err != nil {
			return nil, err
		}
		activities = append(activities, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return activities, nil
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
