// Package task implements the Task repository using PostgreSQL.
// Listing uses squirrel to build the dynamic filter query; everything else
// is raw SQL.
package task

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

// Repo provides task persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new task repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const taskColumns = `id, user_id, project_id, activity_id, name, created_at, deleted, done`

const createSQL = `
INSERT INTO tasks (id, user_id, project_id, activity_id, name, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + taskColumns

const getByIDSQL = `
SELECT ` + taskColumns + `
FROM tasks
WHERE id = $1 AND user_id = $2 AND NOT deleted`

const updateSQL = `
UPDATE tasks
SET name = $3, project_id = $4, activity_id = $5
WHERE id = $1 AND user_id = $2 AND NOT deleted
RETURNING ` + taskColumns

const setDoneSQL = `
UPDATE tasks
SET done = $3
WHERE id = $1 AND user_id = $2 AND NOT deleted
RETURNING ` + taskColumns

const softDeleteSQL = `
UPDATE tasks
SET deleted = true
WHERE id = $1 AND user_id = $2 AND NOT deleted`

const softDeleteByProjectSQL = `
UPDATE tasks
SET deleted = true
WHERE project_id = $1 AND user_id = $2 AND NOT deleted
RETURNING id`

const softDeleteByActivitySQL = `
UPDATE tasks
SET deleted = true
WHERE activity_id = $1 AND user_id = $2 AND NOT deleted
RETURNING id`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a non-deleted task by primary key filtered by user_id.
// Returns domain.ErrNotFound if the task does not exist, is deleted,
// or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, userID, taskID uuid.UUID) (*domain.Task, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	t, err := scanTask(querier.QueryRow(ctx, getByIDSQL, taskID, userID))
	if err != nil {
		return nil, mapError(err, "task", taskID)
	}

	return t, nil
}

// List returns non-deleted tasks for a user matching the filter, newest first.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, filter domain.TaskFilter) ([]*domain.Task, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := buildListQuery(userID, filter)
	if err != nil {
		return nil, fmt.Errorf("build task list query: %w", err)
	}

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list tasks by user_id: %w", err)
	}
	defer rows.Close()

	tasks, err := scanTasks(rows)
	if err != nil {
		return nil, fmt.Errorf("list tasks by user_id: %w", err)
	}

	return tasks, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new task and returns the persisted domain.Task.
// A project_id or activity_id that does not exist results in
// domain.ErrInvalidReference.
func (r *Repo) Create(ctx context.Context, t *domain.Task) (*domain.Task, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)

	row := querier.QueryRow(ctx, createSQL,
		t.ID,
		t.UserID,
		t.ProjectID,
		t.ActivityID,
		t.Name,
		now,
	)

	created, err := scanTask(row)
	if err != nil {
		return nil, mapError(err, "task", t.ID)
	}

	return created, nil
}

// Update modifies name, project, and activity for the given task.
// Returns domain.ErrNotFound if the task does not exist or is deleted.
func (r *Repo) Update(ctx context.Context, userID, taskID uuid.UUID, params domain.TaskUpdateParams) (*domain.Task, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, updateSQL,
		taskID,
		userID,
		params.Name,
		params.ProjectID,
		params.ActivityID,
	)

	updated, err := scanTask(row)
	if err != nil {
		return nil, mapError(err, "task", taskID)
	}

	return updated, nil
}

// SetDone updates the done flag of a task.
// Returns domain.ErrNotFound if the task does not exist or is deleted.
func (r *Repo) SetDone(ctx context.Context, userID, taskID uuid.UUID, done bool) (*domain.Task, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	updated, err := scanTask(querier.QueryRow(ctx, setDoneSQL, taskID, userID, done))
	if err != nil {
		return nil, mapError(err, "task", taskID)
	}

	return updated, nil
}

// SoftDelete marks a task as deleted. Cascading to the task's records is the
// caller's responsibility (within a transaction).
// Returns domain.ErrNotFound if the task does not exist or is already deleted.
func (r *Repo) SoftDelete(ctx context.Context, userID, taskID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := querier.Exec(ctx, softDeleteSQL, taskID, userID)
	if err != nil {
		return mapError(err, "task", taskID)
	}

	if ct.RowsAffected() == 0 {
		return fmt.Errorf("task %s: %w", taskID, domain.ErrNotFound)
	}

	return nil
}

// SoftDeleteByProject marks all non-deleted tasks of a project as deleted
// and returns their IDs so the caller can cascade to records.
func (r *Repo) SoftDeleteByProject(ctx context.Context, userID, projectID uuid.UUID) ([]uuid.UUID, error) {
	return r.softDeleteBatch(ctx, softDeleteByProjectSQL, projectID, userID)
}

// SoftDeleteByActivity marks all non-deleted tasks of an activity as deleted
// and returns their IDs so the caller can cascade to records.
func (r *Repo) SoftDeleteByActivity(ctx context.Context, userID, activityID uuid.UUID) ([]uuid.UUID, error) {
	return r.softDeleteBatch(ctx, softDeleteByActivitySQL, activityID, userID)
}

func (r *Repo) softDeleteBatch(ctx context.Context, sql string, parentID, userID uuid.UUID) ([]uuid.UUID, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, sql, parentID, userID)
	if err != nil {
		return nil, fmt.Errorf("soft delete tasks: %w", err)
	}
	defer rows.Close()

	ids := []uuid.UUID{}
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("soft delete tasks: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("soft delete tasks: %w", err)
	}

	return ids, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanTask(row pgx.Row) (*domain.Task, error) {
	var t domain.Task
	if err := row.Scan(
		&t.ID,
		&t.UserID,
		&t.ProjectID,
		&t.ActivityID,
		&t.Name,
		&t.CreatedAt,
		&t.Deleted,
		&t.Done,
	); err != nil {
		return nil, err
	}
	return &t, nil
}

func scanTasks(rows pgx.Rows) ([]*domain.Task, error) {
	tasks := []*domain.Task{}
	for rows.Next() {
		var t domain.Task
		if err := rows.Scan(
			&t.ID,
			&t.UserID,
			&t.ProjectID,
			&t.ActivityID,
			&t.Name,
			&t.CreatedAt,
			&t.Deleted,
			&t.Done,
		); err != nil {
			return nil, err
		}
		tasks = append(tasks, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
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
