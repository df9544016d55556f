// Package record implements the time Record repository using PostgreSQL.
package record

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

// Repo provides time record persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new record repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const recordColumns = `id, user_id, task_id, started_at, ended_at, deleted`

// durationExpr computes the elapsed milliseconds of a record in SQL, using
// now() for open records and clamping negative spans to zero. It must stay
// in sync with domain.DurationMillis.
const durationExpr = `GREATEST(0, (EXTRACT(EPOCH FROM (COALESCE(ended_at, now()) - started_at)) * 1000))::bigint`

const createSQL = `
INSERT INTO records (id, user_id, task_id, started_at, ended_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + recordColumns

const getByIDSQL = `
SELECT ` + recordColumns + `
FROM records
WHERE id = $1 AND user_id = $2 AND NOT deleted`

const listOpenByUserSQL = `
SELECT ` + recordColumns + `
FROM records
WHERE user_id = $1 AND ended_at IS NULL AND NOT deleted
ORDER BY started_at DESC`

const closeOpenByUserSQL = `
UPDATE records
SET ended_at = GREATEST($2, started_at)
WHERE user_id = $1 AND ended_at IS NULL AND NOT deleted
RETURNING ` + recordColumns

const closeSQL = `
UPDATE records
SET ended_at = GREATEST($3, started_at)
WHERE id = $1 AND user_id = $2 AND ended_at IS NULL AND NOT deleted
RETURNING ` + recordColumns

const countByUserSQL = `
SELECT count(*) FROM records
WHERE user_id = $1 AND NOT deleted AND ($2::uuid IS NULL OR task_id = $2)`

const listByUserSQL = `
SELECT ` + recordColumns + `
FROM records
WHERE user_id = $1 AND NOT deleted AND ($2::uuid IS NULL OR task_id = $2)
ORDER BY started_at DESC
LIMIT $3 OFFSET $4`

const totalsByTaskIDsSQL = `
SELECT task_id, SUM(` + durationExpr + `)::bigint
FROM records
WHERE user_id = $1 AND task_id = ANY($2) AND NOT deleted
GROUP BY task_id`

const totalByProjectSQL = `
SELECT COALESCE(SUM(` + durationExpr + `), 0)::bigint
FROM records r
JOIN tasks t ON t.id = r.task_id
WHERE r.user_id = $1 AND t.project_id = $2 AND NOT r.deleted`

const totalsByProjectsSQL = `
SELECT t.project_id, SUM(` + durationExpr + `)::bigint
FROM records r
JOIN tasks t ON t.id = r.task_id
WHERE r.user_id = $1 AND NOT r.deleted
GROUP BY t.project_id`

const totalSinceSQL = `
SELECT COALESCE(SUM(` + durationExpr + `), 0)::bigint
FROM records
WHERE user_id = $1 AND NOT deleted AND started_at >= $2`

const softDeleteSQL = `
UPDATE records
SET deleted = true
WHERE id = $1 AND user_id = $2 AND NOT deleted`

const softDeleteByTaskIDsSQL = `
UPDATE records
SET deleted = true
WHERE user_id = $1 AND task_id = ANY($2) AND NOT deleted`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a non-deleted record by primary key filtered by user_id.
func (r *Repo) GetByID(ctx context.Context, userID, recordID uuid.UUID) (*domain.Record, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rec, err := scanRecord(querier.QueryRow(ctx, getByIDSQL, recordID, userID))
	if err != nil {
		return nil, mapError(err, "record", recordID)
	}

	return rec, nil
}

// ListOpenByUser returns all open (ended_at IS NULL) non-deleted records for
// a user, newest started first. Normally at most one record is returned; more
// than one means the single-open-record invariant was violated and the caller
// should repair it.
func (r *Repo) ListOpenByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Record, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listOpenByUserSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list open records: %w", err)
	}
	defer rows.Close()

	records, err := scanRecords(rows)
	if err != nil {
		return nil, fmt.Errorf("list open records: %w", err)
	}

	return records, nil
}

// ListByUser returns records for a user with pagination, newest started first.
// A non-nil taskID narrows the listing to one task.
// Returns records, total count, and error.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, taskID *uuid.UUID, limit, offset int) ([]*domain.Record, int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var total int
	if err := querier.QueryRow(ctx, countByUserSQL, userID, taskID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count records by user_id: %w", err)
	}

	rows, err := querier.Query(ctx, listByUserSQL, userID, taskID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list records by user_id: %w", err)
	}
	defer rows.Close()

	records, err := scanRecords(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("list records by user_id: %w", err)
	}

	return records, total, nil
}

// ---------------------------------------------------------------------------
// Aggregation
// ---------------------------------------------------------------------------

// TotalsByTaskIDs returns the summed duration in milliseconds per task.
// Open records contribute up to now(). Tasks with no records are absent
// from the result map.
func (r *Repo) TotalsByTaskIDs(ctx context.Context, userID uuid.UUID, taskIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	if len(taskIDs) == 0 {
		return map[uuid.UUID]int64{}, nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, totalsByTaskIDsSQL, userID, taskIDs)
	if err != nil {
		return nil, fmt.Errorf("totals by task ids: %w", err)
	}
	defer rows.Close()

	totals := make(map[uuid.UUID]int64, len(taskIDs))
	for rows.Next() {
		var (
			taskID uuid.UUID
			total  int64
		)
		if err := rows.Scan(&taskID, &total); err != nil {
			return nil, fmt.Errorf("totals by task ids: %w", err)
		}
		totals[taskID] = total
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("totals by task ids: %w", err)
	}

	return totals, nil
}

// TotalByProject returns the summed duration in milliseconds across all
// records of the project's tasks, including records of soft-deleted tasks'
// surviving siblings but never deleted records.
func (r *Repo) TotalByProject(ctx context.Context, userID, projectID uuid.UUID) (int64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var total int64
	if err := querier.QueryRow(ctx, totalByProjectSQL, userID, projectID).Scan(&total); err != nil {
		return 0, fmt.Errorf("total by project: %w", err)
	}

	return total, nil
}

// TotalsByProjects returns the summed duration in milliseconds per project
// across all of the user's non-deleted records, in one grouped query.
// Projects with no records are absent from the result map.
func (r *Repo) TotalsByProjects(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]int64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, totalsByProjectsSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("totals by projects: %w", err)
	}
	defer rows.Close()

	totals := map[uuid.UUID]int64{}
	for rows.Next() {
		var (
			projectID uuid.UUID
			total     int64
		)
		if err := rows.Scan(&projectID, &total); err != nil {
			return nil, fmt.Errorf("totals by projects: %w", err)
		}
		totals[projectID] = total
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("totals by projects: %w", err)
	}

	return totals, nil
}

// TotalSince returns the summed duration in milliseconds of records started
// at or after the cutoff. A record started before the cutoff contributes
// nothing, even if it ended (or is still open) after it.
func (r *Repo) TotalSince(ctx context.Context, userID uuid.UUID, since time.Time) (int64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var total int64
	if err := querier.QueryRow(ctx, totalSinceSQL, userID, since.UTC()).Scan(&total); err != nil {
		return 0, fmt.Errorf("total since: %w", err)
	}

	return total, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new record and returns the persisted domain.Record.
// A task_id that does not exist results in domain.ErrInvalidReference.
func (r *Repo) Create(ctx context.Context, rec *domain.Record) (*domain.Record, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	startedAt := rec.StartedAt.UTC().Truncate(time.Microsecond)
	var endedAt *time.Time
	if rec.EndedAt != nil {
		t := rec.EndedAt.UTC().Truncate(time.Microsecond)
		endedAt = &t
	}

	row := querier.QueryRow(ctx, createSQL,
		rec.ID,
		rec.UserID,
		rec.TaskID,
		startedAt,
		endedAt,
	)

	created, err := scanRecord(row)
	if err != nil {
		return nil, mapError(err, "record", rec.ID)
	}

	return created, nil
}

// CloseOpenByUser closes every open non-deleted record of the user at the
// given instant and returns the records that were closed. A record whose
// started_at is after the close instant is closed at started_at so the
// zero-length result still satisfies the ended_at >= started_at constraint.
func (r *Repo) CloseOpenByUser(ctx context.Context, userID uuid.UUID, endedAt time.Time) ([]*domain.Record, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, closeOpenByUserSQL, userID, endedAt.UTC().Truncate(time.Microsecond))
	if err != nil {
		return nil, fmt.Errorf("close open records: %w", err)
	}
	defer rows.Close()

	records, err := scanRecords(rows)
	if err != nil {
		return nil, fmt.Errorf("close open records: %w", err)
	}

	return records, nil
}

// Close sets ended_at on a single open record, clamped so the result still
// satisfies ended_at >= started_at. Returns domain.ErrNotFound if the record
// does not exist, is deleted, or is already closed.
func (r *Repo) Close(ctx context.Context, userID, recordID uuid.UUID, endedAt time.Time) (*domain.Record, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, closeSQL, recordID, userID, endedAt.UTC().Truncate(time.Microsecond))

	closed, err := scanRecord(row)
	if err != nil {
		return nil, mapError(err, "record", recordID)
	}

	return closed, nil
}

// SoftDelete marks a record as deleted.
// Returns domain.ErrNotFound if the record does not exist or is already deleted.
func (r *Repo) SoftDelete(ctx context.Context, userID, recordID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := querier.Exec(ctx, softDeleteSQL, recordID, userID)
	if err != nil {
		return mapError(err, "record", recordID)
	}

	if ct.RowsAffected() == 0 {
		return fmt.Errorf("record %s: %w", recordID, domain.ErrNotFound)
	}

	return nil
}

// SoftDeleteByTaskIDs marks all non-deleted records of the given tasks as
// deleted. Returns the number of affected records. An empty taskIDs slice is
// a no-op.
func (r *Repo) SoftDeleteByTaskIDs(ctx context.Context, userID uuid.UUID, taskIDs []uuid.UUID) (int64, error) {
	if len(taskIDs) == 0 {
		return 0, nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := querier.Exec(ctx, softDeleteByTaskIDsSQL, userID, taskIDs)
	if err != nil {
		return 0, fmt.Errorf("soft delete records by task ids: %w", err)
	}

	return ct.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanRecord(row pgx.Row) (*domain.Record, error) {
	var rec domain.Record
	if err := row.Scan(
		&rec.ID,
		&rec.UserID,
		&rec.TaskID,
		&rec.StartedAt,
		&rec.EndedAt,
		&rec.Deleted,
	); err != nil {
		return nil, err
	}
	return &rec, nil
}

func scanRecords(rows pgx.Rows) ([]*domain.Record, error) {
	records := []*domain.Record{}
	for rows.Next() {
		var rec domain.Record
		if err := rows.Scan(
			&rec.ID,
			&rec.UserID,
			&rec.TaskID,
			&rec.StartedAt,
			&rec.EndedAt,
			&rec.Deleted,
		); err != nil {
			return nil, err
		}
		records = append(records, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
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
