package domain

import (
	"time"

	"github.com/google/uuid"
)

// Record is one tracked time interval against a task. A NULL EndedAt
// marks the record as open ("currently running"). For any owner at most
// one non-deleted record may be open at a time; the tracker service
// enforces and repairs this invariant.
type Record struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TaskID    uuid.UUID
	StartedAt time.Time
	EndedAt   *time.Time
	Deleted   bool
}

// IsOpen reports whether the record is still running.
func (r *Record) IsOpen() bool {
	return r.EndedAt == nil
}

// Duration returns the elapsed milliseconds of the record, using now for
// the open end. Never negative.
func (r *Record) Duration(now time.Time) int64 {
	var end *int64
	if r.EndedAt != nil {
		ms := TimeToMillis(*r.EndedAt)
		end = &ms
	}
	return DurationMillis(TimeToMillis(r.StartedAt), end, now)
}
