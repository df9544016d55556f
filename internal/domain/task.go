package domain

import (
	"time"

	"github.com/google/uuid"
)

// Task is the unit of tracked work. Every task belongs to exactly one
// project and one activity, both owned by the same user.
type Task struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	ProjectID  uuid.UUID
	ActivityID uuid.UUID
	Name       string
	CreatedAt  time.Time
	Deleted    bool
	Done       bool
}

// TaskUpdateParams holds the mutable fields of a task.
type TaskUpdateParams struct {
	Name       string
	ProjectID  uuid.UUID
	ActivityID uuid.UUID
}

// TaskFilter contains optional filtering parameters for task listings.
// Nil fields are ignored.
type TaskFilter struct {
	ProjectID  *uuid.UUID
	ActivityID *uuid.UUID
	Done       *bool
	Search     *string
}
