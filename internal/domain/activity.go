package domain

import (
	"time"

	"github.com/google/uuid"
)

// Activity is a user-defined tag describing the kind of work a task
// represents (e.g. "coding", "meetings").
type Activity struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	CreatedAt time.Time
	Deleted   bool
}
