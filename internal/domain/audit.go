package domain

import (
	"time"

	"github.com/google/uuid"
)

// EntityType identifies the kind of domain entity (used in audit logs).
type EntityType string

const (
	EntityTypeProject  EntityType = "PROJECT"
	EntityTypeActivity EntityType = "ACTIVITY"
	EntityTypeTask     EntityType = "TASK"
	EntityTypeRecord   EntityType = "RECORD"
	EntityTypeUser     EntityType = "USER"
)

func (t EntityType) String() string { return string(t) }

func (t EntityType) IsValid() bool {
	switch t {
	case EntityTypeProject, EntityTypeActivity, EntityTypeTask, EntityTypeRecord, EntityTypeUser:
		return true
	}
	return false
}

// AuditAction identifies what happened to the entity.
type AuditAction string

const (
	AuditActionCreate AuditAction = "CREATE"
	AuditActionUpdate AuditAction = "UPDATE"
	AuditActionDelete AuditAction = "DELETE"
)

func (a AuditAction) String() string { return string(a) }

// AuditRecord is one append-only entry in the change history.
type AuditRecord struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	EntityType EntityType
	EntityID   *uuid.UUID
	Action     AuditAction
	Changes    map[string]any
	CreatedAt  time.Time
}
