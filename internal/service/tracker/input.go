package tracker

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/timetrack-backend/internal/domain"
)

// StartInput holds parameters for starting tracking on a task.
type StartInput struct {
	TaskID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i StartInput) Validate() error {
	if i.TaskID == uuid.Nil {
		return domain.NewValidationError("task_id", "required")
	}
	return nil
}

// StopInput holds parameters for stopping tracking on a task.
type StopInput struct {
	TaskID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i StopInput) Validate() error {
	if i.TaskID == uuid.Nil {
		return domain.NewValidationError("task_id", "required")
	}
	return nil
}

// CreateManualInput holds parameters for a manually entered record. Both ends
// are client-supplied epoch milliseconds; EndedMs defaults to now.
type CreateManualInput struct {
	TaskID    uuid.UUID
	StartedMs *int64
	EndedMs   *int64
}

// Validate checks all fields and collects all errors.
func (i CreateManualInput) Validate() error {
	var errs []domain.FieldError

	if i.TaskID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "task_id", Message: "required"})
	}
	if i.StartedMs == nil {
		errs = append(errs, domain.FieldError{Field: "started_ms", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RecordsInput holds parameters for listing records.
type RecordsInput struct {
	TaskID *uuid.UUID
	Limit  int
	Offset int
}

// Validate checks all fields and collects all errors.
func (i RecordsInput) Validate() error {
	var errs []domain.FieldError

	if i.TaskID != nil && *i.TaskID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "task_id", Message: "must not be the zero UUID"})
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be >= 0"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be >= 0"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DeleteRecordInput holds parameters for deleting a record.
type DeleteRecordInput struct {
	RecordID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i DeleteRecordInput) Validate() error {
	if i.RecordID == uuid.Nil {
		return domain.NewValidationError("record_id", "required")
	}
	return nil
}
