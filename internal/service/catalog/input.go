package catalog

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/timetrack-backend/internal/domain"
)

func validateName(errs []domain.FieldError, name string) []domain.FieldError {
	name = strings.TrimSpace(name)
	if len(name) < 2 {
		return append(errs, domain.FieldError{Field: "name", Message: "min 2 characters"})
	}
	if len(name) > 50 {
		return append(errs, domain.FieldError{Field: "name", Message: "max 50 characters"})
	}
	return errs
}

// CreateProjectInput holds the parameters for creating a project.
type CreateProjectInput struct {
	Name        string
	Description *string
	Color       string // optional, defaults to domain.DefaultProjectColor
}

// Validate checks all fields and collects all errors.
func (i CreateProjectInput) Validate() error {
	var errs []domain.FieldError

	errs = validateName(errs, i.Name)
	if i.Description != nil && len(strings.TrimSpace(*i.Description)) > 500 {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 500 characters"})
	}
	if i.Color != "" && !domain.IsValidHexColor(i.Color) {
		errs = append(errs, domain.FieldError{Field: "color", Message: "must be a hex color like #AB12CD"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateProjectInput holds the parameters for updating a project.
type UpdateProjectInput struct {
	ProjectID   uuid.UUID
	Name        string
	Description *string // nil = clear
	Color       string
}

// Validate checks all fields and collects all errors.
func (i UpdateProjectInput) Validate() error {
	var errs []domain.FieldError

	if i.ProjectID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "project_id", Message: "required"})
	}
	errs = validateName(errs, i.Name)
	if i.Description != nil && len(strings.TrimSpace(*i.Description)) > 500 {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 500 characters"})
	}
	if !domain.IsValidHexColor(i.Color) {
		errs = append(errs, domain.FieldError{Field: "color", Message: "must be a hex color like #AB12CD"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateActivityInput holds the parameters for creating an activity.
type CreateActivityInput struct {
	Name string
}

// Validate checks all fields and collects all errors.
func (i CreateActivityInput) Validate() error {
	if errs := validateName(nil, i.Name); len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateActivityInput holds the parameters for updating an activity.
type UpdateActivityInput struct {
	ActivityID uuid.UUID
	Name       string
}

// Validate checks all fields and collects all errors.
func (i UpdateActivityInput) Validate() error {
	var errs []domain.FieldError

	if i.ActivityID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "activity_id", Message: "required"})
	}
	errs = validateName(errs, i.Name)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateTaskInput holds the parameters for creating a task.
type CreateTaskInput struct {
	Name       string
	ProjectID  uuid.UUID
	ActivityID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i CreateTaskInput) Validate() error {
	var errs []domain.FieldError

	errs = validateName(errs, i.Name)
	if i.ProjectID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "project_id", Message: "required"})
	}
	if i.ActivityID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "activity_id", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateTaskInput holds the parameters for updating a task.
type UpdateTaskInput struct {
	TaskID     uuid.UUID
	Name       string
	ProjectID  uuid.UUID
	ActivityID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i UpdateTaskInput) Validate() error {
	var errs []domain.FieldError

	if i.TaskID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "task_id", Message: "required"})
	}
	errs = validateName(errs, i.Name)
	if i.ProjectID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "project_id", Message: "required"})
	}
	if i.ActivityID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "activity_id", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
