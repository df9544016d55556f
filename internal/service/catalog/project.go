package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/timetrack-backend/internal/domain"
	"github.com/heartmarshall/timetrack-backend/pkg/ctxutil"
)

// CreateProject creates a new project for the authenticated user.
// Returns ErrAlreadyExists if the user already has a project with that name.
func (s *Service) CreateProject(ctx context.Context, input CreateProjectInput) (*domain.Project, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	color := input.Color
	if color == "" {
		color = domain.DefaultProjectColor
	}

	var project *domain.Project
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		project, createErr = s.projects.Create(txCtx, &domain.Project{
			ID:          uuid.New(),
			UserID:      userID,
			Name:        strings.TrimSpace(input.Name),
			Description: trimOrNil(input.Description),
			Color:       color,
		})
		if createErr != nil {
			return fmt.Errorf("create project: %w", createErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeProject,
			EntityID:   &project.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"name": map[string]any{"new": project.Name},
			},
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "project created",
		slog.String("user_id", userID.String()),
		slog.String("project_id", project.ID.String()),
	)

	return project, nil
}

// GetProject returns a single non-deleted project owned by the user.
func (s *Service) GetProject(ctx context.Context, projectID uuid.UUID) (*domain.Project, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if projectID == uuid.Nil {
		return nil, domain.NewValidationError("project_id", "required")
	}

	project, err := s.projects.GetByID(ctx, userID, projectID)
	if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}
	return project, nil
}

// ListProjects returns all non-deleted projects of the user, newest first.
func (s *Service) ListProjects(ctx context.Context) ([]*domain.Project, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	projects, err := s.projects.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

// UpdateProject replaces the mutable fields of a project.
func (s *Service) UpdateProject(ctx context.Context, input UpdateProjectInput) (*domain.Project, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	old, err := s.projects.GetByID(ctx, userID, input.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}

	var project *domain.Project
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var updateErr error
		project, updateErr = s.projects.Update(txCtx, userID, input.ProjectID, domain.ProjectUpdateParams{
			Name:        strings.TrimSpace(input.Name),
			Description: trimOrNil(input.Description),
			Color:       input.Color,
		})
		if updateErr != nil {
			return fmt.Errorf("update project: %w", updateErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeProject,
			EntityID:   &project.ID,
			Action:     domain.AuditActionUpdate,
			Changes: map[string]any{
				"name": map[string]any{"old": old.Name, "new": project.Name},
			},
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return project, nil
}

// DeleteProject soft-deletes a project, all its non-deleted tasks and their
// records, atomically. The rows stay in place for audit and recovery; every
// read path and aggregate skips them from here on.
func (s *Service) DeleteProject(ctx context.Context, projectID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if projectID == uuid.Nil {
		return domain.NewValidationError("project_id", "required")
	}

	project, err := s.projects.GetByID(ctx, userID, projectID)
	if err != nil {
		return fmt.Errorf("get project: %w", err)
	}

	var taskCount int
	var recordCount int64

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if delErr := s.projects.SoftDelete(txCtx, userID, projectID); delErr != nil {
			return fmt.Errorf("delete project: %w", delErr)
		}

		taskIDs, delErr := s.tasks.SoftDeleteByProject(txCtx, userID, projectID)
		if delErr != nil {
			return fmt.Errorf("delete project tasks: %w", delErr)
		}
		taskCount = len(taskIDs)

		recordCount, delErr = s.records.SoftDeleteByTaskIDs(txCtx, userID, taskIDs)
		if delErr != nil {
			return fmt.Errorf("delete task records: %w", delErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeProject,
			EntityID:   &projectID,
			Action:     domain.AuditActionDelete,
			Changes: map[string]any{
				"name":             map[string]any{"old": project.Name},
				"cascaded_tasks":   map[string]any{"new": taskCount},
				"cascaded_records": map[string]any{"new": recordCount},
			},
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "project deleted",
		slog.String("user_id", userID.String()),
		slog.String("project_id", projectID.String()),
		slog.Int("cascaded_tasks", taskCount),
		slog.Int64("cascaded_records", recordCount),
	)

	return nil
}
