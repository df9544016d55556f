package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/timetrack-backend/internal/domain"
	"github.com/heartmarshall/timetrack-backend/pkg/ctxutil"
)

// checkTaskRefs verifies that the referenced project and activity exist,
// are owned by the user and are not deleted. The DB foreign keys cannot
// express ownership or liveness, so a failed lookup maps to
// ErrInvalidReference here.
func (s *Service) checkTaskRefs(ctx context.Context, userID, projectID, activityID uuid.UUID) error {
	if _, err := s.projects.GetByID(ctx, userID, projectID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("project %s: %w", projectID, domain.ErrInvalidReference)
		}
		return fmt.Errorf("check project: %w", err)
	}
	if _, err := s.activities.GetByID(ctx, userID, activityID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("activity %s: %w", activityID, domain.ErrInvalidReference)
		}
		return fmt.Errorf("check activity: %w", err)
	}
	return nil
}

// CreateTask creates a new task in the given project with the given activity.
func (s *Service) CreateTask(ctx context.Context, input CreateTaskInput) (*domain.Task, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if err := s.checkTaskRefs(ctx, userID, input.ProjectID, input.ActivityID); err != nil {
		return nil, err
	}

	var task *domain.Task
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		task, createErr = s.tasks.Create(txCtx, &domain.Task{
			ID:         uuid.New(),
			UserID:     userID,
			ProjectID:  input.ProjectID,
			ActivityID: input.ActivityID,
			Name:       strings.TrimSpace(input.Name),
		})
		if createErr != nil {
			return fmt.Errorf("create task: %w", createErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeTask,
			EntityID:   &task.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"name":       map[string]any{"new": task.Name},
				"project_id": map[string]any{"new": task.ProjectID.String()},
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

	s.log.InfoContext(ctx, "task created",
		slog.String("user_id", userID.String()),
		slog.String("task_id", task.ID.String()),
	)

	return task, nil
}

// GetTask returns a single non-deleted task owned by the user.
func (s *Service) GetTask(ctx context.Context, taskID uuid.UUID) (*domain.Task, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if taskID == uuid.Nil {
		return nil, domain.NewValidationError("task_id", "required")
	}

	task, err := s.tasks.GetByID(ctx, userID, taskID)
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	return task, nil
}

// ListTasks returns the user's non-deleted tasks, optionally filtered by
// project, activity, done flag or a case-insensitive name substring.
func (s *Service) ListTasks(ctx context.Context, filter domain.TaskFilter) ([]*domain.Task, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	tasks, err := s.tasks.List(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

// UpdateTask replaces the mutable fields of a task, re-validating the
// project and activity references.
func (s *Service) UpdateTask(ctx context.Context, input UpdateTaskInput) (*domain.Task, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	old, err := s.tasks.GetByID(ctx, userID, input.TaskID)
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}

	if err := s.checkTaskRefs(ctx, userID, input.ProjectID, input.ActivityID); err != nil {
		return nil, err
	}

	var task *domain.Task
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var updateErr error
		task, updateErr = s.tasks.Update(txCtx, userID, input.TaskID, domain.TaskUpdateParams{
			Name:       strings.TrimSpace(input.Name),
			ProjectID:  input.ProjectID,
			ActivityID: input.ActivityID,
		})
		if updateErr != nil {
			return fmt.Errorf("update task: %w", updateErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeTask,
			EntityID:   &task.ID,
			Action:     domain.AuditActionUpdate,
			Changes: map[string]any{
				"name": map[string]any{"old": old.Name, "new": task.Name},
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

	return task, nil
}

// MarkTaskDone flips the done flag of a task.
func (s *Service) MarkTaskDone(ctx context.Context, taskID uuid.UUID, done bool) (*domain.Task, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if taskID == uuid.Nil {
		return nil, domain.NewValidationError("task_id", "required")
	}

	task, err := s.tasks.SetDone(ctx, userID, taskID, done)
	if err != nil {
		return nil, fmt.Errorf("set task done: %w", err)
	}

	if err := s.audit.Log(ctx, domain.AuditRecord{
		UserID:     userID,
		EntityType: domain.EntityTypeTask,
		EntityID:   &task.ID,
		Action:     domain.AuditActionUpdate,
		Changes:    map[string]any{"done": map[string]any{"new": done}},
	}); err != nil {
		return nil, fmt.Errorf("audit log: %w", err)
	}

	return task, nil
}

// DeleteTask soft-deletes a task and its records, atomically.
func (s *Service) DeleteTask(ctx context.Context, taskID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if taskID == uuid.Nil {
		return domain.NewValidationError("task_id", "required")
	}

	task, err := s.tasks.GetByID(ctx, userID, taskID)
	if err != nil {
		return fmt.Errorf("get task: %w", err)
	}

	var recordCount int64

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if delErr := s.tasks.SoftDelete(txCtx, userID, taskID); delErr != nil {
			return fmt.Errorf("delete task: %w", delErr)
		}

		var delErr error
		recordCount, delErr = s.records.SoftDeleteByTaskIDs(txCtx, userID, []uuid.UUID{taskID})
		if delErr != nil {
			return fmt.Errorf("delete task records: %w", delErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeTask,
			EntityID:   &taskID,
			Action:     domain.AuditActionDelete,
			Changes: map[string]any{
				"name":             map[string]any{"old": task.Name},
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

	s.log.InfoContext(ctx, "task deleted",
		slog.String("user_id", userID.String()),
		slog.String("task_id", taskID.String()),
		slog.Int64("cascaded_records", recordCount),
	)

	return nil
}
