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

// CreateActivity creates a new activity for the authenticated user.
// Returns ErrAlreadyExists if the user already has an activity with that name.
func (s *Service) CreateActivity(ctx context.Context, input CreateActivityInput) (*domain.Activity, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var activity *domain.Activity
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		activity, createErr = s.activities.Create(txCtx, &domain.Activity{
			ID:     uuid.New(),
			UserID: userID,
			Name:   strings.TrimSpace(input.Name),
		})
		if createErr != nil {
			return fmt.Errorf("create activity: %w", createErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeActivity,
			EntityID:   &activity.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"name": map[string]any{"new": activity.Name},
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

	s.log.InfoContext(ctx, "activity created",
		slog.String("user_id", userID.String()),
		slog.String("activity_id", activity.ID.String()),
	)

	return activity, nil
}

// GetActivity returns a single non-deleted activity owned by the user.
func (s *Service) GetActivity(ctx context.Context, activityID uuid.UUID) (*domain.Activity, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if activityID == uuid.Nil {
		return nil, domain.NewValidationError("activity_id", "required")
	}

	activity, err := s.activities.GetByID(ctx, userID, activityID)
	if err != nil {
		return nil, fmt.Errorf("get activity: %w", err)
	}
	return activity, nil
}

// ListActivities returns all non-deleted activities of the user, newest first.
func (s *Service) ListActivities(ctx context.Context) ([]*domain.Activity, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	activities, err := s.activities.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	return activities, nil
}

// UpdateActivity renames an activity.
func (s *Service) UpdateActivity(ctx context.Context, input UpdateActivityInput) (*domain.Activity, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	old, err := s.activities.GetByID(ctx, userID, input.ActivityID)
	if err != nil {
		return nil, fmt.Errorf("get activity: %w", err)
	}

	var activity *domain.Activity
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var updateErr error
		activity, updateErr = s.activities.Update(txCtx, userID, input.ActivityID, strings.TrimSpace(input.Name))
		if updateErr != nil {
			return fmt.Errorf("update activity: %w", updateErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeActivity,
			EntityID:   &activity.ID,
			Action:     domain.AuditActionUpdate,
			Changes: map[string]any{
				"name": map[string]any{"old": old.Name, "new": activity.Name},
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

	return activity, nil
}

// DeleteActivity soft-deletes an activity, every non-deleted task referencing
// it and their records, atomically.
func (s *Service) DeleteActivity(ctx context.Context, activityID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if activityID == uuid.Nil {
		return domain.NewValidationError("activity_id", "required")
	}

	activity, err := s.activities.GetByID(ctx, userID, activityID)
	if err != nil {
		return fmt.Errorf("get activity: %w", err)
	}

	var taskCount int
	var recordCount int64

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if delErr := s.activities.SoftDelete(txCtx, userID, activityID); delErr != nil {
			return fmt.Errorf("delete activity: %w", delErr)
		}

		taskIDs, delErr := s.tasks.SoftDeleteByActivity(txCtx, userID, activityID)
		if delErr != nil {
			return fmt.Errorf("delete activity tasks: %w", delErr)
		}
		taskCount = len(taskIDs)

		recordCount, delErr = s.records.SoftDeleteByTaskIDs(txCtx, userID, taskIDs)
		if delErr != nil {
			return fmt.Errorf("delete task records: %w", delErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeActivity,
			EntityID:   &activityID,
			Action:     domain.AuditActionDelete,
			Changes: map[string]any{
				"name":             map[string]any{"old": activity.Name},
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

	s.log.InfoContext(ctx, "activity deleted",
		slog.String("user_id", userID.String()),
		slog.String("activity_id", activityID.String()),
		slog.Int("cascaded_tasks", taskCount),
		slog.Int64("cascaded_records", recordCount),
	)

	return nil
}
