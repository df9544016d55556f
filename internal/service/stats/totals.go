package stats

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/timetrack-backend/internal/domain"
	"github.com/heartmarshall/timetrack-backend/pkg/ctxutil"
)

// TaskTotal returns the summed duration in milliseconds of the task's
// non-deleted records. A task with no records totals zero.
func (s *Service) TaskTotal(ctx context.Context, taskID uuid.UUID) (int64, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}
	if taskID == uuid.Nil {
		return 0, domain.NewValidationError("task_id", "required")
	}

	if _, err := s.tasks.GetByID(ctx, userID, taskID); err != nil {
		return 0, fmt.Errorf("get task: %w", err)
	}

	totals, err := s.records.TotalsByTaskIDs(ctx, userID, []uuid.UUID{taskID})
	if err != nil {
		return 0, fmt.Errorf("task total: %w", err)
	}

	return totals[taskID], nil
}

// ProjectTotal returns the summed duration in milliseconds across all
// non-deleted records of the project's tasks. The sum is computed in a
// single query, never per task.
func (s *Service) ProjectTotal(ctx context.Context, projectID uuid.UUID) (int64, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}
	if projectID == uuid.Nil {
		return 0, domain.NewValidationError("project_id", "required")
	}

	if _, err := s.projects.GetByID(ctx, userID, projectID); err != nil {
		return 0, fmt.Errorf("get project: %w", err)
	}

	total, err := s.records.TotalByProject(ctx, userID, projectID)
	if err != nil {
		return 0, fmt.Errorf("project total: %w", err)
	}

	return total, nil
}

// TodayTotal returns the milliseconds tracked since local midnight in the
// user's configured timezone. An unloadable timezone falls back to UTC.
func (s *Service) TodayTotal(ctx context.Context) (int64, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	midnight, err := s.localMidnight(ctx, userID)
	if err != nil {
		return 0, err
	}

	total, err := s.records.TotalSince(ctx, userID, midnight)
	if err != nil {
		return 0, fmt.Errorf("today total: %w", err)
	}

	return total, nil
}

// localMidnight resolves the start of the current day in the user's timezone.
func (s *Service) localMidnight(ctx context.Context, userID uuid.UUID) (time.Time, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return time.Time{}, fmt.Errorf("get user: %w", err)
	}

	loc, err := time.LoadLocation(user.Timezone)
	if err != nil {
		s.log.WarnContext(ctx, "unknown user timezone, falling back to UTC",
			slog.String("user_id", userID.String()),
			slog.String("timezone", user.Timezone),
		)
		loc = time.UTC
	}

	now := s.clock.Now().In(loc)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc), nil
}
