package tracker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/timetrack-backend/internal/domain"
	"github.com/heartmarshall/timetrack-backend/pkg/ctxutil"
)

// ActiveTracking describes the record currently being tracked and its task.
type ActiveTracking struct {
	Task   *domain.Task
	Record *domain.Record
}

// ActiveTask returns the task currently being tracked, or nil if nothing is.
// It also reconciles: if more than one record is open, everything but the
// newest is force-closed; if the surviving record points at a missing or
// deleted task, it is closed too and nil is returned.
func (s *Service) ActiveTask(ctx context.Context) (*ActiveTracking, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	open, err := s.records.ListOpenByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list open records: %w", err)
	}
	if len(open) == 0 {
		return nil, nil
	}

	now := s.clock.Now()

	// Newest first: open[0] survives, the rest is an invariant violation
	// left by a crash or a race and gets closed here.
	if len(open) > 1 {
		s.log.WarnContext(ctx, "multiple open records, reconciling",
			slog.String("user_id", userID.String()),
			slog.Int("count", len(open)),
		)
		for _, stale := range open[1:] {
			if _, err := s.records.Close(ctx, userID, stale.ID, now); err != nil && !errors.Is(err, domain.ErrNotFound) {
				return nil, fmt.Errorf("close stale record: %w", err)
			}
		}
	}

	survivor := open[0]

	task, err := s.tasks.GetByID(ctx, userID, survivor.TaskID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Orphaned open record: its task is gone or soft-deleted.
			if _, closeErr := s.records.Close(ctx, userID, survivor.ID, now); closeErr != nil && !errors.Is(closeErr, domain.ErrNotFound) {
				return nil, fmt.Errorf("close orphan record: %w", closeErr)
			}
			s.log.WarnContext(ctx, "closed orphan open record",
				slog.String("user_id", userID.String()),
				slog.String("record_id", survivor.ID.String()),
			)
			return nil, nil
		}
		return nil, fmt.Errorf("get task: %w", err)
	}

	return &ActiveTracking{Task: task, Record: survivor}, nil
}
