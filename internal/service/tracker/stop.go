package tracker

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/timetrack-backend/internal/domain"
	"github.com/heartmarshall/timetrack-backend/pkg/ctxutil"
)

// Stop closes the most recent open record of the given task and returns it.
// If the task has no open record, Stop verifies the task exists and returns
// (nil, nil): a second Stop is a no-op, not an error.
func (s *Service) Stop(ctx context.Context, input StopInput) (*domain.Record, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	open, err := s.records.ListOpenByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list open records: %w", err)
	}

	// ListOpenByUser orders newest first, so the first match is the most
	// recently started record of the task.
	var target *domain.Record
	for _, rec := range open {
		if rec.TaskID == input.TaskID {
			target = rec
			break
		}
	}

	if target == nil {
		// Distinguish "nothing to stop" from a task that does not exist.
		if _, err := s.tasks.GetByID(ctx, userID, input.TaskID); err != nil {
			return nil, fmt.Errorf("get task: %w", err)
		}
		return nil, nil
	}

	// Same shape as Start: the close and its audit entry commit together.
	var closed *domain.Record
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var txErr error
		closed, txErr = s.records.Close(txCtx, userID, target.ID, s.clock.Now())
		if txErr != nil {
			return fmt.Errorf("close record: %w", txErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeRecord,
			EntityID:   &closed.ID,
			Action:     domain.AuditActionUpdate,
			Changes: map[string]any{
				"ended_at": map[string]any{"new": closed.EndedAt},
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

	s.log.InfoContext(ctx, "tracking stopped",
		slog.String("user_id", userID.String()),
		slog.String("task_id", input.TaskID.String()),
		slog.String("record_id", closed.ID.String()),
	)

	return closed, nil
}
