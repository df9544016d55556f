package tracker

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/timetrack-backend/internal/domain"
	"github.com/heartmarshall/timetrack-backend/pkg/ctxutil"
)

// Start begins tracking the given task. Any record still open for the user
// is closed at the same instant inside the same transaction, so the close
// happens-before the insert and no second open record can be observed.
// Returns the new open record.
func (s *Service) Start(ctx context.Context, input StartInput) (*domain.Record, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Ownership and liveness check. A deleted or foreign task reads as
	// not found.
	task, err := s.tasks.GetByID(ctx, userID, input.TaskID)
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}

	now := s.clock.Now()
	var (
		created *domain.Record
		closed  []*domain.Record
	)

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var txErr error
		closed, txErr = s.records.CloseOpenByUser(txCtx, userID, now)
		if txErr != nil {
			return fmt.Errorf("close open records: %w", txErr)
		}

		created, txErr = s.records.Create(txCtx, &domain.Record{
			ID:        uuid.New(),
			UserID:    userID,
			TaskID:    task.ID,
			StartedAt: now,
		})
		if txErr != nil {
			return fmt.Errorf("create record: %w", txErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeRecord,
			EntityID:   &created.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"task_id":    map[string]any{"new": task.ID.String()},
				"started_at": map[string]any{"new": now},
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

	if len(closed) > 0 {
		s.log.InfoContext(ctx, "closed open records on start",
			slog.String("user_id", userID.String()),
			slog.Int("count", len(closed)),
		)
	}

	s.log.InfoContext(ctx, "tracking started",
		slog.String("user_id", userID.String()),
		slog.String("task_id", task.ID.String()),
		slog.String("record_id", created.ID.String()),
	)

	return created, nil
}
