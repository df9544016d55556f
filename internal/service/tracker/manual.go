package tracker

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/timetrack-backend/internal/domain"
	"github.com/heartmarshall/timetrack-backend/pkg/ctxutil"
)

// CreateManual inserts a closed record from client-supplied epoch-ms values,
// for manual and offline entry. Both timestamps pass through NormalizeMillis,
// so garbage client clocks degrade to "now" instead of failing. The end
// defaults to now when omitted.
func (s *Service) CreateManual(ctx context.Context, input CreateManualInput) (*domain.Record, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	task, err := s.tasks.GetByID(ctx, userID, input.TaskID)
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}

	now := s.clock.Now()

	startedMs := domain.NormalizeMillis(ctx, input.StartedMs, now)
	endedMs := domain.NormalizeMillis(ctx, input.EndedMs, now)

	startedAt := domain.MillisToTime(*startedMs)
	endedAt := now
	if endedMs != nil {
		endedAt = domain.MillisToTime(*endedMs)
	}
	if endedAt.Before(startedAt) {
		return nil, domain.NewValidationError("ended_ms", "must not be before started_ms")
	}

	var created *domain.Record
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var txErr error
		created, txErr = s.records.Create(txCtx, &domain.Record{
			ID:        uuid.New(),
			UserID:    userID,
			TaskID:    task.ID,
			StartedAt: startedAt,
			EndedAt:   &endedAt,
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
				"started_at": map[string]any{"new": startedAt},
				"ended_at":   map[string]any{"new": endedAt},
				"manual":     map[string]any{"new": true},
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

	s.log.InfoContext(ctx, "manual record created",
		slog.String("user_id", userID.String()),
		slog.String("record_id", created.ID.String()),
	)

	return created, nil
}
