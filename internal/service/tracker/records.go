package tracker

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/timetrack-backend/internal/domain"
	"github.com/heartmarshall/timetrack-backend/pkg/ctxutil"
)

// RecordPage is one page of the record history plus the total match count.
type RecordPage struct {
	Records []*domain.Record
	Total   int
}

// Records lists the user's non-deleted records, newest started first,
// optionally restricted to a single task. A zero limit falls back to the
// configured default; anything above the configured maximum is clamped.
func (s *Service) Records(ctx context.Context, input RecordsInput) (*RecordPage, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = s.cfg.DefaultRecordsPageSize
	}
	if limit > s.cfg.MaxRecordsPageSize {
		limit = s.cfg.MaxRecordsPageSize
	}

	records, total, err := s.records.ListByUser(ctx, userID, input.TaskID, limit, input.Offset)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}

	return &RecordPage{Records: records, Total: total}, nil
}

// DeleteRecord soft-deletes a single record.
// Returns ErrNotFound if the record does not exist or is already deleted.
func (s *Service) DeleteRecord(ctx context.Context, input DeleteRecordInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	if err := s.records.SoftDelete(ctx, userID, input.RecordID); err != nil {
		return fmt.Errorf("delete record: %w", err)
	}

	if err := s.audit.Log(ctx, domain.AuditRecord{
		UserID:     userID,
		EntityType: domain.EntityTypeRecord,
		EntityID:   &input.RecordID,
		Action:     domain.AuditActionDelete,
		Changes:    map[string]any{"deleted": map[string]any{"new": true}},
	}); err != nil {
		return fmt.Errorf("audit log: %w", err)
	}

	s.log.InfoContext(ctx, "record deleted",
		slog.String("user_id", userID.String()),
		slog.String("record_id", input.RecordID.String()),
	)

	return nil
}
