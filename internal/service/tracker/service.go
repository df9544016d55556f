package tracker

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/timetrack-backend/internal/config"
	"github.com/heartmarshall/timetrack-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type taskRepo interface {
	GetByID(ctx context.Context, userID, taskID uuid.UUID) (*domain.Task, error)
}

type recordRepo interface {
	Create(ctx context.Context, rec *domain.Record) (*domain.Record, error)
	GetByID(ctx context.Context, userID, recordID uuid.UUID) (*domain.Record, error)
	ListOpenByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Record, error)
	ListByUser(ctx context.Context, userID uuid.UUID, taskID *uuid.UUID, limit, offset int) ([]*domain.Record, int, error)
	Close(ctx context.Context, userID, recordID uuid.UUID, endedAt time.Time) (*domain.Record, error)
	CloseOpenByUser(ctx context.Context, userID uuid.UUID, endedAt time.Time) ([]*domain.Record, error)
	SoftDelete(ctx context.Context, userID, recordID uuid.UUID) error
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the tracking-session state machine. At most one open
// record exists per user; Start closes everything open before inserting, and
// ActiveTask repairs any anomaly it encounters.
type Service struct {
	tasks   taskRepo
	records recordRepo
	audit   auditLogger
	tx      txManager
	clock   clock
	cfg     config.TrackerConfig
	log     *slog.Logger
}

// NewService creates a new Tracker service.
func NewService(
	log *slog.Logger,
	tasks taskRepo,
	records recordRepo,
	audit auditLogger,
	tx txManager,
	cfg config.TrackerConfig,
) *Service {
	return &Service{
		tasks:   tasks,
		records: records,
		audit:   audit,
		tx:      tx,
		clock:   realClock{},
		cfg:     cfg,
		log:     log.With("service", "tracker"),
	}
}
