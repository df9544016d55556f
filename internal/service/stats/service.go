package stats

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/timetrack-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type userRepo interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error)
}

type projectRepo interface {
	GetByID(ctx context.Context, userID, projectID uuid.UUID) (*domain.Project, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Project, error)
}

type taskRepo interface {
	GetByID(ctx context.Context, userID, taskID uuid.UUID) (*domain.Task, error)
}

type recordRepo interface {
	TotalsByTaskIDs(ctx context.Context, userID uuid.UUID, taskIDs []uuid.UUID) (map[uuid.UUID]int64, error)
	TotalByProject(ctx context.Context, userID, projectID uuid.UUID) (int64, error)
	TotalsByProjects(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]int64, error)
	TotalSince(ctx context.Context, userID uuid.UUID, since time.Time) (int64, error)
}

type clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service aggregates tracked time. All sums are in milliseconds and
// exclude soft-deleted records.
type Service struct {
	users    userRepo
	projects projectRepo
	tasks    taskRepo
	records  recordRepo
	clock    clock
	log      *slog.Logger
}

// NewService creates a new Stats service.
func NewService(
	log *slog.Logger,
	users userRepo,
	projects projectRepo,
	tasks taskRepo,
	records recordRepo,
) *Service {
	return &Service{
		users:    users,
		projects: projects,
		tasks:    tasks,
		records:  records,
		clock:    realClock{},
		log:      log.With("service", "stats"),
	}
}
