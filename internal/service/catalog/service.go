package catalog

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/timetrack-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type projectRepo interface {
	Create(ctx context.Context, p *domain.Project) (*domain.Project, error)
	GetByID(ctx context.Context, userID, projectID uuid.UUID) (*domain.Project, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Project, error)
	Update(ctx context.Context, userID, projectID uuid.UUID, params domain.ProjectUpdateParams) (*domain.Project, error)
	SoftDelete(ctx context.Context, userID, projectID uuid.UUID) error
}

type activityRepo interface {
	Create(ctx context.Context, a *domain.Activity) (*domain.Activity, error)
	GetByID(ctx context.Context, userID, activityID uuid.UUID) (*domain.Activity, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Activity, error)
	Update(ctx context.Context, userID, activityID uuid.UUID, name string) (*domain.Activity, error)
	SoftDelete(ctx context.Context, userID, activityID uuid.UUID) error
}

type taskRepo interface {
	Create(ctx context.Context, t *domain.Task) (*domain.Task, error)
	GetByID(ctx context.Context, userID, taskID uuid.UUID) (*domain.Task, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.TaskFilter) ([]*domain.Task, error)
	Update(ctx context.Context, userID, taskID uuid.UUID, params domain.TaskUpdateParams) (*domain.Task, error)
	SetDone(ctx context.Context, userID, taskID uuid.UUID, done bool) (*domain.Task, error)
	SoftDelete(ctx context.Context, userID, taskID uuid.UUID) error
	SoftDeleteByProject(ctx context.Context, userID, projectID uuid.UUID) ([]uuid.UUID, error)
	SoftDeleteByActivity(ctx context.Context, userID, activityID uuid.UUID) ([]uuid.UUID, error)
}

type recordRepo interface {
	SoftDeleteByTaskIDs(ctx context.Context, userID uuid.UUID, taskIDs []uuid.UUID) (int64, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service provides project, activity and task management. Deletes cascade:
// a deleted project or activity takes its tasks down, and deleted tasks take
// their records down, all soft and all in one transaction.
type Service struct {
	projects   projectRepo
	activities activityRepo
	tasks      taskRepo
	records    recordRepo
	audit      auditLogger
	tx         txManager
	log        *slog.Logger
}

// NewService creates a new Catalog service.
func NewService(
	log *slog.Logger,
	projects projectRepo,
	activities activityRepo,
	tasks taskRepo,
	records recordRepo,
	audit auditLogger,
	tx txManager,
) *Service {
	return &Service{
		projects:   projects,
		activities: activities,
		tasks:      tasks,
		records:    records,
		audit:      audit,
		tx:         tx,
		log:        log.With("service", "catalog"),
	}
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
