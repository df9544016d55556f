package stats

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/timetrack-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc func(ctx context.Context, userID uuid.UUID) (*domain.User, error)

	calls struct {
		GetByID []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *userRepoMock) GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID)
}

func (mock *userRepoMock) GetByIDCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

var _ projectRepo = &projectRepoMock{}

type projectRepoMock struct {
	GetByIDFunc    func(ctx context.Context, userID, projectID uuid.UUID) (*domain.Project, error)
	ListByUserFunc func(ctx context.Context, userID uuid.UUID) ([]*domain.Project, error)

	calls struct {
		GetByID []struct {
			Ctx       context.Context
			UserID    uuid.UUID
			ProjectID uuid.UUID
		}
		ListByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockGetByID    sync.RWMutex
	lockListByUser sync.RWMutex
}

func (mock *projectRepoMock) GetByID(ctx context.Context, userID, projectID uuid.UUID) (*domain.Project, error) {
	if mock.GetByIDFunc == nil {
		panic("projectRepoMock.GetByIDFunc: method is nil but projectRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		UserID    uuid.UUID
		ProjectID uuid.UUID
	}{Ctx: ctx, UserID: userID, ProjectID: projectID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, projectID)
}

func (mock *projectRepoMock) GetByIDCalls() []struct {
	Ctx       context.Context
	UserID    uuid.UUID
	ProjectID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *projectRepoMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Project, error) {
	if mock.ListByUserFunc == nil {
		panic("projectRepoMock.ListByUserFunc: method is nil but projectRepo.ListByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID)
}

func (mock *projectRepoMock) ListByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}

var _ taskRepo = &taskRepoMock{}

type taskRepoMock struct {
	GetByIDFunc func(ctx context.Context, userID, taskID uuid.UUID) (*domain.Task, error)

	calls struct {
		GetByID []struct {
			Ctx    context.Context
			UserID uuid.UUID
			TaskID uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *taskRepoMock) GetByID(ctx context.Context, userID, taskID uuid.UUID) (*domain.Task, error) {
	if mock.GetByIDFunc == nil {
		panic("taskRepoMock.GetByIDFunc: method is nil but taskRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		TaskID uuid.UUID
	}{Ctx: ctx, UserID: userID, TaskID: taskID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, taskID)
}

func (mock *taskRepoMock) GetByIDCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	TaskID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

var _ recordRepo = &recordRepoMock{}

type recordRepoMock struct {
	TotalsByTaskIDsFunc  func(ctx context.Context, userID uuid.UUID, taskIDs []uuid.UUID) (map[uuid.UUID]int64, error)
	TotalByProjectFunc   func(ctx context.Context, userID, projectID uuid.UUID) (int64, error)
	TotalsByProjectsFunc func(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]int64, error)
	TotalSinceFunc       func(ctx context.Context, userID uuid.UUID, since time.Time) (int64, error)

	calls struct {
		TotalsByTaskIDs []struct {
			Ctx     context.Context
			UserID  uuid.UUID
			TaskIDs []uuid.UUID
		}
		TotalByProject []struct {
			Ctx       context.Context
			UserID    uuid.UUID
			ProjectID uuid.UUID
		}
		TotalsByProjects []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		TotalSince []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Since  time.Time
		}
	}
	lockTotalsByTaskIDs  sync.RWMutex
	lockTotalByProject   sync.RWMutex
	lockTotalsByProjects sync.RWMutex
	lockTotalSince       sync.RWMutex
}

func (mock *recordRepoMock) TotalsByTaskIDs(ctx context.Context, userID uuid.UUID, taskIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	if mock.TotalsByTaskIDsFunc == nil {
		panic("recordRepoMock.TotalsByTaskIDsFunc: method is nil but recordRepo.TotalsByTaskIDs was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		UserID  uuid.UUID
		TaskIDs []uuid.UUID
	}{Ctx: ctx, UserID: userID, TaskIDs: taskIDs}
	mock.lockTotalsByTaskIDs.Lock()
	mock.calls.TotalsByTaskIDs = append(mock.calls.TotalsByTaskIDs, callInfo)
	mock.lockTotalsByTaskIDs.Unlock()
	return mock.TotalsByTaskIDsFunc(ctx, userID, taskIDs)
}

func (mock *recordRepoMock) TotalsByTaskIDsCalls() []struct {
	Ctx     context.Context
	UserID  uuid.UUID
	TaskIDs []uuid.UUID
} {
	mock.lockTotalsByTaskIDs.RLock()
	calls := mock.calls.TotalsByTaskIDs
	mock.lockTotalsByTaskIDs.RUnlock()
	return calls
}

func (mock *recordRepoMock) TotalByProject(ctx context.Context, userID, projectID uuid.UUID) (int64, error) {
	if mock.TotalByProjectFunc == nil {
		panic("recordRepoMock.TotalByProjectFunc: method is nil but recordRepo.TotalByProject was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		UserID    uuid.UUID
		ProjectID uuid.UUID
	}{Ctx: ctx, UserID: userID, ProjectID: projectID}
	mock.lockTotalByProject.Lock()
	mock.calls.TotalByProject = append(mock.calls.TotalByProject, callInfo)
	mock.lockTotalByProject.Unlock()
	return mock.TotalByProjectFunc(ctx, userID, projectID)
}

func (mock *recordRepoMock) TotalByProjectCalls() []struct {
	Ctx       context.Context
	UserID    uuid.UUID
	ProjectID uuid.UUID
} {
	mock.lockTotalByProject.RLock()
	calls := mock.calls.TotalByProject
	mock.lockTotalByProject.RUnlock()
	return calls
}

func (mock *recordRepoMock) TotalsByProjects(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]int64, error) {
	if mock.TotalsByProjectsFunc == nil {
		panic("recordRepoMock.TotalsByProjectsFunc: method is nil but recordRepo.TotalsByProjects was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockTotalsByProjects.Lock()
	mock.calls.TotalsByProjects = append(mock.calls.TotalsByProjects, callInfo)
	mock.lockTotalsByProjects.Unlock()
	return mock.TotalsByProjectsFunc(ctx, userID)
}

func (mock *recordRepoMock) TotalsByProjectsCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockTotalsByProjects.RLock()
	calls := mock.calls.TotalsByProjects
	mock.lockTotalsByProjects.RUnlock()
	return calls
}

func (mock *recordRepoMock) TotalSince(ctx context.Context, userID uuid.UUID, since time.Time) (int64, error) {
	if mock.TotalSinceFunc == nil {
		panic("recordRepoMock.TotalSinceFunc: method is nil but recordRepo.TotalSince was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Since  time.Time
	}{Ctx: ctx, UserID: userID, Since: since}
	mock.lockTotalSince.Lock()
	mock.calls.TotalSince = append(mock.calls.TotalSince, callInfo)
	mock.lockTotalSince.Unlock()
	return mock.TotalSinceFunc(ctx, userID, since)
}

func (mock *recordRepoMock) TotalSinceCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Since  time.Time
} {
	mock.lockTotalSince.RLock()
	calls := mock.calls.TotalSince
	mock.lockTotalSince.RUnlock()
	return calls
}
