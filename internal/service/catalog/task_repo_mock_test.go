package catalog

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/timetrack-backend/internal/domain"
)

var _ taskRepo = &taskRepoMock{}

type taskRepoMock struct {
	CreateFunc               func(ctx context.Context, t *domain.Task) (*domain.Task, error)
	GetByIDFunc              func(ctx context.Context, userID, taskID uuid.UUID) (*domain.Task, error)
	ListFunc                 func(ctx context.Context, userID uuid.UUID, filter domain.TaskFilter) ([]*domain.Task, error)
	UpdateFunc               func(ctx context.Context, userID, taskID uuid.UUID, params domain.TaskUpdateParams) (*domain.Task, error)
	SetDoneFunc              func(ctx context.Context, userID, taskID uuid.UUID, done bool) (*domain.Task, error)
	SoftDeleteFunc           func(ctx context.Context, userID, taskID uuid.UUID) error
	SoftDeleteByProjectFunc  func(ctx context.Context, userID, projectID uuid.UUID) ([]uuid.UUID, error)
	SoftDeleteByActivityFunc func(ctx context.Context, userID, activityID uuid.UUID) ([]uuid.UUID, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			T   *domain.Task
		}
		GetByID []struct {
			Ctx    context.Context
			UserID uuid.UUID
			TaskID uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Filter domain.TaskFilter
		}
		Update []struct {
			Ctx    context.Context
			UserID uuid.UUID
			TaskID uuid.UUID
			Params domain.TaskUpdateParams
		}
		SetDone []struct {
			Ctx    context.Context
			UserID uuid.UUID
			TaskID uuid.UUID
			Done   bool
		}
		SoftDelete []struct {
			Ctx    context.Context
			UserID uuid.UUID
			TaskID uuid.UUID
		}
		SoftDeleteByProject []struct {
			Ctx       context.Context
			UserID    uuid.UUID
			ProjectID uuid.UUID
		}
		SoftDeleteByActivity []struct {
			Ctx        context.Context
			UserID     uuid.UUID
			ActivityID uuid.UUID
		}
	}
	lockCreate               sync.RWMutex
	lockGetByID              sync.RWMutex
	lockList                 sync.RWMutex
	lockUpdate               sync.RWMutex
	lockSetDone              sync.RWMutex
	lockSoftDelete           sync.RWMutex
	lockSoftDeleteByProject  sync.RWMutex
	lockSoftDeleteByActivity sync.RWMutex
}

func (mock *taskRepoMock) Create(ctx context.Context, t *domain.Task) (*domain.Task, error) {
	if mock.CreateFunc == nil {
		panic("taskRepoMock.CreateFunc: method is nil but taskRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		T   *domain.Task
	}{Ctx: ctx, T: t}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, t)
}

func (mock *taskRepoMock) CreateCalls() []struct {
	Ctx context.Context
	T   *domain.Task
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
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

func (mock *taskRepoMock) List(ctx context.Context, userID uuid.UUID, filter domain.TaskFilter) ([]*domain.Task, error) {
	if mock.ListFunc == nil {
		panic("taskRepoMock.ListFunc: method is nil but taskRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Filter domain.TaskFilter
	}{Ctx: ctx, UserID: userID, Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, userID, filter)
}

func (mock *taskRepoMock) ListCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Filter domain.TaskFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *taskRepoMock) Update(ctx context.Context, userID, taskID uuid.UUID, params domain.TaskUpdateParams) (*domain.Task, error) {
	if mock.UpdateFunc == nil {
		panic("taskRepoMock.UpdateFunc: method is nil but taskRepo.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		TaskID uuid.UUID
		Params domain.TaskUpdateParams
	}{Ctx: ctx, UserID: userID, TaskID: taskID, Params: params}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, userID, taskID, params)
}

func (mock *taskRepoMock) UpdateCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	TaskID uuid.UUID
	Params domain.TaskUpdateParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *taskRepoMock) SetDone(ctx context.Context, userID, taskID uuid.UUID, done bool) (*domain.Task, error) {
	if mock.SetDoneFunc == nil {
		panic("taskRepoMock.SetDoneFunc: method is nil but taskRepo.SetDone was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		TaskID uuid.UUID
		Done   bool
	}{Ctx: ctx, UserID: userID, TaskID: taskID, Done: done}
	mock.lockSetDone.Lock()
	mock.calls.SetDone = append(mock.calls.SetDone, callInfo)
	mock.lockSetDone.Unlock()
	return mock.SetDoneFunc(ctx, userID, taskID, done)
}

func (mock *taskRepoMock) SetDoneCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	TaskID uuid.UUID
	Done   bool
} {
	mock.lockSetDone.RLock()
	calls := mock.calls.SetDone
	mock.lockSetDone.RUnlock()
	return calls
}

func (mock *taskRepoMock) SoftDelete(ctx context.Context, userID, taskID uuid.UUID) error {
	if mock.SoftDeleteFunc == nil {
		panic("taskRepoMock.SoftDeleteFunc: method is nil but taskRepo.SoftDelete was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		TaskID uuid.UUID
	}{Ctx: ctx, UserID: userID, TaskID: taskID}
	mock.lockSoftDelete.Lock()
	mock.calls.SoftDelete = append(mock.calls.SoftDelete, callInfo)
	mock.lockSoftDelete.Unlock()
	return mock.SoftDeleteFunc(ctx, userID, taskID)
}

func (mock *taskRepoMock) SoftDeleteCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	TaskID uuid.UUID
} {
	mock.lockSoftDelete.RLock()
	calls := mock.calls.SoftDelete
	mock.lockSoftDelete.RUnlock()
	return calls
}

func (mock *taskRepoMock) SoftDeleteByProject(ctx context.Context, userID, projectID uuid.UUID) ([]uuid.UUID, error) {
	if mock.SoftDeleteByProjectFunc == nil {
		panic("taskRepoMock.SoftDeleteByProjectFunc: method is nil but taskRepo.SoftDeleteByProject was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		UserID    uuid.UUID
		ProjectID uuid.UUID
	}{Ctx: ctx, UserID: userID, ProjectID: projectID}
	mock.lockSoftDeleteByProject.Lock()
	mock.calls.SoftDeleteByProject = append(mock.calls.SoftDeleteByProject, callInfo)
	mock.lockSoftDeleteByProject.Unlock()
	return mock.SoftDeleteByProjectFunc(ctx, userID, projectID)
}

func (mock *taskRepoMock) SoftDeleteByProjectCalls() []struct {
	Ctx       context.Context
	UserID    uuid.UUID
	ProjectID uuid.UUID
} {
	mock.lockSoftDeleteByProject.RLock()
	calls := mock.calls.SoftDeleteByProject
	mock.lockSoftDeleteByProject.RUnlock()
	return calls
}

func (mock *taskRepoMock) SoftDeleteByActivity(ctx context.Context, userID, activityID uuid.UUID) ([]uuid.UUID, error) {
	if mock.SoftDeleteByActivityFunc == nil {
		panic("taskRepoMock.SoftDeleteByActivityFunc: method is nil but taskRepo.SoftDeleteByActivity was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		UserID     uuid.UUID
		ActivityID uuid.UUID
	}{Ctx: ctx, UserID: userID, ActivityID: activityID}
	mock.lockSoftDeleteByActivity.Lock()
	mock.calls.SoftDeleteByActivity = append(mock.calls.SoftDeleteByActivity, callInfo)
	mock.lockSoftDeleteByActivity.Unlock()
	return mock.SoftDeleteByActivityFunc(ctx, userID, activityID)
}

func (mock *taskRepoMock) SoftDeleteByActivityCalls() []struct {
	Ctx        context.Context
	UserID     uuid.UUID
	ActivityID uuid.UUID
} {
	mock.lockSoftDeleteByActivity.RLock()
	calls := mock.calls.SoftDeleteByActivity
	mock.lockSoftDeleteByActivity.RUnlock()
	return calls
}
