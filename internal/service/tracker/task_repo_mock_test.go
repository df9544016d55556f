package tracker

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/timetrack-backend/internal/domain"
)

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
