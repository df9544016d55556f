package catalog

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

var _ recordRepo = &recordRepoMock{}

type recordRepoMock struct {
	SoftDeleteByTaskIDsFunc func(ctx context.Context, userID uuid.UUID, taskIDs []uuid.UUID) (int64, error)

	calls struct {
		SoftDeleteByTaskIDs []struct {
			Ctx     context.Context
			UserID  uuid.UUID
			TaskIDs []uuid.UUID
		}
	}
	lockSoftDeleteByTaskIDs sync.RWMutex
}

func (mock *recordRepoMock) SoftDeleteByTaskIDs(ctx context.Context, userID uuid.UUID, taskIDs []uuid.UUID) (int64, error) {
	if mock.SoftDeleteByTaskIDsFunc == nil {
		panic("recordRepoMock.SoftDeleteByTaskIDsFunc: method is nil but recordRepo.SoftDeleteByTaskIDs was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		UserID  uuid.UUID
		TaskIDs []uuid.UUID
	}{Ctx: ctx, UserID: userID, TaskIDs: taskIDs}
	mock.lockSoftDeleteByTaskIDs.Lock()
	mock.calls.SoftDeleteByTaskIDs = append(mock.calls.SoftDeleteByTaskIDs, callInfo)
	mock.lockSoftDeleteByTaskIDs.Unlock()
	return mock.SoftDeleteByTaskIDsFunc(ctx, userID, taskIDs)
}

func (mock *recordRepoMock) SoftDeleteByTaskIDsCalls() []struct {
	Ctx     context.Context
	UserID  uuid.UUID
	TaskIDs []uuid.UUID
} {
	mock.lockSoftDeleteByTaskIDs.RLock()
	calls := mock.calls.SoftDeleteByTaskIDs
	mock.lockSoftDeleteByTaskIDs.RUnlock()
	return calls
}
