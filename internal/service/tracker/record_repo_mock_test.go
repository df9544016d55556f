package tracker

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/timetrack-backend/internal/domain"
)

var _ recordRepo = &recordRepoMock{}

type recordRepoMock struct {
	CreateFunc          func(ctx context.Context, rec *domain.Record) (*domain.Record, error)
	GetByIDFunc         func(ctx context.Context, userID, recordID uuid.UUID) (*domain.Record, error)
	ListOpenByUserFunc  func(ctx context.Context, userID uuid.UUID) ([]*domain.Record, error)
	ListByUserFunc      func(ctx context.Context, userID uuid.UUID, taskID *uuid.UUID, limit, offset int) ([]*domain.Record, int, error)
	CloseFunc           func(ctx context.Context, userID, recordID uuid.UUID, endedAt time.Time) (*domain.Record, error)
	CloseOpenByUserFunc func(ctx context.Context, userID uuid.UUID, endedAt time.Time) ([]*domain.Record, error)
	SoftDeleteFunc      func(ctx context.Context, userID, recordID uuid.UUID) error

	calls struct {
		Create []struct {
			Ctx context.Context
			Rec *domain.Record
		}
		GetByID []struct {
			Ctx      context.Context
			UserID   uuid.UUID
			RecordID uuid.UUID
		}
		ListOpenByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		ListByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
			TaskID *uuid.UUID
			Limit  int
			Offset int
		}
		Close []struct {
			Ctx      context.Context
			UserID   uuid.UUID
			RecordID uuid.UUID
			EndedAt  time.Time
		}
		CloseOpenByUser []struct {
			Ctx     context.Context
			UserID  uuid.UUID
			EndedAt time.Time
		}
		SoftDelete []struct {
			Ctx      context.Context
			UserID   uuid.UUID
			RecordID uuid.UUID
		}
	}
	lockCreate          sync.RWMutex
	lockGetByID         sync.RWMutex
	lockListOpenByUser  sync.RWMutex
	lockListByUser      sync.RWMutex
	lockClose           sync.RWMutex
	lockCloseOpenByUser sync.RWMutex
	lockSoftDelete      sync.RWMutex
}

func (mock *recordRepoMock) Create(ctx context.Context, rec *domain.Record) (*domain.Record, error) {
	if mock.CreateFunc == nil {
		panic("recordRepoMock.CreateFunc: method is nil but recordRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Rec *domain.Record
	}{Ctx: ctx, Rec: rec}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, rec)
}

func (mock *recordRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Rec *domain.Record
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *recordRepoMock) GetByID(ctx context.Context, userID, recordID uuid.UUID) (*domain.Record, error) {
	if mock.GetByIDFunc == nil {
		panic("recordRepoMock.GetByIDFunc: method is nil but recordRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		UserID   uuid.UUID
		RecordID uuid.UUID
	}{Ctx: ctx, UserID: userID, RecordID: recordID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, recordID)
}

func (mock *recordRepoMock) GetByIDCalls() []struct {
	Ctx      context.Context
	UserID   uuid.UUID
	RecordID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *recordRepoMock) ListOpenByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Record, error) {
	if mock.ListOpenByUserFunc == nil {
		panic("recordRepoMock.ListOpenByUserFunc: method is nil but recordRepo.ListOpenByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockListOpenByUser.Lock()
	mock.calls.ListOpenByUser = append(mock.calls.ListOpenByUser, callInfo)
	mock.lockListOpenByUser.Unlock()
	return mock.ListOpenByUserFunc(ctx, userID)
}

func (mock *recordRepoMock) ListOpenByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockListOpenByUser.RLock()
	calls := mock.calls.ListOpenByUser
	mock.lockListOpenByUser.RUnlock()
	return calls
}

func (mock *recordRepoMock) ListByUser(ctx context.Context, userID uuid.UUID, taskID *uuid.UUID, limit, offset int) ([]*domain.Record, int, error) {
	if mock.ListByUserFunc == nil {
		panic("recordRepoMock.ListByUserFunc: method is nil but recordRepo.ListByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		TaskID *uuid.UUID
		Limit  int
		Offset int
	}{Ctx: ctx, UserID: userID, TaskID: taskID, Limit: limit, Offset: offset}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID, taskID, limit, offset)
}

func (mock *recordRepoMock) ListByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	TaskID *uuid.UUID
	Limit  int
	Offset int
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}

func (mock *recordRepoMock) Close(ctx context.Context, userID, recordID uuid.UUID, endedAt time.Time) (*domain.Record, error) {
	if mock.CloseFunc == nil {
		panic("recordRepoMock.CloseFunc: method is nil but recordRepo.Close was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		UserID   uuid.UUID
		RecordID uuid.UUID
		EndedAt  time.Time
	}{Ctx: ctx, UserID: userID, RecordID: recordID, EndedAt: endedAt}
	mock.lockClose.Lock()
	mock.calls.Close = append(mock.calls.Close, callInfo)
	mock.lockClose.Unlock()
	return mock.CloseFunc(ctx, userID, recordID, endedAt)
}

func (mock *recordRepoMock) CloseCalls() []struct {
	Ctx      context.Context
	UserID   uuid.UUID
	RecordID uuid.UUID
	EndedAt  time.Time
} {
	mock.lockClose.RLock()
	calls := mock.calls.Close
	mock.lockClose.RUnlock()
	return calls
}

func (mock *recordRepoMock) CloseOpenByUser(ctx context.Context, userID uuid.UUID, endedAt time.Time) ([]*domain.Record, error) {
	if mock.CloseOpenByUserFunc == nil {
		panic("recordRepoMock.CloseOpenByUserFunc: method is nil but recordRepo.CloseOpenByUser was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		UserID  uuid.UUID
		EndedAt time.Time
	}{Ctx: ctx, UserID: userID, EndedAt: endedAt}
	mock.lockCloseOpenByUser.Lock()
	mock.calls.CloseOpenByUser = append(mock.calls.CloseOpenByUser, callInfo)
	mock.lockCloseOpenByUser.Unlock()
	return mock.CloseOpenByUserFunc(ctx, userID, endedAt)
}

func (mock *recordRepoMock) CloseOpenByUserCalls() []struct {
	Ctx     context.Context
	UserID  uuid.UUID
	EndedAt time.Time
} {
	mock.lockCloseOpenByUser.RLock()
	calls := mock.calls.CloseOpenByUser
	mock.lockCloseOpenByUser.RUnlock()
	return calls
}

func (mock *recordRepoMock) SoftDelete(ctx context.Context, userID, recordID uuid.UUID) error {
	if mock.SoftDeleteFunc == nil {
		panic("recordRepoMock.SoftDeleteFunc: method is nil but recordRepo.SoftDelete was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		UserID   uuid.UUID
		RecordID uuid.UUID
	}{Ctx: ctx, UserID: userID, RecordID: recordID}
	mock.lockSoftDelete.Lock()
	mock.calls.SoftDelete = append(mock.calls.SoftDelete, callInfo)
	mock.lockSoftDelete.Unlock()
	return mock.SoftDeleteFunc(ctx, userID, recordID)
}

func (mock *recordRepoMock) SoftDeleteCalls() []struct {
	Ctx      context.Context
	UserID   uuid.UUID
	RecordID uuid.UUID
} {
	mock.lockSoftDelete.RLock()
	calls := mock.calls.SoftDelete
	mock.lockSoftDelete.RUnlock()
	return calls
}
