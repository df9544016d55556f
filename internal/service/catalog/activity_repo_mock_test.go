package catalog

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/timetrack-backend/internal/domain"
)

var _ activityRepo = &activityRepoMock{}

type activityRepoMock struct {
	CreateFunc     func(ctx context.Context, a *domain.Activity) (*domain.Activity, error)
	GetByIDFunc    func(ctx context.Context, userID, activityID uuid.UUID) (*domain.Activity, error)
	ListByUserFunc func(ctx context.Context, userID uuid.UUID) ([]*domain.Activity, error)
	UpdateFunc     func(ctx context.Context, userID, activityID uuid.UUID, name string) (*domain.Activity, error)
	SoftDeleteFunc func(ctx context.Context, userID, activityID uuid.UUID) error

	calls struct {
		Create []struct {
			Ctx context.Context
			A   *domain.Activity
		}
		GetByID []struct {
			Ctx        context.Context
			UserID     uuid.UUID
			ActivityID uuid.UUID
		}
		ListByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		Update []struct {
			Ctx        context.Context
			UserID     uuid.UUID
			ActivityID uuid.UUID
			Name       string
		}
		SoftDelete []struct {
			Ctx        context.Context
			UserID     uuid.UUID
			ActivityID uuid.UUID
		}
	}
	lockCreate     sync.RWMutex
	lockGetByID    sync.RWMutex
	lockListByUser sync.RWMutex
	lockUpdate     sync.RWMutex
	lockSoftDelete sync.RWMutex
}

func (mock *activityRepoMock) Create(ctx context.Context, a *domain.Activity) (*domain.Activity, error) {
	if mock.CreateFunc == nil {
		panic("activityRepoMock.CreateFunc: method is nil but activityRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		A   *domain.Activity
	}{Ctx: ctx, A: a}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, a)
}

func (mock *activityRepoMock) CreateCalls() []struct {
	Ctx context.Context
	A   *domain.Activity
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *activityRepoMock) GetByID(ctx context.Context, userID, activityID uuid.UUID) (*domain.Activity, error) {
	if mock.GetByIDFunc == nil {
		panic("activityRepoMock.GetByIDFunc: method is nil but activityRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		UserID     uuid.UUID
		ActivityID uuid.UUID
	}{Ctx: ctx, UserID: userID, ActivityID: activityID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, activityID)
}

func (mock *activityRepoMock) GetByIDCalls() []struct {
	Ctx        context.Context
	UserID     uuid.UUID
	ActivityID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *activityRepoMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Activity, error) {
	if mock.ListByUserFunc == nil {
		panic("activityRepoMock.ListByUserFunc: method is nil but activityRepo.ListByUser was just called")
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

func (mock *activityRepoMock) ListByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}

func (mock *activityRepoMock) Update(ctx context.Context, userID, activityID uuid.UUID, name string) (*domain.Activity, error) {
	if mock.UpdateFunc == nil {
		panic("activityRepoMock.UpdateFunc: method is nil but activityRepo.Update was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		UserID     uuid.UUID
		ActivityID uuid.UUID
		Name       string
	}{Ctx: ctx, UserID: userID, ActivityID: activityID, Name: name}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, userID, activityID, name)
}

func (mock *activityRepoMock) UpdateCalls() []struct {
	Ctx        context.Context
	UserID     uuid.UUID
	ActivityID uuid.UUID
	Name       string
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *activityRepoMock) SoftDelete(ctx context.Context, userID, activityID uuid.UUID) error {
	if mock.SoftDeleteFunc == nil {
		panic("activityRepoMock.SoftDeleteFunc: method is nil but activityRepo.SoftDelete was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		UserID     uuid.UUID
		ActivityID uuid.UUID
	}{Ctx: ctx, UserID: userID, ActivityID: activityID}
	mock.lockSoftDelete.Lock()
	mock.calls.SoftDelete = append(mock.calls.SoftDelete, callInfo)
	mock.lockSoftDelete.Unlock()
	return mock.SoftDeleteFunc(ctx, userID, activityID)
}

func (mock *activityRepoMock) SoftDeleteCalls() []struct {
	Ctx        context.Context
	UserID     uuid.UUID
	ActivityID uuid.UUID
} {
	mock.lockSoftDelete.RLock()
	calls := mock.calls.SoftDelete
	mock.lockSoftDelete.RUnlock()
	return calls
}
