package retro

import (
	"context"
	"sync"

	"github.com/heartmarshall/retroboard-backend/internal/domain"
)

var _ retroRepo = &retroRepoMock{}

type retroRepoMock struct {
	CreateFunc  func(ctx context.Context, r domain.Retrospective) (domain.Retrospective, error)
	GetByIDFunc func(ctx context.Context, id string) (domain.Retrospective, error)
	ListFunc    func(ctx context.Context, filter domain.RetroFilter) ([]domain.Retrospective, error)
	UpdateFunc  func(ctx context.Context, id string, params domain.RetroUpdateParams) (domain.Retrospective, error)
	DeleteFunc  func(ctx context.Context, id string) error

	calls struct {
		Create []struct {
			Ctx context.Context
			R   domain.Retrospective
		}
		GetByID []struct {
			Ctx context.Context
			ID  string
		}
		List []struct {
			Ctx    context.Context
			Filter domain.RetroFilter
		}
		Update []struct {
			Ctx    context.Context
			ID     string
			Params domain.RetroUpdateParams
		}
		Delete []struct {
			Ctx context.Context
			ID  string
		}
	}
	lockCreate  sync.RWMutex
	lockGetByID sync.RWMutex
	lockList    sync.RWMutex
	lockUpdate  sync.RWMutex
	lockDelete  sync.RWMutex
}

func (mock *retroRepoMock) Create(ctx context.Context, r domain.Retrospective) (domain.Retrospective, error) {
	if mock.CreateFunc == nil {
		panic("retroRepoMock.CreateFunc: method is nil but retroRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		R   domain.Retrospective
	}{Ctx: ctx, R: r}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, r)
}

func (mock *retroRepoMock) CreateCalls() []struct {
	Ctx context.Context
	R   domain.Retrospective
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *retroRepoMock) GetByID(ctx context.Context, id string) (domain.Retrospective, error) {
	if mock.GetByIDFunc == nil {
		panic("retroRepoMock.GetByIDFunc: method is nil but retroRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *retroRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  string
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *retroRepoMock) List(ctx context.Context, filter domain.RetroFilter) ([]domain.Retrospective, error) {
	if mock.ListFunc == nil {
		panic("retroRepoMock.ListFunc: method is nil but retroRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.RetroFilter
	}{Ctx: ctx, Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *retroRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.RetroFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *retroRepoMock) Update(ctx context.Context, id string, params domain.RetroUpdateParams) (domain.Retrospective, error) {
	if mock.UpdateFunc == nil {
		panic("retroRepoMock.UpdateFunc: method is nil but retroRepo.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     string
		Params domain.RetroUpdateParams
	}{Ctx: ctx, ID: id, Params: params}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, params)
}

func (mock *retroRepoMock) UpdateCalls() []struct {
	Ctx    context.Context
	ID     string
	Params domain.RetroUpdateParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *retroRepoMock) Delete(ctx context.Context, id string) error {
	if mock.DeleteFunc == nil {
		panic("retroRepoMock.DeleteFunc: method is nil but retroRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *retroRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  string
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
