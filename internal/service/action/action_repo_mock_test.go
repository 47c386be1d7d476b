package action

import (
	"context"
	"sync"

	"github.com/heartmarshall/retroboard-backend/internal/domain"
)

var _ actionRepo = &actionRepoMock{}

type actionRepoMock struct {
	GetByIDFunc     func(ctx context.Context, id string) (domain.ActionItem, error)
	ListByRetroFunc func(ctx context.Context, retroID string) ([]domain.ActionItem, error)
	CreateFunc      func(ctx context.Context, a domain.ActionItem) (domain.ActionItem, error)
	UpdateFunc      func(ctx context.Context, id string, params domain.ActionUpdateParams) (domain.ActionItem, error)
	DeleteFunc      func(ctx context.Context, id string) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  string
		}
		ListByRetro []struct {
			Ctx     context.Context
			RetroID string
		}
		Create []struct {
			Ctx context.Context
			A   domain.ActionItem
		}
		Update []struct {
			Ctx    context.Context
			ID     string
			Params domain.ActionUpdateParams
		}
		Delete []struct {
			Ctx context.Context
			ID  string
		}
	}
	lockGetByID     sync.RWMutex
	lockListByRetro sync.RWMutex
	lockCreate      sync.RWMutex
	lockUpdate      sync.RWMutex
	lockDelete      sync.RWMutex
}

func (mock *actionRepoMock) GetByID(ctx context.Context, id string) (domain.ActionItem, error) {
	if mock.GetByIDFunc == nil {
		panic("actionRepoMock.GetByIDFunc: method is nil but actionRepo.GetByID was just called")
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

func (mock *actionRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  string
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *actionRepoMock) ListByRetro(ctx context.Context, retroID string) ([]domain.ActionItem, error) {
	if mock.ListByRetroFunc == nil {
		panic("actionRepoMock.ListByRetroFunc: method is nil but actionRepo.ListByRetro was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		RetroID string
	}{Ctx: ctx, RetroID: retroID}
	mock.lockListByRetro.Lock()
	mock.calls.ListByRetro = append(mock.calls.ListByRetro, callInfo)
	mock.lockListByRetro.Unlock()
	return mock.ListByRetroFunc(ctx, retroID)
}

func (mock *actionRepoMock) ListByRetroCalls() []struct {
	Ctx     context.Context
	RetroID string
} {
	mock.lockListByRetro.RLock()
	calls := mock.calls.ListByRetro
	mock.lockListByRetro.RUnlock()
	return calls
}

func (mock *actionRepoMock) Create(ctx context.Context, a domain.ActionItem) (domain.ActionItem, error) {
	if mock.CreateFunc == nil {
		panic("actionRepoMock.CreateFunc: method is nil but actionRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		A   domain.ActionItem
	}{Ctx: ctx, A: a}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, a)
}

func (mock *actionRepoMock) CreateCalls() []struct {
	Ctx context.Context
	A   domain.ActionItem
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *actionRepoMock) Update(ctx context.Context, id string, params domain.ActionUpdateParams) (domain.ActionItem, error) {
	if mock.UpdateFunc == nil {
		panic("actionRepoMock.UpdateFunc: method is nil but actionRepo.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     string
		Params domain.ActionUpdateParams
	}{Ctx: ctx, ID: id, Params: params}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, params)
}

func (mock *actionRepoMock) UpdateCalls() []struct {
	Ctx    context.Context
	ID     string
	Params domain.ActionUpdateParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *actionRepoMock) Delete(ctx context.Context, id string) error {
	if mock.DeleteFunc == nil {
		panic("actionRepoMock.DeleteFunc: method is nil but actionRepo.Delete was just called")
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

func (mock *actionRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  string
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
