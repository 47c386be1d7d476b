package group

import (
	"context"
	"sync"

	"github.com/heartmarshall/retroboard-backend/internal/domain"
)

var _ groupRepo = &groupRepoMock{}

type groupRepoMock struct {
	GetByIDFunc     func(ctx context.Context, id string) (domain.CardGroup, error)
	ListByRetroFunc func(ctx context.Context, retroID string) ([]domain.CardGroup, error)
	CreateFunc      func(ctx context.Context, g domain.CardGroup) (domain.CardGroup, error)
	RenameFunc      func(ctx context.Context, id string, title string) error
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
			G   domain.CardGroup
		}
		Rename []struct {
			Ctx   context.Context
			ID    string
			Title string
		}
		Delete []struct {
			Ctx context.Context
			ID  string
		}
	}
	lockGetByID     sync.RWMutex
	lockListByRetro sync.RWMutex
	lockCreate      sync.RWMutex
	lockRename      sync.RWMutex
	lockDelete      sync.RWMutex
}

func (mock *groupRepoMock) GetByID(ctx context.Context, id string) (domain.CardGroup, error) {
	if mock.GetByIDFunc == nil {
		panic("groupRepoMock.GetByIDFunc: method is nil but groupRepo.GetByID was just called")
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

func (mock *groupRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  string
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *groupRepoMock) ListByRetro(ctx context.Context, retroID string) ([]domain.CardGroup, error) {
	if mock.ListByRetroFunc == nil {
		panic("groupRepoMock.ListByRetroFunc: method is nil but groupRepo.ListByRetro was just called")
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

func (mock *groupRepoMock) ListByRetroCalls() []struct {
	Ctx     context.Context
	RetroID string
} {
	mock.lockListByRetro.RLock()
	calls := mock.calls.ListByRetro
	mock.lockListByRetro.RUnlock()
	return calls
}

func (mock *groupRepoMock) Create(ctx context.Context, g domain.CardGroup) (domain.CardGroup, error) {
	if mock.CreateFunc == nil {
		panic("groupRepoMock.CreateFunc: method is nil but groupRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		G   domain.CardGroup
	}{Ctx: ctx, G: g}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, g)
}

func (mock *groupRepoMock) CreateCalls() []struct {
	Ctx context.Context
	G   domain.CardGroup
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *groupRepoMock) Rename(ctx context.Context, id string, title string) error {
	if mock.RenameFunc == nil {
		panic("groupRepoMock.RenameFunc: method is nil but groupRepo.Rename was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    string
		Title string
	}{Ctx: ctx, ID: id, Title: title}
	mock.lockRename.Lock()
	mock.calls.Rename = append(mock.calls.Rename, callInfo)
	mock.lockRename.Unlock()
	return mock.RenameFunc(ctx, id, title)
}

func (mock *groupRepoMock) RenameCalls() []struct {
	Ctx   context.Context
	ID    string
	Title string
} {
	mock.lockRename.RLock()
	calls := mock.calls.Rename
	mock.lockRename.RUnlock()
	return calls
}

func (mock *groupRepoMock) Delete(ctx context.Context, id string) error {
	if mock.DeleteFunc == nil {
		panic("groupRepoMock.DeleteFunc: method is nil but groupRepo.Delete was just called")
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

func (mock *groupRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  string
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
