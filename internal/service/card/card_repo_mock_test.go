package card

import (
	"context"
	"sync"

	"github.com/heartmarshall/retroboard-backend/internal/domain"
)

var _ cardRepo = &cardRepoMock{}

type cardRepoMock struct {
	GetByIDFunc     func(ctx context.Context, id string) (domain.Card, error)
	ListByRetroFunc func(ctx context.Context, retroID string) ([]domain.Card, error)
	CreateFunc      func(ctx context.Context, card domain.Card) (domain.Card, error)
	UpdateFunc      func(ctx context.Context, id string, params domain.CardUpdateParams, detach bool) (domain.Card, error)
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
			Ctx  context.Context
			Card domain.Card
		}
		Update []struct {
			Ctx    context.Context
			ID     string
			Params domain.CardUpdateParams
			Detach bool
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

func (mock *cardRepoMock) GetByID(ctx context.Context, id string) (domain.Card, error) {
	if mock.GetByIDFunc == nil {
		panic("cardRepoMock.GetByIDFunc: method is nil but cardRepo.GetByID was just called")
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

func (mock *cardRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  string
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *cardRepoMock) ListByRetro(ctx context.Context, retroID string) ([]domain.Card, error) {
	if mock.ListByRetroFunc == nil {
		panic("cardRepoMock.ListByRetroFunc: method is nil but cardRepo.ListByRetro was just called")
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

func (mock *cardRepoMock) ListByRetroCalls() []struct {
	Ctx     context.Context
	RetroID string
} {
	mock.lockListByRetro.RLock()
	calls := mock.calls.ListByRetro
	mock.lockListByRetro.RUnlock()
	return calls
}

func (mock *cardRepoMock) Create(ctx context.Context, card domain.Card) (domain.Card, error) {
	if mock.CreateFunc == nil {
		panic("cardRepoMock.CreateFunc: method is nil but cardRepo.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Card domain.Card
	}{Ctx: ctx, Card: card}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, card)
}

func (mock *cardRepoMock) CreateCalls() []struct {
	Ctx  context.Context
	Card domain.Card
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *cardRepoMock) Update(ctx context.Context, id string, params domain.CardUpdateParams, detach bool) (domain.Card, error) {
	if mock.UpdateFunc == nil {
		panic("cardRepoMock.UpdateFunc: method is nil but cardRepo.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     string
		Params domain.CardUpdateParams
		Detach bool
	}{Ctx: ctx, ID: id, Params: params, Detach: detach}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, params, detach)
}

func (mock *cardRepoMock) UpdateCalls() []struct {
	Ctx    context.Context
	ID     string
	Params domain.CardUpdateParams
	Detach bool
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *cardRepoMock) Delete(ctx context.Context, id string) error {
	if mock.DeleteFunc == nil {
		panic("cardRepoMock.DeleteFunc: method is nil but cardRepo.Delete was just called")
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

func (mock *cardRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  string
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
