package card

import (
	"context"
	"sync"

	"github.com/heartmarshall/retroboard-backend/internal/domain"
)

var _ commentRepo = &commentRepoMock{}

type commentRepoMock struct {
	GetByIDFunc     func(ctx context.Context, id string) (domain.Comment, error)
	ListByCardsFunc func(ctx context.Context, cardIDs []string) ([]domain.Comment, error)
	CreateFunc      func(ctx context.Context, c domain.Comment) (domain.Comment, error)
	DeleteFunc      func(ctx context.Context, id string) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  string
		}
		ListByCards []struct {
			Ctx     context.Context
			CardIDs []string
		}
		Create []struct {
			Ctx context.Context
			C   domain.Comment
		}
		Delete []struct {
			Ctx context.Context
			ID  string
		}
	}
	lockGetByID     sync.RWMutex
	lockListByCards sync.RWMutex
	lockCreate      sync.RWMutex
	lockDelete      sync.RWMutex
}

func (mock *commentRepoMock) GetByID(ctx context.Context, id string) (domain.Comment, error) {
	if mock.GetByIDFunc == nil {
		panic("commentRepoMock.GetByIDFunc: method is nil but commentRepo.GetByID was just called")
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

func (mock *commentRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  string
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *commentRepoMock) ListByCards(ctx context.Context, cardIDs []string) ([]domain.Comment, error) {
	if mock.ListByCardsFunc == nil {
		panic("commentRepoMock.ListByCardsFunc: method is nil but commentRepo.ListByCards was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		CardIDs []string
	}{Ctx: ctx, CardIDs: cardIDs}
	mock.lockListByCards.Lock()
	mock.calls.ListByCards = append(mock.calls.ListByCards, callInfo)
	mock.lockListByCards.Unlock()
	return mock.ListByCardsFunc(ctx, cardIDs)
}

func (mock *commentRepoMock) ListByCardsCalls() []struct {
	Ctx     context.Context
	CardIDs []string
} {
	mock.lockListByCards.RLock()
	calls := mock.calls.ListByCards
	mock.lockListByCards.RUnlock()
	return calls
}

func (mock *commentRepoMock) Create(ctx context.Context, c domain.Comment) (domain.Comment, error) {
	if mock.CreateFunc == nil {
		panic("commentRepoMock.CreateFunc: method is nil but commentRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   domain.Comment
	}{Ctx: ctx, C: c}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *commentRepoMock) CreateCalls() []struct {
	Ctx context.Context
	C   domain.Comment
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *commentRepoMock) Delete(ctx context.Context, id string) error {
	if mock.DeleteFunc == nil {
		panic("commentRepoMock.DeleteFunc: method is nil but commentRepo.Delete was just called")
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

func (mock *commentRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  string
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
