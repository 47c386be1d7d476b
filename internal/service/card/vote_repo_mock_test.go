package card

import (
	"context"
	"sync"

	"github.com/heartmarshall/retroboard-backend/internal/domain"
)

var _ voteRepo = &voteRepoMock{}

type voteRepoMock struct {
	FindFunc         func(ctx context.Context, cardID string, userID string) (domain.Vote, error)
	CreateFunc       func(ctx context.Context, v domain.Vote) (domain.Vote, error)
	DeleteFunc       func(ctx context.Context, id string) error
	TallyByCardsFunc func(ctx context.Context, cardIDs []string, userID string) (map[string]domain.VoteTally, error)

	calls struct {
		Find []struct {
			Ctx    context.Context
			CardID string
			UserID string
		}
		Create []struct {
			Ctx context.Context
			V   domain.Vote
		}
		Delete []struct {
			Ctx context.Context
			ID  string
		}
		TallyByCards []struct {
			Ctx     context.Context
			CardIDs []string
			UserID  string
		}
	}
	lockFind         sync.RWMutex
	lockCreate       sync.RWMutex
	lockDelete       sync.RWMutex
	lockTallyByCards sync.RWMutex
}

func (mock *voteRepoMock) Find(ctx context.Context, cardID string, userID string) (domain.Vote, error) {
	if mock.FindFunc == nil {
		panic("voteRepoMock.FindFunc: method is nil but voteRepo.Find was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		CardID string
		UserID string
	}{Ctx: ctx, CardID: cardID, UserID: userID}
	mock.lockFind.Lock()
	mock.calls.Find = append(mock.calls.Find, callInfo)
	mock.lockFind.Unlock()
	return mock.FindFunc(ctx, cardID, userID)
}

func (mock *voteRepoMock) FindCalls() []struct {
	Ctx    context.Context
	CardID string
	UserID string
} {
	mock.lockFind.RLock()
	calls := mock.calls.Find
	mock.lockFind.RUnlock()
	return calls
}

func (mock *voteRepoMock) Create(ctx context.Context, v domain.Vote) (domain.Vote, error) {
	if mock.CreateFunc == nil {
		panic("voteRepoMock.CreateFunc: method is nil but voteRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		V   domain.Vote
	}{Ctx: ctx, V: v}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, v)
}

func (mock *voteRepoMock) CreateCalls() []struct {
	Ctx context.Context
	V   domain.Vote
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *voteRepoMock) Delete(ctx context.Context, id string) error {
	if mock.DeleteFunc == nil {
		panic("voteRepoMock.DeleteFunc: method is nil but voteRepo.Delete was just called")
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

func (mock *voteRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  string
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *voteRepoMock) TallyByCards(ctx context.Context, cardIDs []string, userID string) (map[string]domain.VoteTally, error) {
	if mock.TallyByCardsFunc == nil {
		panic("voteRepoMock.TallyByCardsFunc: method is nil but voteRepo.TallyByCards was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		CardIDs []string
		UserID  string
	}{Ctx: ctx, CardIDs: cardIDs, UserID: userID}
	mock.lockTallyByCards.Lock()
	mock.calls.TallyByCards = append(mock.calls.TallyByCards, callInfo)
	mock.lockTallyByCards.Unlock()
	return mock.TallyByCardsFunc(ctx, cardIDs, userID)
}

func (mock *voteRepoMock) TallyByCardsCalls() []struct {
	Ctx     context.Context
	CardIDs []string
	UserID  string
} {
	mock.lockTallyByCards.RLock()
	calls := mock.calls.TallyByCards
	mock.lockTallyByCards.RUnlock()
	return calls
}
