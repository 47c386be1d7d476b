package group

import (
	"context"
	"sync"

	"github.com/heartmarshall/retroboard-backend/internal/domain"
)

var _ cardRepo = &cardRepoMock{}

type cardRepoMock struct {
	GetByIDFunc    func(ctx context.Context, id string) (domain.Card, error)
	GetByIDsFunc   func(ctx context.Context, ids []string) ([]domain.Card, error)
	SetGroupFunc   func(ctx context.Context, id string, groupID *string) (domain.Card, error)
	ClearGroupFunc func(ctx context.Context, groupID string) (int64, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  string
		}
		GetByIDs []struct {
			Ctx context.Context
			Ids []string
		}
		SetGroup []struct {
			Ctx     context.Context
			ID      string
			GroupID *string
		}
		ClearGroup []struct {
			Ctx     context.Context
			GroupID string
		}
	}
	lockGetByID    sync.RWMutex
	lockGetByIDs   sync.RWMutex
	lockSetGroup   sync.RWMutex
	lockClearGroup sync.RWMutex
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

func (mock *cardRepoMock) GetByIDs(ctx context.Context, ids []string) ([]domain.Card, error) {
	if mock.GetByIDsFunc == nil {
		panic("cardRepoMock.GetByIDsFunc: method is nil but cardRepo.GetByIDs was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ids []string
	}{Ctx: ctx, Ids: ids}
	mock.lockGetByIDs.Lock()
	mock.calls.GetByIDs = append(mock.calls.GetByIDs, callInfo)
	mock.lockGetByIDs.Unlock()
	return mock.GetByIDsFunc(ctx, ids)
}

func (mock *cardRepoMock) GetByIDsCalls() []struct {
	Ctx context.Context
	Ids []string
} {
	mock.lockGetByIDs.RLock()
	calls := mock.calls.GetByIDs
	mock.lockGetByIDs.RUnlock()
	return calls
}

func (mock *cardRepoMock) SetGroup(ctx context.Context, id string, groupID *string) (domain.Card, error) {
	if mock.SetGroupFunc == nil {
		panic("cardRepoMock.SetGroupFunc: method is nil but cardRepo.SetGroup was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		ID      string
		GroupID *string
	}{Ctx: ctx, ID: id, GroupID: groupID}
	mock.lockSetGroup.Lock()
	mock.calls.SetGroup = append(mock.calls.SetGroup, callInfo)
	mock.lockSetGroup.Unlock()
	return mock.SetGroupFunc(ctx, id, groupID)
}

func (mock *cardRepoMock) SetGroupCalls() []struct {
	Ctx     context.Context
	ID      string
	GroupID *string
} {
	mock.lockSetGroup.RLock()
	calls := mock.calls.SetGroup
	mock.lockSetGroup.RUnlock()
	return calls
}

func (mock *cardRepoMock) ClearGroup(ctx context.Context, groupID string) (int64, error) {
	if mock.ClearGroupFunc == nil {
		panic("cardRepoMock.ClearGroupFunc: method is nil but cardRepo.ClearGroup was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		GroupID string
	}{Ctx: ctx, GroupID: groupID}
	mock.lockClearGroup.Lock()
	mock.calls.ClearGroup = append(mock.calls.ClearGroup, callInfo)
	mock.lockClearGroup.Unlock()
	return mock.ClearGroupFunc(ctx, groupID)
}

func (mock *cardRepoMock) ClearGroupCalls() []struct {
	Ctx     context.Context
	GroupID string
} {
	mock.lockClearGroup.RLock()
	calls := mock.calls.ClearGroup
	mock.lockClearGroup.RUnlock()
	return calls
}
