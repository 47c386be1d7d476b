package action

import (
	"context"
	"sync"

	"github.com/heartmarshall/retroboard-backend/internal/domain"
)

var _ retroRepo = &retroRepoMock{}

type retroRepoMock struct {
	GetByIDFunc func(ctx context.Context, id string) (domain.Retrospective, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  string
		}
	}
	lockGetByID sync.RWMutex
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
