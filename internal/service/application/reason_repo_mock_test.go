package application

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/default-registry/internal/domain"
	"sync"
)

var _ reasonRepo = &reasonRepoMock{}

type reasonRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Reason, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *reasonRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Reason, error) {
	if mock.GetByIDFunc == nil {
		panic("reasonRepoMock.GetByIDFunc: method is nil but reasonRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *reasonRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}
