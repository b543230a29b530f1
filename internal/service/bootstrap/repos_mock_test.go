package bootstrap

import (
	"context"
	"github.com/heartmarshall/default-registry/internal/domain"
	"sync"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	CreateIfAbsentFunc func(ctx context.Context, u *domain.User) (bool, error)

	calls struct {
		CreateIfAbsent []struct {
			Ctx context.Context
			U   *domain.User
		}
	}
	lockCreateIfAbsent sync.RWMutex
}

func (mock *userRepoMock) CreateIfAbsent(ctx context.Context, u *domain.User) (bool, error) {
	if mock.CreateIfAbsentFunc == nil {
		panic("userRepoMock.CreateIfAbsentFunc: method is nil but userRepo.CreateIfAbsent was just called")
	}
	callInfo := struct {
		Ctx context.Context
		U   *domain.User
	}{
		Ctx: ctx,
		U:   u,
	}
	mock.lockCreateIfAbsent.Lock()
	mock.calls.CreateIfAbsent = append(mock.calls.CreateIfAbsent, callInfo)
	mock.lockCreateIfAbsent.Unlock()
	return mock.CreateIfAbsentFunc(ctx, u)
}

func (mock *userRepoMock) CreateIfAbsentCalls() []struct {
	Ctx context.Context
	U   *domain.User
} {
	var calls []struct {
		Ctx context.Context
		U   *domain.User
	}
	mock.lockCreateIfAbsent.RLock()
	calls = mock.calls.CreateIfAbsent
	mock.lockCreateIfAbsent.RUnlock()
	return calls
}

var _ reasonRepo = &reasonRepoMock{}

type reasonRepoMock struct {
	CreateIfAbsentFunc func(ctx context.Context, r *domain.Reason) (bool, error)

	calls struct {
		CreateIfAbsent []struct {
			Ctx context.Context
			R   *domain.Reason
		}
	}
	lockCreateIfAbsent sync.RWMutex
}

func (mock *reasonRepoMock) CreateIfAbsent(ctx context.Context, r *domain.Reason) (bool, error) {
	if mock.CreateIfAbsentFunc == nil {
		panic("reasonRepoMock.CreateIfAbsentFunc: method is nil but reasonRepo.CreateIfAbsent was just called")
	}
	callInfo := struct {
		Ctx context.Context
		R   *domain.Reason
	}{
		Ctx: ctx,
		R:   r,
	}
	mock.lockCreateIfAbsent.Lock()
	mock.calls.CreateIfAbsent = append(mock.calls.CreateIfAbsent, callInfo)
	mock.lockCreateIfAbsent.Unlock()
	return mock.CreateIfAbsentFunc(ctx, r)
}

func (mock *reasonRepoMock) CreateIfAbsentCalls() []struct {
	Ctx context.Context
	R   *domain.Reason
} {
	var calls []struct {
		Ctx context.Context
		R   *domain.Reason
	}
	mock.lockCreateIfAbsent.RLock()
	calls = mock.calls.CreateIfAbsent
	mock.lockCreateIfAbsent.RUnlock()
	return calls
}
