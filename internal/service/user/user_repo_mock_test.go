package user

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/default-registry/internal/domain"
	"sync"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	CreateFunc         func(ctx context.Context, u *domain.User) (*domain.User, error)
	ListFunc           func(ctx context.Context, limit int, offset int) ([]domain.User, error)
	SetActiveFunc      func(ctx context.Context, id uuid.UUID, active bool) (*domain.User, error)
	SetRoleByEmailFunc func(ctx context.Context, email string, role domain.Role) error

	calls struct {
		Create []struct {
			Ctx context.Context
			U   *domain.User
		}
		List []struct {
			Ctx    context.Context
			Limit  int
			Offset int
		}
		SetActive []struct {
			Ctx    context.Context
			ID     uuid.UUID
			Active bool
		}
		SetRoleByEmail []struct {
			Ctx   context.Context
			Email string
			Role  domain.Role
		}
	}
	lockCreate         sync.RWMutex
	lockList           sync.RWMutex
	lockSetActive      sync.RWMutex
	lockSetRoleByEmail sync.RWMutex
}

func (mock *userRepoMock) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	if mock.CreateFunc == nil {
		panic("userRepoMock.CreateFunc: method is nil but userRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		U   *domain.User
	}{
		Ctx: ctx,
		U:   u,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, u)
}

func (mock *userRepoMock) CreateCalls() []struct {
	Ctx context.Context
	U   *domain.User
} {
	var calls []struct {
		Ctx context.Context
		U   *domain.User
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *userRepoMock) List(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	if mock.ListFunc == nil {
		panic("userRepoMock.ListFunc: method is nil but userRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Limit  int
		Offset int
	}{
		Ctx:    ctx,
		Limit:  limit,
		Offset: offset,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, limit, offset)
}

func (mock *userRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Limit  int
	Offset int
} {
	var calls []struct {
		Ctx    context.Context
		Limit  int
		Offset int
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *userRepoMock) SetActive(ctx context.Context, id uuid.UUID, active bool) (*domain.User, error) {
	if mock.SetActiveFunc == nil {
		panic("userRepoMock.SetActiveFunc: method is nil but userRepo.SetActive was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     uuid.UUID
		Active bool
	}{
		Ctx:    ctx,
		ID:     id,
		Active: active,
	}
	mock.lockSetActive.Lock()
	mock.calls.SetActive = append(mock.calls.SetActive, callInfo)
	mock.lockSetActive.Unlock()
	return mock.SetActiveFunc(ctx, id, active)
}

func (mock *userRepoMock) SetActiveCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	Active bool
} {
	var calls []struct {
		Ctx    context.Context
		ID     uuid.UUID
		Active bool
	}
	mock.lockSetActive.RLock()
	calls = mock.calls.SetActive
	mock.lockSetActive.RUnlock()
	return calls
}

func (mock *userRepoMock) SetRoleByEmail(ctx context.Context, email string, role domain.Role) error {
	if mock.SetRoleByEmailFunc == nil {
		panic("userRepoMock.SetRoleByEmailFunc: method is nil but userRepo.SetRoleByEmail was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
		Role  domain.Role
	}{
		Ctx:   ctx,
		Email: email,
		Role:  role,
	}
	mock.lockSetRoleByEmail.Lock()
	mock.calls.SetRoleByEmail = append(mock.calls.SetRoleByEmail, callInfo)
	mock.lockSetRoleByEmail.Unlock()
	return mock.SetRoleByEmailFunc(ctx, email, role)
}

func (mock *userRepoMock) SetRoleByEmailCalls() []struct {
	Ctx   context.Context
	Email string
	Role  domain.Role
} {
	var calls []struct {
		Ctx   context.Context
		Email string
		Role  domain.Role
	}
	mock.lockSetRoleByEmail.RLock()
	calls = mock.calls.SetRoleByEmail
	mock.lockSetRoleByEmail.RUnlock()
	return calls
}
