package reason

import (
	"context"
	"github.com/google/uuid"
	reasonrepo "github.com/heartmarshall/default-registry/internal/adapter/postgres/reason"
	"github.com/heartmarshall/default-registry/internal/domain"
	"sync"
)

var _ reasonRepo = &reasonRepoMock{}

type reasonRepoMock struct {
	ListFunc   func(ctx context.Context, filter domain.ReasonFilter) ([]domain.Reason, error)
	CreateFunc func(ctx context.Context, r *domain.Reason) (*domain.Reason, error)
	UpdateFunc func(ctx context.Context, id uuid.UUID, params reasonrepo.UpdateParams) (*domain.Reason, error)
	DeleteFunc func(ctx context.Context, id uuid.UUID) error

	calls struct {
		List []struct {
			Ctx    context.Context
			Filter domain.ReasonFilter
		}
		Create []struct {
			Ctx context.Context
			R   *domain.Reason
		}
		Update []struct {
			Ctx    context.Context
			ID     uuid.UUID
			Params reasonrepo.UpdateParams
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockList   sync.RWMutex
	lockCreate sync.RWMutex
	lockUpdate sync.RWMutex
	lockDelete sync.RWMutex
}

func (mock *reasonRepoMock) List(ctx context.Context, filter domain.ReasonFilter) ([]domain.Reason, error) {
	if mock.ListFunc == nil {
		panic("reasonRepoMock.ListFunc: method is nil but reasonRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.ReasonFilter
	}{
		Ctx:    ctx,
		Filter: filter,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *reasonRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.ReasonFilter
} {
	var calls []struct {
		Ctx    context.Context
		Filter domain.ReasonFilter
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *reasonRepoMock) Create(ctx context.Context, r *domain.Reason) (*domain.Reason, error) {
	if mock.CreateFunc == nil {
		panic("reasonRepoMock.CreateFunc: method is nil but reasonRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		R   *domain.Reason
	}{
		Ctx: ctx,
		R:   r,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, r)
}

func (mock *reasonRepoMock) CreateCalls() []struct {
	Ctx context.Context
	R   *domain.Reason
} {
	var calls []struct {
		Ctx context.Context
		R   *domain.Reason
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *reasonRepoMock) Update(ctx context.Context, id uuid.UUID, params reasonrepo.UpdateParams) (*domain.Reason, error) {
	if mock.UpdateFunc == nil {
		panic("reasonRepoMock.UpdateFunc: method is nil but reasonRepo.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     uuid.UUID
		Params reasonrepo.UpdateParams
	}{
		Ctx:    ctx,
		ID:     id,
		Params: params,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, params)
}

func (mock *reasonRepoMock) UpdateCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	Params reasonrepo.UpdateParams
} {
	var calls []struct {
		Ctx    context.Context
		ID     uuid.UUID
		Params reasonrepo.UpdateParams
	}
	mock.lockUpdate.RLock()
	calls = mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *reasonRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("reasonRepoMock.DeleteFunc: method is nil but reasonRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *reasonRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockDelete.RLock()
	calls = mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

var _ auditSink = &auditSinkMock{}

type auditSinkMock struct {
	LogFunc func(ctx context.Context, entry domain.AuditLog) error

	calls struct {
		Log []struct {
			Ctx   context.Context
			Entry domain.AuditLog
		}
	}
	lockLog sync.RWMutex
}

func (mock *auditSinkMock) Log(ctx context.Context, entry domain.AuditLog) error {
	if mock.LogFunc == nil {
		panic("auditSinkMock.LogFunc: method is nil but auditSink.Log was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Entry domain.AuditLog
	}{
		Ctx:   ctx,
		Entry: entry,
	}
	mock.lockLog.Lock()
	mock.calls.Log = append(mock.calls.Log, callInfo)
	mock.lockLog.Unlock()
	return mock.LogFunc(ctx, entry)
}

func (mock *auditSinkMock) LogCalls() []struct {
	Ctx   context.Context
	Entry domain.AuditLog
} {
	var calls []struct {
		Ctx   context.Context
		Entry domain.AuditLog
	}
	mock.lockLog.RLock()
	calls = mock.calls.Log
	mock.lockLog.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
			Fn  func(ctx context.Context) error
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Fn  func(ctx context.Context) error
	}{
		Ctx: ctx,
		Fn:  fn,
	}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, callInfo)
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Ctx context.Context
	Fn  func(ctx context.Context) error
} {
	var calls []struct {
		Ctx context.Context
		Fn  func(ctx context.Context) error
	}
	mock.lockRunInTx.RLock()
	calls = mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}
