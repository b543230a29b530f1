package customer

import (
	"context"
	"github.com/heartmarshall/default-registry/internal/domain"
	"sync"
)

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
