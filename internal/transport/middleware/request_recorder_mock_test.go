package middleware

import (
	"context"
	"sync"
)

var _ requestRecorder = &requestRecorderMock{}

type requestRecorderMock struct {
	RecordRequestFunc func(ctx context.Context, method string, path string) error

	calls struct {
		RecordRequest []struct {
			Ctx    context.Context
			Method string
			Path   string
		}
	}
	lockRecordRequest sync.RWMutex
}

func (mock *requestRecorderMock) RecordRequest(ctx context.Context, method string, path string) error {
	if mock.RecordRequestFunc == nil {
		panic("requestRecorderMock.RecordRequestFunc: method is nil but requestRecorder.RecordRequest was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Method string
		Path   string
	}{
		Ctx:    ctx,
		Method: method,
		Path:   path,
	}
	mock.lockRecordRequest.Lock()
	mock.calls.RecordRequest = append(mock.calls.RecordRequest, callInfo)
	mock.lockRecordRequest.Unlock()
	return mock.RecordRequestFunc(ctx, method, path)
}

func (mock *requestRecorderMock) RecordRequestCalls() []struct {
	Ctx    context.Context
	Method string
	Path   string
} {
	var calls []struct {
		Ctx    context.Context
		Method string
		Path   string
	}
	mock.lockRecordRequest.RLock()
	calls = mock.calls.RecordRequest
	mock.lockRecordRequest.RUnlock()
	return calls
}
