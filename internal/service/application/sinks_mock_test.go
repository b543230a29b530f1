package application

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/default-registry/internal/adapter/kafka"
	"github.com/heartmarshall/default-registry/internal/adapter/storage"
	"github.com/heartmarshall/default-registry/internal/domain"
	"io"
	"sync"
)

var _ notificationSink = &notificationSinkMock{}

type notificationSinkMock struct {
	EnqueueFunc func(ctx context.Context, userID uuid.UUID, content string) (*domain.Notification, error)

	calls struct {
		Enqueue []struct {
			Ctx     context.Context
			UserID  uuid.UUID
			Content string
		}
	}
	lockEnqueue sync.RWMutex
}

func (mock *notificationSinkMock) Enqueue(ctx context.Context, userID uuid.UUID, content string) (*domain.Notification, error) {
	if mock.EnqueueFunc == nil {
		panic("notificationSinkMock.EnqueueFunc: method is nil but notificationSink.Enqueue was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		UserID  uuid.UUID
		Content string
	}{
		Ctx:     ctx,
		UserID:  userID,
		Content: content,
	}
	mock.lockEnqueue.Lock()
	mock.calls.Enqueue = append(mock.calls.Enqueue, callInfo)
	mock.lockEnqueue.Unlock()
	return mock.EnqueueFunc(ctx, userID, content)
}

func (mock *notificationSinkMock) EnqueueCalls() []struct {
	Ctx     context.Context
	UserID  uuid.UUID
	Content string
} {
	var calls []struct {
		Ctx     context.Context
		UserID  uuid.UUID
		Content string
	}
	mock.lockEnqueue.RLock()
	calls = mock.calls.Enqueue
	mock.lockEnqueue.RUnlock()
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

var _ fileStore = &fileStoreMock{}

type fileStoreMock struct {
	PutFunc     func(ctx context.Context, key string, r io.Reader, contentType string) (storage.Object, error)
	PresignFunc func(ctx context.Context, key string) (string, bool, error)

	calls struct {
		Put []struct {
			Ctx         context.Context
			Key         string
			R           io.Reader
			ContentType string
		}
		Presign []struct {
			Ctx context.Context
			Key string
		}
	}
	lockPut     sync.RWMutex
	lockPresign sync.RWMutex
}

func (mock *fileStoreMock) Put(ctx context.Context, key string, r io.Reader, contentType string) (storage.Object, error) {
	if mock.PutFunc == nil {
		panic("fileStoreMock.PutFunc: method is nil but fileStore.Put was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		Key         string
		R           io.Reader
		ContentType string
	}{
		Ctx:         ctx,
		Key:         key,
		R:           r,
		ContentType: contentType,
	}
	mock.lockPut.Lock()
	mock.calls.Put = append(mock.calls.Put, callInfo)
	mock.lockPut.Unlock()
	return mock.PutFunc(ctx, key, r, contentType)
}

func (mock *fileStoreMock) PutCalls() []struct {
	Ctx         context.Context
	Key         string
	R           io.Reader
	ContentType string
} {
	var calls []struct {
		Ctx         context.Context
		Key         string
		R           io.Reader
		ContentType string
	}
	mock.lockPut.RLock()
	calls = mock.calls.Put
	mock.lockPut.RUnlock()
	return calls
}

func (mock *fileStoreMock) Presign(ctx context.Context, key string) (string, bool, error) {
	if mock.PresignFunc == nil {
		panic("fileStoreMock.PresignFunc: method is nil but fileStore.Presign was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Key string
	}{
		Ctx: ctx,
		Key: key,
	}
	mock.lockPresign.Lock()
	mock.calls.Presign = append(mock.calls.Presign, callInfo)
	mock.lockPresign.Unlock()
	return mock.PresignFunc(ctx, key)
}

func (mock *fileStoreMock) PresignCalls() []struct {
	Ctx context.Context
	Key string
} {
	var calls []struct {
		Ctx context.Context
		Key string
	}
	mock.lockPresign.RLock()
	calls = mock.calls.Presign
	mock.lockPresign.RUnlock()
	return calls
}

var _ eventPublisher = &eventPublisherMock{}

type eventPublisherMock struct {
	PublishReviewFunc func(ctx context.Context, ev kafka.ReviewEvent) error

	calls struct {
		PublishReview []struct {
			Ctx context.Context
			Ev  kafka.ReviewEvent
		}
	}
	lockPublishReview sync.RWMutex
}

func (mock *eventPublisherMock) PublishReview(ctx context.Context, ev kafka.ReviewEvent) error {
	if mock.PublishReviewFunc == nil {
		panic("eventPublisherMock.PublishReviewFunc: method is nil but eventPublisher.PublishReview was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ev  kafka.ReviewEvent
	}{
		Ctx: ctx,
		Ev:  ev,
	}
	mock.lockPublishReview.Lock()
	mock.calls.PublishReview = append(mock.calls.PublishReview, callInfo)
	mock.lockPublishReview.Unlock()
	return mock.PublishReviewFunc(ctx, ev)
}

func (mock *eventPublisherMock) PublishReviewCalls() []struct {
	Ctx context.Context
	Ev  kafka.ReviewEvent
} {
	var calls []struct {
		Ctx context.Context
		Ev  kafka.ReviewEvent
	}
	mock.lockPublishReview.RLock()
	calls = mock.calls.PublishReview
	mock.lockPublishReview.RUnlock()
	return calls
}
