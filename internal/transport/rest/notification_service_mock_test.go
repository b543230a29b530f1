package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/default-registry/internal/domain"
	"sync"
)

var _ notificationService = &notificationServiceMock{}

type notificationServiceMock struct {
	ListMineFunc    func(ctx context.Context, unreadOnly bool) ([]domain.Notification, error)
	MarkReadFunc    func(ctx context.Context, id uuid.UUID) (*domain.Notification, error)
	UnreadCountFunc func(ctx context.Context) (int, error)

	calls struct {
		ListMine []struct {
			Ctx        context.Context
			UnreadOnly bool
		}
		MarkRead []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		UnreadCount []struct {
			Ctx context.Context
		}
	}
	lockListMine    sync.RWMutex
	lockMarkRead    sync.RWMutex
	lockUnreadCount sync.RWMutex
}

func (mock *notificationServiceMock) ListMine(ctx context.Context, unreadOnly bool) ([]domain.Notification, error) {
	if mock.ListMineFunc == nil {
		panic("notificationServiceMock.ListMineFunc: method is nil but notificationService.ListMine was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		UnreadOnly bool
	}{
		Ctx:        ctx,
		UnreadOnly: unreadOnly,
	}
	mock.lockListMine.Lock()
	mock.calls.ListMine = append(mock.calls.ListMine, callInfo)
	mock.lockListMine.Unlock()
	return mock.ListMineFunc(ctx, unreadOnly)
}

func (mock *notificationServiceMock) ListMineCalls() []struct {
	Ctx        context.Context
	UnreadOnly bool
} {
	var calls []struct {
		Ctx        context.Context
		UnreadOnly bool
	}
	mock.lockListMine.RLock()
	calls = mock.calls.ListMine
	mock.lockListMine.RUnlock()
	return calls
}

func (mock *notificationServiceMock) MarkRead(ctx context.Context, id uuid.UUID) (*domain.Notification, error) {
	if mock.MarkReadFunc == nil {
		panic("notificationServiceMock.MarkReadFunc: method is nil but notificationService.MarkRead was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockMarkRead.Lock()
	mock.calls.MarkRead = append(mock.calls.MarkRead, callInfo)
	mock.lockMarkRead.Unlock()
	return mock.MarkReadFunc(ctx, id)
}

func (mock *notificationServiceMock) MarkReadCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockMarkRead.RLock()
	calls = mock.calls.MarkRead
	mock.lockMarkRead.RUnlock()
	return calls
}

func (mock *notificationServiceMock) UnreadCount(ctx context.Context) (int, error) {
	if mock.UnreadCountFunc == nil {
		panic("notificationServiceMock.UnreadCountFunc: method is nil but notificationService.UnreadCount was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockUnreadCount.Lock()
	mock.calls.UnreadCount = append(mock.calls.UnreadCount, callInfo)
	mock.lockUnreadCount.Unlock()
	return mock.UnreadCountFunc(ctx)
}

func (mock *notificationServiceMock) UnreadCountCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockUnreadCount.RLock()
	calls = mock.calls.UnreadCount
	mock.lockUnreadCount.RUnlock()
	return calls
}
