package application

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/default-registry/internal/domain"
	"sync"
)

var _ applicationRepo = &applicationRepoMock{}

type applicationRepoMock struct {
	CreateFunc                  func(ctx context.Context, a *domain.Application) (*domain.Application, error)
	GetByIDFunc                 func(ctx context.Context, id uuid.UUID) (*domain.Application, error)
	GetForUpdateFunc            func(ctx context.Context, id uuid.UUID) (*domain.Application, error)
	ListFunc                    func(ctx context.Context, filter domain.ApplicationFilter) ([]domain.Application, error)
	SaveReviewFunc              func(ctx context.Context, a *domain.Application) error
	CreateAttachmentFunc        func(ctx context.Context, a *domain.Attachment) (*domain.Attachment, error)
	ListAttachmentsFunc         func(ctx context.Context, applicationID uuid.UUID) ([]domain.Attachment, error)
	GetAttachmentByFilenameFunc func(ctx context.Context, applicationID uuid.UUID, filename string) (*domain.Attachment, error)
	CountAttachmentsFunc        func(ctx context.Context, applicationID uuid.UUID) (int, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			A   *domain.Application
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetForUpdate []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			Filter domain.ApplicationFilter
		}
		SaveReview []struct {
			Ctx context.Context
			A   *domain.Application
		}
		CreateAttachment []struct {
			Ctx context.Context
			A   *domain.Attachment
		}
		ListAttachments []struct {
			Ctx           context.Context
			ApplicationID uuid.UUID
		}
		GetAttachmentByFilename []struct {
			Ctx           context.Context
			ApplicationID uuid.UUID
			Filename      string
		}
		CountAttachments []struct {
			Ctx           context.Context
			ApplicationID uuid.UUID
		}
	}
	lockCreate                  sync.RWMutex
	lockGetByID                 sync.RWMutex
	lockGetForUpdate            sync.RWMutex
	lockList                    sync.RWMutex
	lockSaveReview              sync.RWMutex
	lockCreateAttachment        sync.RWMutex
	lockListAttachments         sync.RWMutex
	lockGetAttachmentByFilename sync.RWMutex
	lockCountAttachments        sync.RWMutex
}

func (mock *applicationRepoMock) Create(ctx context.Context, a *domain.Application) (*domain.Application, error) {
	if mock.CreateFunc == nil {
		panic("applicationRepoMock.CreateFunc: method is nil but applicationRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		A   *domain.Application
	}{
		Ctx: ctx,
		A:   a,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, a)
}

func (mock *applicationRepoMock) CreateCalls() []struct {
	Ctx context.Context
	A   *domain.Application
} {
	var calls []struct {
		Ctx context.Context
		A   *domain.Application
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *applicationRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Application, error) {
	if mock.GetByIDFunc == nil {
		panic("applicationRepoMock.GetByIDFunc: method is nil but applicationRepo.GetByID was just called")
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

func (mock *applicationRepoMock) GetByIDCalls() []struct {
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

func (mock *applicationRepoMock) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Application, error) {
	if mock.GetForUpdateFunc == nil {
		panic("applicationRepoMock.GetForUpdateFunc: method is nil but applicationRepo.GetForUpdate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetForUpdate.Lock()
	mock.calls.GetForUpdate = append(mock.calls.GetForUpdate, callInfo)
	mock.lockGetForUpdate.Unlock()
	return mock.GetForUpdateFunc(ctx, id)
}

func (mock *applicationRepoMock) GetForUpdateCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockGetForUpdate.RLock()
	calls = mock.calls.GetForUpdate
	mock.lockGetForUpdate.RUnlock()
	return calls
}

func (mock *applicationRepoMock) List(ctx context.Context, filter domain.ApplicationFilter) ([]domain.Application, error) {
	if mock.ListFunc == nil {
		panic("applicationRepoMock.ListFunc: method is nil but applicationRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.ApplicationFilter
	}{
		Ctx:    ctx,
		Filter: filter,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *applicationRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.ApplicationFilter
} {
	var calls []struct {
		Ctx    context.Context
		Filter domain.ApplicationFilter
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *applicationRepoMock) SaveReview(ctx context.Context, a *domain.Application) error {
	if mock.SaveReviewFunc == nil {
		panic("applicationRepoMock.SaveReviewFunc: method is nil but applicationRepo.SaveReview was just called")
	}
	callInfo := struct {
		Ctx context.Context
		A   *domain.Application
	}{
		Ctx: ctx,
		A:   a,
	}
	mock.lockSaveReview.Lock()
	mock.calls.SaveReview = append(mock.calls.SaveReview, callInfo)
	mock.lockSaveReview.Unlock()
	return mock.SaveReviewFunc(ctx, a)
}

func (mock *applicationRepoMock) SaveReviewCalls() []struct {
	Ctx context.Context
	A   *domain.Application
} {
	var calls []struct {
		Ctx context.Context
		A   *domain.Application
	}
	mock.lockSaveReview.RLock()
	calls = mock.calls.SaveReview
	mock.lockSaveReview.RUnlock()
	return calls
}

func (mock *applicationRepoMock) CreateAttachment(ctx context.Context, a *domain.Attachment) (*domain.Attachment, error) {
	if mock.CreateAttachmentFunc == nil {
		panic("applicationRepoMock.CreateAttachmentFunc: method is nil but applicationRepo.CreateAttachment was just called")
	}
	callInfo := struct {
		Ctx context.Context
		A   *domain.Attachment
	}{
		Ctx: ctx,
		A:   a,
	}
	mock.lockCreateAttachment.Lock()
	mock.calls.CreateAttachment = append(mock.calls.CreateAttachment, callInfo)
	mock.lockCreateAttachment.Unlock()
	return mock.CreateAttachmentFunc(ctx, a)
}

func (mock *applicationRepoMock) CreateAttachmentCalls() []struct {
	Ctx context.Context
	A   *domain.Attachment
} {
	var calls []struct {
		Ctx context.Context
		A   *domain.Attachment
	}
	mock.lockCreateAttachment.RLock()
	calls = mock.calls.CreateAttachment
	mock.lockCreateAttachment.RUnlock()
	return calls
}

func (mock *applicationRepoMock) ListAttachments(ctx context.Context, applicationID uuid.UUID) ([]domain.Attachment, error) {
	if mock.ListAttachmentsFunc == nil {
		panic("applicationRepoMock.ListAttachmentsFunc: method is nil but applicationRepo.ListAttachments was just called")
	}
	callInfo := struct {
		Ctx           context.Context
		ApplicationID uuid.UUID
	}{
		Ctx:           ctx,
		ApplicationID: applicationID,
	}
	mock.lockListAttachments.Lock()
	mock.calls.ListAttachments = append(mock.calls.ListAttachments, callInfo)
	mock.lockListAttachments.Unlock()
	return mock.ListAttachmentsFunc(ctx, applicationID)
}

func (mock *applicationRepoMock) ListAttachmentsCalls() []struct {
	Ctx           context.Context
	ApplicationID uuid.UUID
} {
	var calls []struct {
		Ctx           context.Context
		ApplicationID uuid.UUID
	}
	mock.lockListAttachments.RLock()
	calls = mock.calls.ListAttachments
	mock.lockListAttachments.RUnlock()
	return calls
}

func (mock *applicationRepoMock) GetAttachmentByFilename(ctx context.Context, applicationID uuid.UUID, filename string) (*domain.Attachment, error) {
	if mock.GetAttachmentByFilenameFunc == nil {
		panic("applicationRepoMock.GetAttachmentByFilenameFunc: method is nil but applicationRepo.GetAttachmentByFilename was just called")
	}
	callInfo := struct {
		Ctx           context.Context
		ApplicationID uuid.UUID
		Filename      string
	}{
		Ctx:           ctx,
		ApplicationID: applicationID,
		Filename:      filename,
	}
	mock.lockGetAttachmentByFilename.Lock()
	mock.calls.GetAttachmentByFilename = append(mock.calls.GetAttachmentByFilename, callInfo)
	mock.lockGetAttachmentByFilename.Unlock()
	return mock.GetAttachmentByFilenameFunc(ctx, applicationID, filename)
}

func (mock *applicationRepoMock) GetAttachmentByFilenameCalls() []struct {
	Ctx           context.Context
	ApplicationID uuid.UUID
	Filename      string
} {
	var calls []struct {
		Ctx           context.Context
		ApplicationID uuid.UUID
		Filename      string
	}
	mock.lockGetAttachmentByFilename.RLock()
	calls = mock.calls.GetAttachmentByFilename
	mock.lockGetAttachmentByFilename.RUnlock()
	return calls
}

func (mock *applicationRepoMock) CountAttachments(ctx context.Context, applicationID uuid.UUID) (int, error) {
	if mock.CountAttachmentsFunc == nil {
		panic("applicationRepoMock.CountAttachmentsFunc: method is nil but applicationRepo.CountAttachments was just called")
	}
	callInfo := struct {
		Ctx           context.Context
		ApplicationID uuid.UUID
	}{
		Ctx:           ctx,
		ApplicationID: applicationID,
	}
	mock.lockCountAttachments.Lock()
	mock.calls.CountAttachments = append(mock.calls.CountAttachments, callInfo)
	mock.lockCountAttachments.Unlock()
	return mock.CountAttachmentsFunc(ctx, applicationID)
}

func (mock *applicationRepoMock) CountAttachmentsCalls() []struct {
	Ctx           context.Context
	ApplicationID uuid.UUID
} {
	var calls []struct {
		Ctx           context.Context
		ApplicationID uuid.UUID
	}
	mock.lockCountAttachments.RLock()
	calls = mock.calls.CountAttachments
	mock.lockCountAttachments.RUnlock()
	return calls
}
