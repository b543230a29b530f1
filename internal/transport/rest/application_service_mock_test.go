package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/default-registry/internal/domain"
	"github.com/heartmarshall/default-registry/internal/service/application"
	"sync"
)

var _ applicationService = &applicationServiceMock{}

type applicationServiceMock struct {
	CreateFunc            func(ctx context.Context, input application.CreateInput) (*domain.Application, error)
	GetFunc               func(ctx context.Context, id uuid.UUID) (*domain.Application, error)
	ListFunc              func(ctx context.Context, input application.ListInput) ([]domain.Application, error)
	ListAttachmentsFunc   func(ctx context.Context, applicationID uuid.UUID) ([]domain.Attachment, error)
	PresignAttachmentFunc func(ctx context.Context, applicationID uuid.UUID, filename string) (string, error)
	ReviewFunc            func(ctx context.Context, input application.ReviewInput) (*domain.Application, error)
	UploadAttachmentFunc  func(ctx context.Context, input application.UploadInput) (*domain.Attachment, error)

	calls struct {
		Create []struct {
			Ctx   context.Context
			Input application.CreateInput
		}
		Get []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx   context.Context
			Input application.ListInput
		}
		ListAttachments []struct {
			Ctx           context.Context
			ApplicationID uuid.UUID
		}
		PresignAttachment []struct {
			Ctx           context.Context
			ApplicationID uuid.UUID
			Filename      string
		}
		Review []struct {
			Ctx   context.Context
			Input application.ReviewInput
		}
		UploadAttachment []struct {
			Ctx   context.Context
			Input application.UploadInput
		}
	}
	lockCreate            sync.RWMutex
	lockGet               sync.RWMutex
	lockList              sync.RWMutex
	lockListAttachments   sync.RWMutex
	lockPresignAttachment sync.RWMutex
	lockReview            sync.RWMutex
	lockUploadAttachment  sync.RWMutex
}

func (mock *applicationServiceMock) Create(ctx context.Context, input application.CreateInput) (*domain.Application, error) {
	if mock.CreateFunc == nil {
		panic("applicationServiceMock.CreateFunc: method is nil but applicationService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input application.CreateInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *applicationServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input application.CreateInput
} {
	var calls []struct {
		Ctx   context.Context
		Input application.CreateInput
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *applicationServiceMock) Get(ctx context.Context, id uuid.UUID) (*domain.Application, error) {
	if mock.GetFunc == nil {
		panic("applicationServiceMock.GetFunc: method is nil but applicationService.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *applicationServiceMock) GetCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockGet.RLock()
	calls = mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *applicationServiceMock) List(ctx context.Context, input application.ListInput) ([]domain.Application, error) {
	if mock.ListFunc == nil {
		panic("applicationServiceMock.ListFunc: method is nil but applicationService.List was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input application.ListInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, input)
}

func (mock *applicationServiceMock) ListCalls() []struct {
	Ctx   context.Context
	Input application.ListInput
} {
	var calls []struct {
		Ctx   context.Context
		Input application.ListInput
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *applicationServiceMock) ListAttachments(ctx context.Context, applicationID uuid.UUID) ([]domain.Attachment, error) {
	if mock.ListAttachmentsFunc == nil {
		panic("applicationServiceMock.ListAttachmentsFunc: method is nil but applicationService.ListAttachments was just called")
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

func (mock *applicationServiceMock) ListAttachmentsCalls() []struct {
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

func (mock *applicationServiceMock) PresignAttachment(ctx context.Context, applicationID uuid.UUID, filename string) (string, error) {
	if mock.PresignAttachmentFunc == nil {
		panic("applicationServiceMock.PresignAttachmentFunc: method is nil but applicationService.PresignAttachment was just called")
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
	mock.lockPresignAttachment.Lock()
	mock.calls.PresignAttachment = append(mock.calls.PresignAttachment, callInfo)
	mock.lockPresignAttachment.Unlock()
	return mock.PresignAttachmentFunc(ctx, applicationID, filename)
}

func (mock *applicationServiceMock) PresignAttachmentCalls() []struct {
	Ctx           context.Context
	ApplicationID uuid.UUID
	Filename      string
} {
	var calls []struct {
		Ctx           context.Context
		ApplicationID uuid.UUID
		Filename      string
	}
	mock.lockPresignAttachment.RLock()
	calls = mock.calls.PresignAttachment
	mock.lockPresignAttachment.RUnlock()
	return calls
}

func (mock *applicationServiceMock) Review(ctx context.Context, input application.ReviewInput) (*domain.Application, error) {
	if mock.ReviewFunc == nil {
		panic("applicationServiceMock.ReviewFunc: method is nil but applicationService.Review was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input application.ReviewInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockReview.Lock()
	mock.calls.Review = append(mock.calls.Review, callInfo)
	mock.lockReview.Unlock()
	return mock.ReviewFunc(ctx, input)
}

func (mock *applicationServiceMock) ReviewCalls() []struct {
	Ctx   context.Context
	Input application.ReviewInput
} {
	var calls []struct {
		Ctx   context.Context
		Input application.ReviewInput
	}
	mock.lockReview.RLock()
	calls = mock.calls.Review
	mock.lockReview.RUnlock()
	return calls
}

func (mock *applicationServiceMock) UploadAttachment(ctx context.Context, input application.UploadInput) (*domain.Attachment, error) {
	if mock.UploadAttachmentFunc == nil {
		panic("applicationServiceMock.UploadAttachmentFunc: method is nil but applicationService.UploadAttachment was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input application.UploadInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockUploadAttachment.Lock()
	mock.calls.UploadAttachment = append(mock.calls.UploadAttachment, callInfo)
	mock.lockUploadAttachment.Unlock()
	return mock.UploadAttachmentFunc(ctx, input)
}

func (mock *applicationServiceMock) UploadAttachmentCalls() []struct {
	Ctx   context.Context
	Input application.UploadInput
} {
	var calls []struct {
		Ctx   context.Context
		Input application.UploadInput
	}
	mock.lockUploadAttachment.RLock()
	calls = mock.calls.UploadAttachment
	mock.lockUploadAttachment.RUnlock()
	return calls
}
