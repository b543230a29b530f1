package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/default-registry/internal/access"
	"github.com/heartmarshall/default-registry/internal/domain"
	"github.com/heartmarshall/default-registry/pkg/ctxutil"
)

// UploadInput holds an attachment upload.
type UploadInput struct {
	ApplicationID uuid.UUID
	Filename      string
	ContentType   string
	Content       io.Reader
}

// attachmentKey is the storage key of an application's file.
func attachmentKey(applicationID uuid.UUID, filename string) string {
	return "applications/" + applicationID.String() + "/" + filename
}

// UploadAttachment stores evidence for an application and records its
// metadata. Uploading a file with an existing name replaces the content and
// adds a new metadata row.
func (s *Service) UploadAttachment(ctx context.Context, input UploadInput) (*domain.Attachment, error) {
	actor, err := s.authorize(ctx, access.ApplicationAttach)
	if err != nil {
		return nil, err
	}
	filename, err := cleanFilename(input.Filename)
	if err != nil {
		return nil, err
	}
	if input.Content == nil {
		return nil, domain.NewValidationError("file", "required")
	}

	app, err := s.apps.GetByID(ctx, input.ApplicationID)
	if err != nil {
		return nil, fmt.Errorf("application.UploadAttachment: %w", err)
	}

	key := attachmentKey(app.ID, filename)
	obj, err := s.files.Put(ctx, key, input.Content, input.ContentType)
	if err != nil {
		return nil, fmt.Errorf("application.UploadAttachment store: %w", err)
	}

	var att *domain.Attachment
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		att, err = s.apps.CreateAttachment(ctx, &domain.Attachment{
			ID:            uuid.New(),
			ApplicationID: app.ID,
			Filename:      filename,
			URL:           obj.URL,
			StorageKey:    obj.Key,
			ContentType:   obj.ContentType,
			Size:          obj.Size,
			UploadedAt:    s.now().UTC(),
		})
		if err != nil {
			return err
		}
		return s.audit.Log(ctx, domain.AuditLog{
			UserID:     &actor.UserID,
			Action:     domain.AuditActionUpload,
			TargetType: domain.TargetTypeAttachment,
			TargetID:   strPtr(app.ID.String()),
			Details:    strPtr(filename),
			IP:         ctxutil.ClientIPFromCtx(ctx),
		})
	})
	if err != nil {
		return nil, fmt.Errorf("application.UploadAttachment: %w", err)
	}

	s.log.InfoContext(ctx, "attachment uploaded",
		slog.String("application_id", app.ID.String()),
		slog.String("filename", filename),
		slog.Int64("size", obj.Size),
	)
	return att, nil
}

// ListAttachments returns the attachments of an application.
func (s *Service) ListAttachments(ctx context.Context, applicationID uuid.UUID) ([]domain.Attachment, error) {
	if _, err := s.authorize(ctx, access.ApplicationRead); err != nil {
		return nil, err
	}
	if _, err := s.apps.GetByID(ctx, applicationID); err != nil {
		return nil, fmt.Errorf("application.ListAttachments: %w", err)
	}

	atts, err := s.apps.ListAttachments(ctx, applicationID)
	if err != nil {
		return nil, fmt.Errorf("application.ListAttachments: %w", err)
	}
	return atts, nil
}

// PresignAttachment returns a download URL for a stored attachment. When the
// store cannot presign, the attachment's recorded public URL is returned.
func (s *Service) PresignAttachment(ctx context.Context, applicationID uuid.UUID, filename string) (string, error) {
	if _, err := s.authorize(ctx, access.ApplicationRead); err != nil {
		return "", err
	}
	name, err := cleanFilename(filename)
	if err != nil {
		return "", err
	}

	att, err := s.apps.GetAttachmentByFilename(ctx, applicationID, name)
	if err != nil {
		return "", fmt.Errorf("application.PresignAttachment: %w", err)
	}

	url, ok, err := s.files.Presign(ctx, att.StorageKey)
	if err != nil {
		return "", fmt.Errorf("application.PresignAttachment: %w", err)
	}
	if !ok {
		return att.URL, nil
	}
	return url, nil
}
