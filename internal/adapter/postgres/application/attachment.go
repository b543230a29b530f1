package application

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/default-registry/internal/adapter/postgres"
	"github.com/heartmarshall/default-registry/internal/domain"
)

const attachmentTable = "application_attachments"

var attachmentColumns = []string{
	"id", "application_id", "filename", "url", "storage_key", "content_type", "size", "uploaded_at",
}

// CreateAttachment records attachment metadata.
func (r *Repo) CreateAttachment(ctx context.Context, a *domain.Attachment) (*domain.Attachment, error) {
	sql, args, err := postgres.Builder.Insert(attachmentTable).
		Columns(attachmentColumns...).
		Values(a.ID, a.ApplicationID, a.Filename, a.URL, a.StorageKey, a.ContentType, a.Size, a.UploadedAt).
		Suffix("RETURNING " + postgres.JoinColumns(attachmentColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build attachment insert: %w", err)
	}

	var created domain.Attachment
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &created, sql, args...); err != nil {
		return nil, postgres.MapError(err, "application", a.ApplicationID)
	}
	return &created, nil
}

// ListAttachments returns the attachments of an application in upload order.
func (r *Repo) ListAttachments(ctx context.Context, applicationID uuid.UUID) ([]domain.Attachment, error) {
	sql, args, err := postgres.Builder.Select(attachmentColumns...).
		From(attachmentTable).
		Where(squirrel.Eq{"application_id": applicationID}).
		OrderBy("uploaded_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build attachment list: %w", err)
	}

	attachments := []domain.Attachment{}
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &attachments, sql, args...); err != nil {
		return nil, fmt.Errorf("list attachments: %w", err)
	}
	return attachments, nil
}

// GetAttachmentByFilename returns the most recent attachment of an
// application with the given filename.
func (r *Repo) GetAttachmentByFilename(ctx context.Context, applicationID uuid.UUID, filename string) (*domain.Attachment, error) {
	sql, args, err := postgres.Builder.Select(attachmentColumns...).
		From(attachmentTable).
		Where(squirrel.Eq{"application_id": applicationID, "filename": filename}).
		OrderBy("uploaded_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build attachment query: %w", err)
	}

	var a domain.Attachment
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &a, sql, args...); err != nil {
		return nil, postgres.MapError(err, "attachment", filename)
	}
	return &a, nil
}

// CountAttachments returns the number of attachments of an application.
func (r *Repo) CountAttachments(ctx context.Context, applicationID uuid.UUID) (int, error) {
	var n int
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx,
		`SELECT count(*) FROM application_attachments WHERE application_id = $1`, applicationID,
	).Scan(&n)
	if err != nil {
		return 0, postgres.MapError(err, "application", applicationID)
	}
	return n, nil
}
