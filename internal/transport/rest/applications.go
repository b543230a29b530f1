package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/default-registry/internal/domain"
	"github.com/heartmarshall/default-registry/internal/service/application"
	"github.com/heartmarshall/default-registry/internal/transport/dataloader"
)

// multipartMemory is the part of an upload kept in memory; the rest spills
// to temporary files.
const multipartMemory = 8 << 20

type applicationService interface {
	Create(ctx context.Context, input application.CreateInput) (*domain.Application, error)
	List(ctx context.Context, input application.ListInput) ([]domain.Application, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Application, error)
	Review(ctx context.Context, input application.ReviewInput) (*domain.Application, error)
	UploadAttachment(ctx context.Context, input application.UploadInput) (*domain.Attachment, error)
	ListAttachments(ctx context.Context, applicationID uuid.UUID) ([]domain.Attachment, error)
	PresignAttachment(ctx context.Context, applicationID uuid.UUID, filename string) (string, error)
}

// ApplicationHandler serves the application workflow.
type ApplicationHandler struct {
	svc       applicationService
	retry     *Retrier
	maxUpload int64
	log       *slog.Logger
}

// NewApplicationHandler creates an ApplicationHandler. maxUpload bounds the
// request body of attachment uploads.
func NewApplicationHandler(svc applicationService, retry *Retrier, maxUpload int64, logger *slog.Logger) *ApplicationHandler {
	return &ApplicationHandler{svc: svc, retry: retry, maxUpload: maxUpload, log: logger.With("handler", "application")}
}

type createApplicationRequest struct {
	Type                 domain.ApplicationType `json:"type"`
	CustomerID           uuid.UUID              `json:"customer_id"`
	ReasonID             uuid.UUID              `json:"reason_id"`
	LatestExternalRating *string                `json:"latest_external_rating"`
	Severity             *domain.Severity       `json:"severity"`
	Remark               *string                `json:"remark"`
}

type reviewRequest struct {
	Decision domain.ApplicationStatus `json:"decision"`
	Remark   *string                  `json:"remark"`
}

type presignResponse struct {
	URL string `json:"url"`
}

// Create handles POST /applications.
func (h *ApplicationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createApplicationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	app, err := retry(r.Context(), h.retry, func() (*domain.Application, error) {
		return h.svc.Create(r.Context(), application.CreateInput(req))
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toApplicationResponse(app))
}

// List handles GET /applications with optional filters, newest first.
func (h *ApplicationHandler) List(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	input := application.ListInput{
		CustomerID:   q.id("customer_id"),
		CustomerName: q.str("customer_name"),
		Limit:        q.intOr("limit", 0),
		Offset:       q.intOr("offset", 0),
	}
	if s := q.str("status"); s != nil {
		status := domain.ApplicationStatus(*s)
		input.Status = &status
	}
	if t := q.str("type"); t != nil {
		typ := domain.ApplicationType(*t)
		input.Type = &typ
	}
	if err := q.err(); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	apps, err := h.svc.List(r.Context(), input)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	resp, err := h.enrich(r.Context(), apps)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /applications/{id}.
func (h *ApplicationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	app, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	resp, err := h.enrich(r.Context(), []domain.Application{*app})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, resp[0])
}

// Review handles POST /applications/{id}/review.
func (h *ApplicationHandler) Review(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	var req reviewRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	app, err := retry(r.Context(), h.retry, func() (*domain.Application, error) {
		return h.svc.Review(r.Context(), application.ReviewInput{
			ApplicationID: id,
			Decision:      req.Decision,
			Remark:        req.Remark,
		})
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toApplicationResponse(app))
}

// UploadAttachment handles POST /applications/{id}/attachments with a
// multipart "file" part. Uploads are not retried: the body is consumed by
// the first attempt.
func (h *ApplicationHandler) UploadAttachment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload+multipartMemory)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		respondError(w, r, h.log, domain.NewValidationError("file", "invalid multipart body"))
		return
	}
	defer r.MultipartForm.RemoveAll() //nolint:errcheck

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, r, h.log, domain.NewValidationError("file", "required"))
		return
	}
	defer file.Close()

	att, err := h.svc.UploadAttachment(r.Context(), application.UploadInput{
		ApplicationID: id,
		Filename:      header.Filename,
		ContentType:   header.Header.Get("Content-Type"),
		Content:       file,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toAttachmentResponse(att))
}

// ListAttachments handles GET /applications/{id}/attachments.
func (h *ApplicationHandler) ListAttachments(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	atts, err := h.svc.ListAttachments(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(atts, toAttachmentResponse))
}

// PresignAttachment handles GET /applications/{id}/attachments/presign?filename=.
func (h *ApplicationHandler) PresignAttachment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	url, err := h.svc.PresignAttachment(r.Context(), id, r.URL.Query().Get("filename"))
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, presignResponse{URL: url})
}

// enrich adds customer names and reason descriptions through the request's
// loaders. Without loaders the plain DTOs are returned.
func (h *ApplicationHandler) enrich(ctx context.Context, apps []domain.Application) ([]applicationResponse, error) {
	resp := mapSlice(apps, toApplicationResponse)
	loaders := dataloader.FromContext(ctx)
	if loaders == nil || len(apps) == 0 {
		return resp, nil
	}

	customerIDs := make([]uuid.UUID, len(apps))
	reasonIDs := make([]uuid.UUID, len(apps))
	for i := range apps {
		customerIDs[i] = apps[i].CustomerID
		reasonIDs[i] = apps[i].ReasonID
	}

	customers, errs := loaders.CustomerByID.LoadMany(ctx, customerIDs)()
	if err := firstError(errs); err != nil {
		return nil, err
	}
	reasons, errs := loaders.ReasonByID.LoadMany(ctx, reasonIDs)()
	if err := firstError(errs); err != nil {
		return nil, err
	}

	for i := range resp {
		if c := customers[i]; c != nil {
			resp[i].CustomerName = &c.Name
		}
		if rs := reasons[i]; rs != nil {
			resp[i].ReasonDescription = &rs.Description
		}
	}
	return resp, nil
}

func firstError(errs []error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
