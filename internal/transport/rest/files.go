package rest

import (
	"log/slog"
	"net/http"
	"os"
	"path"

	"github.com/heartmarshall/default-registry/internal/domain"
	"github.com/heartmarshall/default-registry/pkg/ctxutil"
)

type fileOpener interface {
	Open(key string) (*os.File, error)
}

// FileHandler serves objects of the local attachment store.
type FileHandler struct {
	store fileOpener
	log   *slog.Logger
}

// NewFileHandler creates a FileHandler.
func NewFileHandler(store fileOpener, logger *slog.Logger) *FileHandler {
	return &FileHandler{store: store, log: logger.With("handler", "files")}
}

// Serve handles GET /files/{key...}. Any authenticated user may download.
func (h *FileHandler) Serve(w http.ResponseWriter, r *http.Request) {
	if _, ok := ctxutil.ActorFromCtx(r.Context()); !ok {
		respondError(w, r, h.log, domain.ErrUnauthorized)
		return
	}

	key := r.PathValue("key")
	f, err := h.store.Open(key)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Content-Disposition", `attachment; filename="`+path.Base(key)+`"`)
	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
}
