package rest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/weeklycontents/backend/internal/domain"
)

type systemService interface {
	UploadFile(ctx context.Context, contentType string, body io.Reader) (domain.URL, error)
}

// UploadHandler serves the file upload endpoint.
type UploadHandler struct {
	system  systemService
	maxSize int64
	log     *slog.Logger
}

// NewUploadHandler creates an UploadHandler. maxSize caps the whole request
// body in bytes.
func NewUploadHandler(system systemService, maxSize int64, logger *slog.Logger) *UploadHandler {
	return &UploadHandler{system: system, maxSize: maxSize, log: logger.With("handler", "upload")}
}

type uploadResponse struct {
	URL string `json:"url"`
}

// Upload handles POST /api/upload. The file is sent as the multipart field
// "file"; its declared content type decides the stored object's path.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxSize)

	if err := r.ParseMultipartForm(h.maxSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(r.Context(), h.log, w, domain.NewValidationError("file", "file too large"))
			return
		}
		writeError(r.Context(), h.log, w, domain.NewValidationError("file", "invalid multipart request"))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(r.Context(), h.log, w, domain.NewValidationError("file", "missing file field"))
		return
	}
	defer file.Close()

	url, err := h.system.UploadFile(r.Context(), header.Header.Get("Content-Type"), file)
	if err != nil {
		writeError(r.Context(), h.log, w, err)
		return
	}
	writeJSON(w, http.StatusCreated, uploadResponse{URL: url.String()})
}
