// Package system implements cross-cutting use cases, currently file upload.
package system

import (
	"context"
	"io"
	"log/slog"

	"github.com/weeklycontents/backend/internal/domain"
)

type uploader interface {
	Upload(ctx context.Context, contentType string, body io.Reader) (domain.URL, error)
}

// Service implements the system business logic.
type Service struct {
	log     *slog.Logger
	storage uploader
}

// NewService creates a new System service.
func NewService(logger *slog.Logger, storage uploader) *Service {
	return &Service{
		log:     logger.With("service", "system"),
		storage: storage,
	}
}
