// Package content implements the content use cases: writing, replacing,
// deleting, and reading the items inside an entry.
package content

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/weeklycontents/backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type contentRepo interface {
	Upsert(ctx context.Context, c domain.Content) error
	Delete(ctx context.Context, ids []uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Content, error)
	GetDTOByID(ctx context.Context, id uuid.UUID) (*domain.ContentDTO, error)
	Search(ctx context.Context, filter domain.ContentFilter) ([]domain.ContentDTO, error)
}

type timeSource interface {
	Now() time.Time
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the content business logic.
type Service struct {
	log      *slog.Logger
	contents contentRepo
	clock    timeSource
}

// NewService creates a new Content service.
func NewService(logger *slog.Logger, contents contentRepo, clock timeSource) *Service {
	return &Service{
		log:      logger.With("service", "content"),
		contents: contents,
		clock:    clock,
	}
}

func parseContentID(raw string) (uuid.UUID, error) {
	id, ferr := domain.ParseContentID(raw)
	if ferr != nil {
		return uuid.Nil, domain.NewValidationError(ferr.Field, ferr.Message)
	}
	return id, nil
}
