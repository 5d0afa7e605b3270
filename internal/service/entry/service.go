// Package entry implements the entry use cases: writing, publishing,
// broadcasting, and reading digest entries.
package entry

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

type entryRepo interface {
	Upsert(ctx context.Context, e domain.Entry) error
	Delete(ctx context.Context, ids []uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Entry, error)
	GetDraftByID(ctx context.Context, id uuid.UUID) (*domain.Entry, error)
	GetDTOByID(ctx context.Context, id uuid.UUID) (*domain.EntryDTO, error)
	Search(ctx context.Context, filter domain.EntryFilter) ([]domain.EntryDTO, error)
}

type broadcaster interface {
	BroadcastEntry(ctx context.Context, entry domain.EntryDTO) error
}

type timeSource interface {
	Now() time.Time
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the entry business logic.
type Service struct {
	log     *slog.Logger
	entries entryRepo
	line    broadcaster
	clock   timeSource
}

// NewService creates a new Entry service.
func NewService(logger *slog.Logger, entries entryRepo, line broadcaster, clock timeSource) *Service {
	return &Service{
		log:     logger.With("service", "entry"),
		entries: entries,
		line:    line,
		clock:   clock,
	}
}

// parseEntryID lifts the single field error of a malformed id into the
// aggregated validation error shape used everywhere else.
func parseEntryID(raw string) (uuid.UUID, error) {
	id, ferr := domain.ParseEntryID(raw)
	if ferr != nil {
		return uuid.Nil, domain.NewValidationError(ferr.Field, ferr.Message)
	}
	return id, nil
}
