package entry

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/weeklycontents/backend/internal/domain"
)

// Publish transitions a draft entry to published. Only entries that are
// drafts and hold at least one content can be published.
func (s *Service) Publish(ctx context.Context, rawID string) (*domain.EntryDTO, error) {
	id, err := parseEntryID(rawID)
	if err != nil {
		return nil, err
	}

	draft, err := s.entries.GetDraftByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get draft entry: %w", err)
	}
	if draft.Kind != domain.EntryKindDraft {
		return nil, domain.NewValidationError("entryId", "entry has no contents to publish")
	}

	published := domain.PublishEntry(*draft, s.clock.Now())

	if err := s.entries.Upsert(ctx, published); err != nil {
		return nil, fmt.Errorf("save entry: %w", err)
	}

	s.log.InfoContext(ctx, "entry published", slog.String("entry_id", id.String()))

	return s.entries.GetDTOByID(ctx, id)
}
