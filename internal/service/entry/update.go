package entry

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/weeklycontents/backend/internal/domain"
)

// Update overwrites the form fields of an existing entry. The variant and
// creation timestamp are preserved.
func (s *Service) Update(ctx context.Context, rawID string, form domain.EntryForm) (*domain.EntryDTO, error) {
	id, err := parseEntryID(rawID)
	if err != nil {
		return nil, err
	}

	validated, err := domain.ValidateEntryForm(form)
	if err != nil {
		return nil, err
	}

	current, err := s.entries.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get entry: %w", err)
	}

	updated := domain.UpdateEntry(*current, validated, s.clock.Now())

	if err := s.entries.Upsert(ctx, updated); err != nil {
		return nil, fmt.Errorf("save entry: %w", err)
	}

	s.log.InfoContext(ctx, "entry updated", slog.String("entry_id", id.String()))

	return s.entries.GetDTOByID(ctx, id)
}
