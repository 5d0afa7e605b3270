package entry

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/weeklycontents/backend/internal/domain"
)

// Write creates a fresh entry from the submitted form.
func (s *Service) Write(ctx context.Context, form domain.EntryForm) (*domain.EntryDTO, error) {
	validated, err := domain.ValidateEntryForm(form)
	if err != nil {
		return nil, err
	}

	e := domain.NewEntry(validated, s.clock.Now())

	if err := s.entries.Upsert(ctx, e); err != nil {
		return nil, fmt.Errorf("save entry: %w", err)
	}

	s.log.InfoContext(ctx, "entry written",
		slog.String("entry_id", e.ID.String()),
		slog.String("title", e.Title.String()),
	)

	dto := e.ToDTO(nil)
	return &dto, nil
}
