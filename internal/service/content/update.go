package content

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/weeklycontents/backend/internal/domain"
)

// Update replaces every form-backed field of an existing content wholesale,
// including its element list. Elements are never patched in place.
func (s *Service) Update(ctx context.Context, rawID string, form domain.ContentForm) (*domain.ContentDTO, error) {
	id, err := parseContentID(rawID)
	if err != nil {
		return nil, err
	}

	validated, err := domain.ValidateContentForm(form)
	if err != nil {
		return nil, err
	}

	current, err := s.contents.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get content: %w", err)
	}

	updated := domain.UpdateContent(*current, validated, s.clock.Now())

	if err := s.contents.Upsert(ctx, updated); err != nil {
		return nil, fmt.Errorf("save content: %w", err)
	}

	s.log.InfoContext(ctx, "content updated", slog.String("content_id", id.String()))

	dto := updated.ToDTO()
	return &dto, nil
}
