package content

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/weeklycontents/backend/internal/domain"
)

// Write creates a fresh content item inside an entry. The owning entry must
// exist; the store checks the reference at commit and a dangling entry id
// surfaces as not found.
func (s *Service) Write(ctx context.Context, form domain.ContentForm) (*domain.ContentDTO, error) {
	validated, err := domain.ValidateContentForm(form)
	if err != nil {
		return nil, err
	}

	c := domain.NewContent(validated, s.clock.Now())

	if err := s.contents.Upsert(ctx, c); err != nil {
		return nil, fmt.Errorf("save content: %w", err)
	}

	s.log.InfoContext(ctx, "content written",
		slog.String("content_id", c.ID.String()),
		slog.String("entry_id", c.EntryID.String()),
	)

	dto := c.ToDTO()
	return &dto, nil
}
