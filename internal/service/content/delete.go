package content

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// Delete removes the content and its elements.
func (s *Service) Delete(ctx context.Context, rawID string) error {
	id, err := parseContentID(rawID)
	if err != nil {
		return err
	}

	if err := s.contents.Delete(ctx, []uuid.UUID{id}); err != nil {
		return fmt.Errorf("delete content: %w", err)
	}

	s.log.InfoContext(ctx, "content deleted", slog.String("content_id", id.String()))
	return nil
}
