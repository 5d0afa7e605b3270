package entry

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// Delete removes the entry together with its contents and their elements.
func (s *Service) Delete(ctx context.Context, rawID string) error {
	id, err := parseEntryID(rawID)
	if err != nil {
		return err
	}

	if err := s.entries.Delete(ctx, []uuid.UUID{id}); err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}

	s.log.InfoContext(ctx, "entry deleted", slog.String("entry_id", id.String()))
	return nil
}
