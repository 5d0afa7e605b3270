package entry

import (
	"context"
	"fmt"
	"log/slog"
)

// Broadcast announces the entry to the messaging channel. The entry is sent
// as stored; a failed delivery reports as a broadcast error with no retry.
func (s *Service) Broadcast(ctx context.Context, rawID string) error {
	id, err := parseEntryID(rawID)
	if err != nil {
		return err
	}

	dto, err := s.entries.GetDTOByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get entry: %w", err)
	}

	if err := s.line.BroadcastEntry(ctx, *dto); err != nil {
		return fmt.Errorf("broadcast entry: %w", err)
	}

	s.log.InfoContext(ctx, "entry broadcast", slog.String("entry_id", id.String()))
	return nil
}
