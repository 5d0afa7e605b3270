package entry

import (
	"context"
	"fmt"

	"github.com/weeklycontents/backend/internal/domain"
)

// Read returns one entry with the headers of its contents.
func (s *Service) Read(ctx context.Context, rawID string) (*domain.EntryDTO, error) {
	id, err := parseEntryID(rawID)
	if err != nil {
		return nil, err
	}

	dto, err := s.entries.GetDTOByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get entry: %w", err)
	}
	return dto, nil
}
