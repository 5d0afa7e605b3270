package entry

import (
	"context"
	"fmt"

	"github.com/weeklycontents/backend/internal/domain"
)

// Search lists entries newest first, optionally restricted by status.
func (s *Service) Search(ctx context.Context, filter domain.EntryFilter) ([]domain.EntryDTO, error) {
	dtos, err := s.entries.Search(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("search entries: %w", err)
	}
	return dtos, nil
}
