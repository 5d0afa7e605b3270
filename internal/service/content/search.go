package content

import (
	"context"
	"fmt"

	"github.com/weeklycontents/backend/internal/domain"
)

// Search lists contents newest first, optionally restricted by owning entry
// and owning-entry status.
func (s *Service) Search(ctx context.Context, filter domain.ContentFilter) ([]domain.ContentDTO, error) {
	dtos, err := s.contents.Search(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("search contents: %w", err)
	}
	return dtos, nil
}
