package content

import (
	"context"
	"fmt"

	"github.com/weeklycontents/backend/internal/domain"
)

// Read returns one content with its elements in stored order.
func (s *Service) Read(ctx context.Context, rawID string) (*domain.ContentDTO, error) {
	id, err := parseContentID(rawID)
	if err != nil {
		return nil, err
	}

	dto, err := s.contents.GetDTOByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get content: %w", err)
	}
	return dto, nil
}
