package system

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/weeklycontents/backend/internal/domain"
)

// UploadFile stores the file in the object store and returns its public URL.
// Only png and jpeg uploads are accepted.
func (s *Service) UploadFile(ctx context.Context, contentType string, body io.Reader) (domain.URL, error) {
	url, err := s.storage.Upload(ctx, contentType, body)
	if err != nil {
		return "", fmt.Errorf("upload file: %w", err)
	}

	s.log.InfoContext(ctx, "file uploaded", slog.String("url", url.String()))
	return url, nil
}
