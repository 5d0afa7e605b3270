// Package line sends broadcast messages through the LINE Messaging API.
package line

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/weeklycontents/backend/internal/domain"
)

const broadcastPath = "/v2/bot/message/broadcast"

// Broadcaster pushes an entry announcement to every follower of the channel.
type Broadcaster struct {
	apiBaseURL   string
	linkBaseURL  string
	channelToken string
	httpClient   *http.Client
	log          *slog.Logger
}

func NewBroadcaster(apiBaseURL, linkBaseURL, channelToken string, logger *slog.Logger) *Broadcaster {
	return &Broadcaster{
		apiBaseURL:   strings.TrimRight(apiBaseURL, "/"),
		linkBaseURL:  strings.TrimRight(linkBaseURL, "/"),
		channelToken: channelToken,
		httpClient:   &http.Client{Timeout: 10 * time.Second},
		log:          logger.With("adapter", "line"),
	}
}

type textMessage struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type broadcastRequest struct {
	Messages []textMessage `json:"messages"`
}

// BroadcastEntry formats the entry announcement and posts it to the channel.
// Any transport failure or non-2xx response wraps domain.ErrBroadcast; there
// is no retry.
func (b *Broadcaster) BroadcastEntry(ctx context.Context, entry domain.EntryDTO) error {
	message := buildMessage(entry, b.linkBaseURL)

	body, err := json.Marshal(broadcastRequest{
		Messages: []textMessage{{Type: "text", Text: message}},
	})
	if err != nil {
		return fmt.Errorf("line: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.apiBaseURL+broadcastPath, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("line: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+b.channelToken)

	b.log.DebugContext(ctx, "line broadcast request", slog.String("entry_id", entry.EntryID))

	resp, err := b.httpClient.Do(req)
	if err != nil {
		b.log.ErrorContext(ctx, "line broadcast failed", slog.String("error", err.Error()))
		return fmt.Errorf("line: request failed: %v: %w", err, domain.ErrBroadcast)
	}
	defer func() {
		// Drain so the keep-alive connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b.log.ErrorContext(ctx, "line broadcast rejected", slog.Int("status", resp.StatusCode))
		return fmt.Errorf("line: unexpected status %d: %w", resp.StatusCode, domain.ErrBroadcast)
	}

	b.log.InfoContext(ctx, "line broadcast sent", slog.String("entry_id", entry.EntryID))
	return nil
}

// buildMessage renders the announcement text: the entry title, an outline of
// its content titles, and a deep link carrying the shortened entry id.
func buildMessage(entry domain.EntryDTO, linkBaseURL string) string {
	var sb strings.Builder
	sb.WriteString(entry.Title)
	sb.WriteString(" has been updated!\n\n-- Outline --\n")
	for _, c := range entry.Contents {
		sb.WriteString(c.Title)
		sb.WriteString("\n")
	}
	sb.WriteString("\n-- URL --\n")
	sb.WriteString(linkBaseURL)
	sb.WriteString("/wc/")
	sb.WriteString(shortID(entry.EntryID))
	return sb.String()
}

// shortID compacts a UUID to its 22-character base64url form for the deep
// link. A value that is not a UUID is passed through unchanged.
func shortID(id string) string {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return id
	}
	return base64.RawURLEncoding.EncodeToString(parsed[:])
}

// MockBroadcaster logs the rendered message instead of calling the API.
// Used in local development when no channel token is configured.
type MockBroadcaster struct {
	linkBaseURL string
	log         *slog.Logger
}

func NewMockBroadcaster(linkBaseURL string, logger *slog.Logger) *MockBroadcaster {
	return &MockBroadcaster{
		linkBaseURL: strings.TrimRight(linkBaseURL, "/"),
		log:         logger.With("adapter", "line_mock"),
	}
}

func (b *MockBroadcaster) BroadcastEntry(ctx context.Context, entry domain.EntryDTO) error {
	b.log.InfoContext(ctx, "mock broadcast", slog.String("message", buildMessage(entry, b.linkBaseURL)))
	return nil
}
