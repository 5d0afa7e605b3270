package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/weeklycontents/backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedEntry inserts an entry row with the given status. Title and description
// are made unique per call. Returns the filled domain.Entry; its kind reflects
// the status column only (no contents exist yet, so reads infer NonContent).
func SeedEntry(t *testing.T, pool *pgxpool.Pool, status domain.EntryStatus) domain.Entry {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	imageURL := domain.URL("https://example.com/images/" + suffix + ".png")

	kind := domain.EntryKindDraft
	if status == domain.EntryStatusPublic {
		kind = domain.EntryKindPublished
	}

	entry := domain.Entry{
		ID:          uuid.New(),
		Kind:        kind,
		Title:       domain.ShortText("entry " + suffix),
		Description: domain.ShortText("description " + suffix),
		ImageURL:    &imageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO entry (entry_id, title, description, status, image_url, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		entry.ID, entry.Title.String(), entry.Description.String(), status.String(),
		entry.ImageURL.String(), entry.CreatedAt, entry.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedEntry insert entry: %v", err)
	}

	return entry
}

// SeedContent inserts a content row with two elements (text and link) owned by
// the given entry. Returns the filled domain.Content.
func SeedContent(t *testing.T, pool *pgxpool.Pool, entryID uuid.UUID) domain.Content {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)

	content := domain.Content{
		ID:       uuid.New(),
		EntryID:  entryID,
		Title:    domain.ShortText("content " + suffix),
		Author:   "author " + suffix,
		Category: domain.CategoryMusic,
		Elements: []domain.Element{
			{Type: domain.ElementTypeText, Value: "text " + suffix},
			{Type: domain.ElementTypeLink, Value: "https://example.com/" + suffix},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO content (content_id, entry_id, title, author, category, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		content.ID, content.EntryID, content.Title.String(), content.Author,
		content.Category.External(), content.CreatedAt, content.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedContent insert content: %v", err)
	}

	for i, el := range content.Elements {
		_, err := pool.Exec(ctx,
			`INSERT INTO element (element_id, content_id, value, type, order_num, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			uuid.New(), content.ID, el.Value, el.Type.String(), i, now, now,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedContent insert element[%d]: %v", i, err)
		}
	}

	return content
}
