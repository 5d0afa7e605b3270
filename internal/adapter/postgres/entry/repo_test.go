package entry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weeklycontents/backend/internal/adapter/postgres"
	"github.com/weeklycontents/backend/internal/adapter/postgres/entry"
	"github.com/weeklycontents/backend/internal/adapter/postgres/testhelper"
	"github.com/weeklycontents/backend/internal/domain"
)

func newRepo(t *testing.T) (*entry.Repo, *pgxpool.Pool) {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	return entry.New(pool, postgres.NewTxManager(pool)), pool
}

func makeEntry(kind domain.EntryKind) domain.Entry {
	now := time.Now().UTC().Truncate(time.Microsecond)
	imageURL := domain.URL("https://example.com/cover-" + uuid.New().String()[:8] + ".png")
	return domain.Entry{
		ID:          uuid.New(),
		Kind:        kind,
		Title:       domain.ShortText("weekly " + uuid.New().String()[:8]),
		Description: domain.ShortText("picks of the week"),
		ImageURL:    &imageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestRepo_Upsert_AndGetByID(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()

	e := makeEntry(domain.EntryKindNonContent)
	require.NoError(t, repo.Upsert(ctx, e))

	got, err := repo.GetByID(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, e.ID, got.ID)
	assert.Equal(t, domain.EntryKindNonContent, got.Kind)
	assert.Equal(t, e.Title, got.Title)
	assert.Equal(t, e.Description, got.Description)
	require.NotNil(t, got.ImageURL)
	assert.Equal(t, *e.ImageURL, *got.ImageURL)
	assert.True(t, got.CreatedAt.Equal(e.CreatedAt))
	assert.True(t, got.UpdatedAt.Equal(e.UpdatedAt))
}

func TestRepo_Upsert_ReplacesExistingRow(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	e := makeEntry(domain.EntryKindNonContent)
	require.NoError(t, repo.Upsert(ctx, e))

	e.Title = domain.ShortText("replaced title")
	e.ImageURL = nil
	e.UpdatedAt = e.UpdatedAt.Add(time.Hour)
	require.NoError(t, repo.Upsert(ctx, e))

	got, err := repo.GetByID(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ShortText("replaced title"), got.Title)
	assert.Nil(t, got.ImageURL)

	var count int
	require.NoError(t, pool.QueryRow(ctx, `SELECT count(*) FROM entry WHERE entry_id = $1`, e.ID).Scan(&count))
	assert.Equal(t, 1, count, "delete+insert must leave exactly one row")
}

func TestRepo_Upsert_KeepsContentsAlive(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	seeded := testhelper.SeedEntry(t, pool, domain.EntryStatusDraft)
	testhelper.SeedContent(t, pool, seeded.ID)

	// Replacing the entry row must not orphan or drop its contents.
	seeded.Title = domain.ShortText("still has content")
	require.NoError(t, repo.Upsert(ctx, seeded))

	got, err := repo.GetByID(ctx, seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.EntryKindDraft, got.Kind)
}

func TestRepo_GetByID_VariantFromJoinShape(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	// Draft status without contents reads as NonContent.
	bare := testhelper.SeedEntry(t, pool, domain.EntryStatusDraft)
	got, err := repo.GetByID(ctx, bare.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.EntryKindNonContent, got.Kind)

	// The same entry with a content row reads as Draft.
	testhelper.SeedContent(t, pool, bare.ID)
	got, err = repo.GetByID(ctx, bare.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.EntryKindDraft, got.Kind)

	// Public status with contents reads as Published.
	published := testhelper.SeedEntry(t, pool, domain.EntryStatusPublic)
	testhelper.SeedContent(t, pool, published.ID)
	got, err = repo.GetByID(ctx, published.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.EntryKindPublished, got.Kind)
}

func TestRepo_GetByID_NotFound(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)

	_, err := repo.GetByID(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound), "expected ErrNotFound, got: %v", err)
}

func TestRepo_GetByID_LenientStoredImageURL(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	id := uuid.New()
	now := time.Now().UTC().Truncate(time.Microsecond)
	_, err := pool.Exec(ctx,
		`INSERT INTO entry (entry_id, title, description, status, image_url, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		id, "t", "d", "draft", "garbage url", now, now,
	)
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err, "a malformed stored image URL must not fail the read")
	assert.Nil(t, got.ImageURL)
}

func TestRepo_GetDraftByID(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	draft := testhelper.SeedEntry(t, pool, domain.EntryStatusDraft)
	testhelper.SeedContent(t, pool, draft.ID)

	got, err := repo.GetDraftByID(ctx, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.EntryKindDraft, got.Kind)

	published := testhelper.SeedEntry(t, pool, domain.EntryStatusPublic)
	_, err = repo.GetDraftByID(ctx, published.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound), "published entry is not a draft: %v", err)
}

func TestRepo_GetDTOByID(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	e := testhelper.SeedEntry(t, pool, domain.EntryStatusDraft)
	c1 := testhelper.SeedContent(t, pool, e.ID)
	c2 := testhelper.SeedContent(t, pool, e.ID)

	dto, err := repo.GetDTOByID(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, e.ID.String(), dto.EntryID)
	assert.Equal(t, "draft", dto.Status)
	require.Len(t, dto.Contents, 2)
	assert.Equal(t, c1.ID.String(), dto.Contents[0].ContentID, "contents ordered by creation")
	assert.Equal(t, c2.ID.String(), dto.Contents[1].ContentID)
	assert.Equal(t, c1.Title.String(), dto.Contents[0].Title)
	assert.Equal(t, c1.Author, dto.Contents[0].Author)
}

func TestRepo_GetDTOByID_EmptyContents(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)

	e := testhelper.SeedEntry(t, pool, domain.EntryStatusDraft)

	dto, err := repo.GetDTOByID(context.Background(), e.ID)
	require.NoError(t, err)
	assert.NotNil(t, dto.Contents, "should return empty slice, not nil")
	assert.Empty(t, dto.Contents)
}

func TestRepo_Search_StatusFilter(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	draft := testhelper.SeedEntry(t, pool, domain.EntryStatusDraft)
	published := testhelper.SeedEntry(t, pool, domain.EntryStatusPublic)

	got, err := repo.Search(ctx, domain.EntryFilter{Statuses: []domain.EntryStatus{domain.EntryStatusPublic}})
	require.NoError(t, err)

	ids := make(map[string]bool)
	for _, dto := range got {
		assert.Equal(t, "public", dto.Status)
		ids[dto.EntryID] = true
	}
	assert.True(t, ids[published.ID.String()], "published entry must be found")
	assert.False(t, ids[draft.ID.String()], "draft entry must be filtered out")
}

func TestRepo_Search_NewestFirst(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	older := testhelper.SeedEntry(t, pool, domain.EntryStatusDraft)
	time.Sleep(10 * time.Millisecond)
	newer := testhelper.SeedEntry(t, pool, domain.EntryStatusDraft)

	got, err := repo.Search(ctx, domain.EntryFilter{})
	require.NoError(t, err)

	olderIdx, newerIdx := -1, -1
	for i, dto := range got {
		switch dto.EntryID {
		case older.ID.String():
			olderIdx = i
		case newer.ID.String():
			newerIdx = i
		}
	}
	require.NotEqual(t, -1, olderIdx)
	require.NotEqual(t, -1, newerIdx)
	assert.Less(t, newerIdx, olderIdx, "newer entry must come first")
}

func TestRepo_Delete(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	e := testhelper.SeedEntry(t, pool, domain.EntryStatusDraft)
	c := testhelper.SeedContent(t, pool, e.ID)

	require.NoError(t, repo.Delete(ctx, []uuid.UUID{e.ID}))

	_, err := repo.GetByID(ctx, e.ID)
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	var elements int
	require.NoError(t, pool.QueryRow(ctx, `SELECT count(*) FROM element WHERE content_id = $1`, c.ID).Scan(&elements))
	assert.Zero(t, elements, "elements of owned contents must be deleted")
}

func TestRepo_Delete_EmptyIsNoop(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)

	require.NoError(t, repo.Delete(context.Background(), nil))
}
