// Package entry implements the Entry repository using PostgreSQL.
// Reads join entry with content headers and group the flat rows into
// aggregates; writes replace the entry row wholesale (delete + insert).
package entry

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/weeklycontents/backend/internal/adapter/postgres"
	"github.com/weeklycontents/backend/internal/domain"
)

// Repo provides entry persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
	txm  *postgres.TxManager
}

// New creates a new entry repository.
func New(pool *pgxpool.Pool, txm *postgres.TxManager) *Repo {
	return &Repo{pool: pool, txm: txm}
}

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const joinColumns = `
    e.entry_id, e.title, e.description, e.status, e.image_url, e.created_at, e.updated_at,
    c.content_id, c.title, c.author`

const getByIDSQL = `
SELECT` + joinColumns + `
FROM entry e
LEFT JOIN content c ON c.entry_id = e.entry_id
WHERE e.entry_id = $1
ORDER BY c.created_at`

const getDraftByIDSQL = `
SELECT` + joinColumns + `
FROM entry e
LEFT JOIN content c ON c.entry_id = e.entry_id
WHERE e.entry_id = $1 AND e.status = 'draft'
ORDER BY c.created_at`

const deleteSQL = `DELETE FROM entry WHERE entry_id = $1`

const insertSQL = `
INSERT INTO entry (entry_id, title, description, status, image_url, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

const deleteElementsByEntryIDsSQL = `
DELETE FROM element WHERE content_id IN (SELECT content_id FROM content WHERE entry_id = ANY($1::uuid[]))`

const deleteContentsByEntryIDsSQL = `DELETE FROM content WHERE entry_id = ANY($1::uuid[])`

const deleteEntriesByIDsSQL = `DELETE FROM entry WHERE entry_id = ANY($1::uuid[])`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Upsert replaces the entry row by id within one transaction. The foreign key
// from content is deferred, so re-inserting the same id keeps children valid.
func (r *Repo) Upsert(ctx context.Context, e domain.Entry) error {
	// mapError wraps the whole transaction result: deferred constraints only
	// violate at commit, inside RunInTx.
	err := r.txm.RunInTx(ctx, func(txCtx context.Context) error {
		querier := postgres.QuerierFromCtx(txCtx, r.pool)

		if _, err := querier.Exec(txCtx, deleteSQL, e.ID); err != nil {
			return err
		}

		var imageURL pgtype.Text
		if e.ImageURL != nil {
			imageURL = pgtype.Text{String: e.ImageURL.String(), Valid: true}
		}

		_, err := querier.Exec(txCtx, insertSQL,
			e.ID, e.Title.String(), e.Description.String(), e.Kind.Status().String(),
			imageURL, e.CreatedAt, e.UpdatedAt)
		return err
	})
	return mapError(err, "entry", e.ID)
}

// Delete removes the entries and everything they own, children first.
// An empty id list is a no-op.
func (r *Repo) Delete(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	err := r.txm.RunInTx(ctx, func(txCtx context.Context) error {
		querier := postgres.QuerierFromCtx(txCtx, r.pool)

		for _, stmt := range []string{deleteElementsByEntryIDsSQL, deleteContentsByEntryIDsSQL, deleteEntriesByIDsSQL} {
			if _, err := querier.Exec(txCtx, stmt, ids); err != nil {
				return err
			}
		}
		return nil
	})
	return mapError(err, "entry", ids[0])
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns the entry aggregate. The variant is inferred from the join
// shape: an entry without content rows is NonContent regardless of status.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Entry, error) {
	group, err := r.fetchOne(ctx, getByIDSQL, id)
	if err != nil {
		return nil, err
	}
	e := buildDomainEntry(*group)
	return &e, nil
}

// GetDraftByID returns the entry only when its persisted status is draft.
func (r *Repo) GetDraftByID(ctx context.Context, id uuid.UUID) (*domain.Entry, error) {
	group, err := r.fetchOne(ctx, getDraftByIDSQL, id)
	if err != nil {
		return nil, err
	}
	e := buildDomainEntry(*group)
	return &e, nil
}

// GetDTOByID returns the external representation including content headers.
func (r *Repo) GetDTOByID(ctx context.Context, id uuid.UUID) (*domain.EntryDTO, error) {
	group, err := r.fetchOne(ctx, getByIDSQL, id)
	if err != nil {
		return nil, err
	}
	dto := buildEntryDTO(*group)
	return &dto, nil
}

// Search returns entry DTOs, newest first, optionally filtered by status.
func (r *Repo) Search(ctx context.Context, filter domain.EntryFilter) ([]domain.EntryDTO, error) {
	statuses := validStatuses(filter.Statuses)

	qb := sq.Select(
		"e.entry_id", "e.title", "e.description", "e.status", "e.image_url", "e.created_at", "e.updated_at",
		"c.content_id", "c.title", "c.author",
	).
		From("entry e").
		LeftJoin("content c ON c.entry_id = e.entry_id").
		OrderBy("e.created_at DESC", "c.created_at ASC").
		PlaceholderFormat(sq.Dollar)

	if len(statuses) > 0 {
		qb = qb.Where(sq.Eq{"e.status": statuses})
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build entry search query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("search entries: %w", err)
	}
	defer rows.Close()

	joinRows, err := scanJoinRows(rows)
	if err != nil {
		return nil, fmt.Errorf("search entries: %w", err)
	}

	groups := groupJoinRows(joinRows)
	dtos := make([]domain.EntryDTO, 0, len(groups))
	for _, g := range groups {
		dtos = append(dtos, buildEntryDTO(g))
	}
	return dtos, nil
}

func (r *Repo) fetchOne(ctx context.Context, query string, id uuid.UUID) (*entryGroup, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, query, id)
	if err != nil {
		return nil, mapError(err, "entry", id)
	}
	defer rows.Close()

	joinRows, err := scanJoinRows(rows)
	if err != nil {
		return nil, mapError(err, "entry", id)
	}
	if len(joinRows) == 0 {
		return nil, mapError(pgx.ErrNoRows, "entry", id)
	}

	groups := groupJoinRows(joinRows)
	return &groups[0], nil
}

// ---------------------------------------------------------------------------
// Row scanning and grouping
// ---------------------------------------------------------------------------

// joinRow is one flat row of the entry-content LEFT JOIN. Content columns are
// NULL when the entry has no content.
type joinRow struct {
	entryID     uuid.UUID
	title       string
	description string
	status      string
	imageURL    pgtype.Text
	createdAt   time.Time
	updatedAt   time.Time

	contentID     pgtype.UUID
	contentTitle  pgtype.Text
	contentAuthor pgtype.Text
}

// entryGroup is one entry with the headers of its contents in join order.
type entryGroup struct {
	entryID     uuid.UUID
	title       string
	description string
	status      string
	imageURL    pgtype.Text
	createdAt   time.Time
	updatedAt   time.Time

	contents []domain.EntryContentDTO
}

func scanJoinRows(rows pgx.Rows) ([]joinRow, error) {
	var out []joinRow
	for rows.Next() {
		var row joinRow
		if err := rows.Scan(
			&row.entryID, &row.title, &row.description, &row.status, &row.imageURL,
			&row.createdAt, &row.updatedAt,
			&row.contentID, &row.contentTitle, &row.contentAuthor,
		); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// groupJoinRows collapses flat join rows into one group per entry, preserving
// both entry order and child order. An entry whose content columns are all
// NULL gets an empty content list.
func groupJoinRows(rows []joinRow) []entryGroup {
	var groups []entryGroup
	index := make(map[uuid.UUID]int)

	for _, row := range rows {
		i, seen := index[row.entryID]
		if !seen {
			groups = append(groups, entryGroup{
				entryID:     row.entryID,
				title:       row.title,
				description: row.description,
				status:      row.status,
				imageURL:    row.imageURL,
				createdAt:   row.createdAt,
				updatedAt:   row.updatedAt,
				contents:    []domain.EntryContentDTO{},
			})
			i = len(groups) - 1
			index[row.entryID] = i
		}

		if row.contentID.Valid {
			groups[i].contents = append(groups[i].contents, domain.EntryContentDTO{
				ContentID: uuid.UUID(row.contentID.Bytes).String(),
				Title:     row.contentTitle.String,
				Author:    row.contentAuthor.String,
			})
		}
	}
	return groups
}

// buildDomainEntry converts a grouped row set into the domain aggregate.
// A persisted image URL that no longer parses is read back as absent rather
// than failing the whole read.
func buildDomainEntry(g entryGroup) domain.Entry {
	kind := domain.EntryKindNonContent
	if len(g.contents) > 0 {
		if g.status == domain.EntryStatusPublic.String() {
			kind = domain.EntryKindPublished
		} else {
			kind = domain.EntryKindDraft
		}
	}

	return domain.Entry{
		ID:          g.entryID,
		Kind:        kind,
		Title:       domain.ShortText(g.title),
		Description: domain.ShortText(g.description),
		ImageURL:    imageURLOrNone(g.imageURL),
		CreatedAt:   g.createdAt,
		UpdatedAt:   g.updatedAt,
	}
}

func buildEntryDTO(g entryGroup) domain.EntryDTO {
	var imageURL *string
	if u := imageURLOrNone(g.imageURL); u != nil {
		s := u.String()
		imageURL = &s
	}

	return domain.EntryDTO{
		EntryID:     g.entryID.String(),
		Title:       g.title,
		Description: g.description,
		Status:      g.status,
		ImageURL:    imageURL,
		Contents:    g.contents,
		CreatedAt:   g.createdAt,
		UpdatedAt:   g.updatedAt,
	}
}

// validStatuses drops invalid status values and lowers the rest to their
// persisted form.
func validStatuses(in []domain.EntryStatus) []string {
	var out []string
	for _, s := range in {
		if s.IsValid() {
			out = append(out, s.String())
		}
	}
	return out
}

func imageURLOrNone(raw pgtype.Text) *domain.URL {
	if !raw.Valid {
		return nil
	}
	u, ferr := domain.ParseURL("imageUrl", raw.String)
	if ferr != nil {
		return nil
	}
	return &u
}
