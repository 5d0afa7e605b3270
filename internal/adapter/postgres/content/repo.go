// Package content implements the Content repository using PostgreSQL.
// Reads join content with its elements ordered by order_num and group the
// flat rows into aggregates; writes replace the content and every element
// wholesale (delete + insert) so no stale children survive.
package content

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

// Repo provides content persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
	txm  *postgres.TxManager
}

// New creates a new content repository.
func New(pool *pgxpool.Pool, txm *postgres.TxManager) *Repo {
	return &Repo{pool: pool, txm: txm}
}

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const getByIDSQL = `
SELECT
    c.content_id, c.entry_id, c.title, c.author, c.category, c.created_at, c.updated_at,
    el.type, el.value
FROM content c
LEFT JOIN element el ON el.content_id = c.content_id
WHERE c.content_id = $1
ORDER BY el.order_num`

const deleteElementsSQL = `DELETE FROM element WHERE content_id = $1`

const deleteContentSQL = `DELETE FROM content WHERE content_id = $1`

const insertContentSQL = `
INSERT INTO content (content_id, entry_id, title, author, category, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

const insertElementSQL = `
INSERT INTO element (element_id, content_id, value, type, order_num, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

const deleteElementsByIDsSQL = `DELETE FROM element WHERE content_id = ANY($1::uuid[])`

const deleteContentsByIDsSQL = `DELETE FROM content WHERE content_id = ANY($1::uuid[])`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Upsert replaces the content row and all its elements in one transaction.
// Elements get fresh ids and order_num reassigned 0..n-1 from list order;
// the old element rows never survive a save.
func (r *Repo) Upsert(ctx context.Context, c domain.Content) error {
	// mapError wraps the whole transaction result: the foreign keys are
	// deferred, so a dangling entry_id only violates at commit.
	err := r.txm.RunInTx(ctx, func(txCtx context.Context) error {
		querier := postgres.QuerierFromCtx(txCtx, r.pool)

		if _, err := querier.Exec(txCtx, deleteElementsSQL, c.ID); err != nil {
			return err
		}
		if _, err := querier.Exec(txCtx, deleteContentSQL, c.ID); err != nil {
			return err
		}

		_, err := querier.Exec(txCtx, insertContentSQL,
			c.ID, c.EntryID, c.Title.String(), c.Author, c.Category.External(),
			c.CreatedAt, c.UpdatedAt)
		if err != nil {
			return err
		}

		for i, el := range c.Elements {
			_, err := querier.Exec(txCtx, insertElementSQL,
				uuid.New(), c.ID, el.Value, el.Type.String(), i, c.UpdatedAt, c.UpdatedAt)
			if err != nil {
				return err
			}
		}
		return nil
	})
	return mapError(err, "content", c.ID)
}

// Delete removes the contents and their elements, children first.
// An empty id list is a no-op.
func (r *Repo) Delete(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	err := r.txm.RunInTx(ctx, func(txCtx context.Context) error {
		querier := postgres.QuerierFromCtx(txCtx, r.pool)

		if _, err := querier.Exec(txCtx, deleteElementsByIDsSQL, ids); err != nil {
			return err
		}
		if _, err := querier.Exec(txCtx, deleteContentsByIDsSQL, ids); err != nil {
			return err
		}
		return nil
	})
	return mapError(err, "content", ids[0])
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns the content aggregate with its elements in stored order.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Content, error) {
	group, err := r.fetchOne(ctx, id)
	if err != nil {
		return nil, err
	}

	c, err := buildDomainContent(*group)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// GetDTOByID returns the external representation of the content aggregate.
func (r *Repo) GetDTOByID(ctx context.Context, id uuid.UUID) (*domain.ContentDTO, error) {
	group, err := r.fetchOne(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := buildContentDTO(*group)
	return &dto, nil
}

// Search returns content DTOs, newest first, optionally filtered by owning
// entry ids and owning-entry status.
func (r *Repo) Search(ctx context.Context, filter domain.ContentFilter) ([]domain.ContentDTO, error) {
	statuses := validStatuses(filter.Statuses)

	qb := sq.Select(
		"c.content_id", "c.entry_id", "c.title", "c.author", "c.category", "c.created_at", "c.updated_at",
		"el.type", "el.value",
	).
		From("content c").
		Join("entry e ON e.entry_id = c.entry_id").
		LeftJoin("element el ON el.content_id = c.content_id").
		OrderBy("c.created_at DESC", "el.order_num ASC").
		PlaceholderFormat(sq.Dollar)

	if len(filter.EntryIDs) > 0 {
		qb = qb.Where(sq.Eq{"c.entry_id": filter.EntryIDs})
	}
	if len(statuses) > 0 {
		qb = qb.Where(sq.Eq{"e.status": statuses})
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build content search query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("search contents: %w", err)
	}
	defer rows.Close()

	joinRows, err := scanJoinRows(rows)
	if err != nil {
		return nil, fmt.Errorf("search contents: %w", err)
	}

	groups := groupJoinRows(joinRows)
	dtos := make([]domain.ContentDTO, 0, len(groups))
	for _, g := range groups {
		dtos = append(dtos, buildContentDTO(g))
	}
	return dtos, nil
}

func (r *Repo) fetchOne(ctx context.Context, id uuid.UUID) (*contentGroup, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, getByIDSQL, id)
	if err != nil {
		return nil, mapError(err, "content", id)
	}
	defer rows.Close()

	joinRows, err := scanJoinRows(rows)
	if err != nil {
		return nil, mapError(err, "content", id)
	}
	if len(joinRows) == 0 {
		return nil, mapError(pgx.ErrNoRows, "content", id)
	}

	groups := groupJoinRows(joinRows)
	return &groups[0], nil
}

// ---------------------------------------------------------------------------
// Row scanning and grouping
// ---------------------------------------------------------------------------

// joinRow is one flat row of the content-element LEFT JOIN. Element columns
// are NULL when the content has no elements.
type joinRow struct {
	contentID uuid.UUID
	entryID   uuid.UUID
	title     string
	author    string
	category  string
	createdAt time.Time
	updatedAt time.Time

	elementType  pgtype.Text
	elementValue pgtype.Text
}

// contentGroup is one content with its elements in order_num order.
type contentGroup struct {
	contentID uuid.UUID
	entryID   uuid.UUID
	title     string
	author    string
	category  string
	createdAt time.Time
	updatedAt time.Time

	elements []domain.ElementDTO
}

func scanJoinRows(rows pgx.Rows) ([]joinRow, error) {
	var out []joinRow
	for rows.Next() {
		var row joinRow
		if err := rows.Scan(
			&row.contentID, &row.entryID, &row.title, &row.author, &row.category,
			&row.createdAt, &row.updatedAt,
			&row.elementType, &row.elementValue,
		); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// groupJoinRows collapses flat join rows into one group per content,
// preserving both content order and element order. A content whose element
// columns are all NULL gets an empty element list.
func groupJoinRows(rows []joinRow) []contentGroup {
	var groups []contentGroup
	index := make(map[uuid.UUID]int)

	for _, row := range rows {
		i, seen := index[row.contentID]
		if !seen {
			groups = append(groups, contentGroup{
				contentID: row.contentID,
				entryID:   row.entryID,
				title:     row.title,
				author:    row.author,
				category:  row.category,
				createdAt: row.createdAt,
				updatedAt: row.updatedAt,
				elements:  []domain.ElementDTO{},
			})
			i = len(groups) - 1
			index[row.contentID] = i
		}

		if row.elementType.Valid {
			groups[i].elements = append(groups[i].elements, domain.ElementDTO{
				Type:  row.elementType.String,
				Value: row.elementValue.String,
			})
		}
	}
	return groups
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

// buildDomainContent converts a grouped row set into the domain aggregate.
// A persisted category or element type outside the closed enums is a
// conversion failure, not a store failure.
func buildDomainContent(g contentGroup) (*domain.Content, error) {
	category, ok := domain.ParseCategory(g.category)
	if !ok {
		return nil, fmt.Errorf("content %s: stored category %q: %w", g.contentID, g.category, domain.ErrValidation)
	}

	elements := make([]domain.Element, 0, len(g.elements))
	for _, el := range g.elements {
		typ := domain.ElementType(el.Type)
		if !typ.IsValid() {
			return nil, fmt.Errorf("content %s: stored element type %q: %w", g.contentID, el.Type, domain.ErrValidation)
		}
		elements = append(elements, domain.Element{Type: typ, Value: el.Value})
	}

	return &domain.Content{
		ID:        g.contentID,
		EntryID:   g.entryID,
		Title:     domain.ShortText(g.title),
		Author:    g.author,
		Category:  category,
		Elements:  elements,
		CreatedAt: g.createdAt,
		UpdatedAt: g.updatedAt,
	}, nil
}

func buildContentDTO(g contentGroup) domain.ContentDTO {
	return domain.ContentDTO{
		ContentID: g.contentID.String(),
		EntryID:   g.entryID.String(),
		Title:     g.title,
		Author:    g.author,
		Category:  g.category,
		Elements:  g.elements,
		CreatedAt: g.createdAt,
		UpdatedAt: g.updatedAt,
	}
}
