package domain

import "github.com/google/uuid"

// EntryFilter contains filtering parameters for entry searches.
type EntryFilter struct {
	// Statuses restricts results to entries whose persisted status is in the
	// list. Empty means no status filter.
	Statuses []EntryStatus
}

// ContentFilter contains filtering parameters for content searches.
type ContentFilter struct {
	// EntryIDs restricts results to contents owned by the listed entries.
	// Empty means no owner filter.
	EntryIDs []uuid.UUID

	// Statuses restricts results to contents whose owning entry has one of
	// the listed statuses. Empty means no status filter.
	Statuses []EntryStatus
}
