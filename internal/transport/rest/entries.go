package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/weeklycontents/backend/internal/domain"
)

type entryService interface {
	Write(ctx context.Context, form domain.EntryForm) (*domain.EntryDTO, error)
	Update(ctx context.Context, id string, form domain.EntryForm) (*domain.EntryDTO, error)
	Publish(ctx context.Context, id string) (*domain.EntryDTO, error)
	Broadcast(ctx context.Context, id string) error
	Read(ctx context.Context, id string) (*domain.EntryDTO, error)
	Search(ctx context.Context, filter domain.EntryFilter) ([]domain.EntryDTO, error)
	Delete(ctx context.Context, id string) error
}

// EntryHandler serves the entry endpoints.
type EntryHandler struct {
	entries entryService
	log     *slog.Logger
}

// NewEntryHandler creates an EntryHandler.
func NewEntryHandler(entries entryService, logger *slog.Logger) *EntryHandler {
	return &EntryHandler{entries: entries, log: logger.With("handler", "entries")}
}

// entryRequest is the JSON body for creating or updating an entry.
type entryRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

func (req entryRequest) form() domain.EntryForm {
	return domain.EntryForm{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	}
}

// Create handles POST /api/entries.
func (h *EntryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req entryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(r.Context(), h.log, w, domain.NewValidationError("body", "invalid JSON"))
		return
	}

	dto, err := h.entries.Write(r.Context(), req.form())
	if err != nil {
		writeError(r.Context(), h.log, w, err)
		return
	}
	writeJSON(w, http.StatusCreated, dto)
}

// Update handles PUT /api/entries/{id}.
func (h *EntryHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req entryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(r.Context(), h.log, w, domain.NewValidationError("body", "invalid JSON"))
		return
	}

	dto, err := h.entries.Update(r.Context(), r.PathValue("id"), req.form())
	if err != nil {
		writeError(r.Context(), h.log, w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto)
}

// Publish handles POST /api/entries/{id}/publish.
func (h *EntryHandler) Publish(w http.ResponseWriter, r *http.Request) {
	dto, err := h.entries.Publish(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(r.Context(), h.log, w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto)
}

// Broadcast handles POST /api/entries/{id}/broadcast.
func (h *EntryHandler) Broadcast(w http.ResponseWriter, r *http.Request) {
	if err := h.entries.Broadcast(r.Context(), r.PathValue("id")); err != nil {
		writeError(r.Context(), h.log, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Get handles GET /api/entries/{id}.
func (h *EntryHandler) Get(w http.ResponseWriter, r *http.Request) {
	dto, err := h.entries.Read(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(r.Context(), h.log, w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto)
}

// List handles GET /api/entries. Repeated status query parameters narrow the
// result; unknown values are ignored.
func (h *EntryHandler) List(w http.ResponseWriter, r *http.Request) {
	var filter domain.EntryFilter
	for _, s := range r.URL.Query()["status"] {
		filter.Statuses = append(filter.Statuses, domain.EntryStatus(s))
	}

	dtos, err := h.entries.Search(r.Context(), filter)
	if err != nil {
		writeError(r.Context(), h.log, w, err)
		return
	}
	writeJSON(w, http.StatusOK, dtos)
}

// Delete handles DELETE /api/entries/{id}.
func (h *EntryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.entries.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeError(r.Context(), h.log, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
