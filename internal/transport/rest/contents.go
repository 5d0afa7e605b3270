package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/weeklycontents/backend/internal/domain"
)

type contentService interface {
	Write(ctx context.Context, form domain.ContentForm) (*domain.ContentDTO, error)
	Update(ctx context.Context, id string, form domain.ContentForm) (*domain.ContentDTO, error)
	Delete(ctx context.Context, id string) error
	Read(ctx context.Context, id string) (*domain.ContentDTO, error)
	Search(ctx context.Context, filter domain.ContentFilter) ([]domain.ContentDTO, error)
}

// ContentHandler serves the content endpoints.
type ContentHandler struct {
	contents contentService
	log      *slog.Logger
}

// NewContentHandler creates a ContentHandler.
func NewContentHandler(contents contentService, logger *slog.Logger) *ContentHandler {
	return &ContentHandler{contents: contents, log: logger.With("handler", "contents")}
}

// contentRequest is the JSON body for creating or updating a content.
type contentRequest struct {
	EntryID  string           `json:"entryId"`
	Title    string           `json:"title"`
	Author   string           `json:"author"`
	Category string           `json:"category"`
	Elements []elementRequest `json:"elements"`
}

type elementRequest struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

func (req contentRequest) form() domain.ContentForm {
	elements := make([]domain.ElementForm, 0, len(req.Elements))
	for _, el := range req.Elements {
		elements = append(elements, domain.ElementForm{Type: el.Type, Value: el.Value})
	}
	return domain.ContentForm{
		EntryID:  req.EntryID,
		Title:    req.Title,
		Author:   req.Author,
		Category: req.Category,
		Elements: elements,
	}
}

// Create handles POST /api/contents.
func (h *ContentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req contentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(r.Context(), h.log, w, domain.NewValidationError("body", "invalid JSON"))
		return
	}

	dto, err := h.contents.Write(r.Context(), req.form())
	if err != nil {
		writeError(r.Context(), h.log, w, err)
		return
	}
	writeJSON(w, http.StatusCreated, dto)
}

// Update handles PUT /api/contents/{id}.
func (h *ContentHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req contentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(r.Context(), h.log, w, domain.NewValidationError("body", "invalid JSON"))
		return
	}

	dto, err := h.contents.Update(r.Context(), r.PathValue("id"), req.form())
	if err != nil {
		writeError(r.Context(), h.log, w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto)
}

// Delete handles DELETE /api/contents/{id}.
func (h *ContentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.contents.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeError(r.Context(), h.log, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Get handles GET /api/contents/{id}.
func (h *ContentHandler) Get(w http.ResponseWriter, r *http.Request) {
	dto, err := h.contents.Read(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(r.Context(), h.log, w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto)
}

// List handles GET /api/contents. Supported query parameters: entryId
// (repeatable, must be valid ids) and status (repeatable, unknown values
// ignored).
func (h *ContentHandler) List(w http.ResponseWriter, r *http.Request) {
	var filter domain.ContentFilter
	for _, raw := range r.URL.Query()["entryId"] {
		id, ferr := domain.ParseEntryID(raw)
		if ferr != nil {
			writeError(r.Context(), h.log, w, domain.NewValidationError(ferr.Field, ferr.Message))
			return
		}
		filter.EntryIDs = append(filter.EntryIDs, id)
	}
	for _, s := range r.URL.Query()["status"] {
		filter.Statuses = append(filter.Statuses, domain.EntryStatus(s))
	}

	dtos, err := h.contents.Search(r.Context(), filter)
	if err != nil {
		writeError(r.Context(), h.log, w, err)
		return
	}
	writeJSON(w, http.StatusOK, dtos)
}
