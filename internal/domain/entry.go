package domain

import (
	"time"

	"github.com/google/uuid"
)

// Entry is a digest post aggregating zero or more content items.
type Entry struct {
	ID          uuid.UUID
	Kind        EntryKind
	Title       ShortText
	Description ShortText
	ImageURL    *URL
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// EntryForm is the raw, unvalidated input for creating or updating an entry.
type EntryForm struct {
	Title       string
	Description string
	ImageURL    string
}

// ValidatedEntryForm holds the fields of an EntryForm after validation.
type ValidatedEntryForm struct {
	Title       ShortText
	Description ShortText
	ImageURL    *URL
}

// ValidateEntryForm checks title, description, and the optional image URL,
// collecting every field failure into one aggregated error.
func ValidateEntryForm(form EntryForm) (ValidatedEntryForm, error) {
	var errs []FieldError

	title, ferr := NewShortText("title", form.Title)
	if ferr != nil {
		errs = append(errs, *ferr)
	}

	description, ferr := NewShortText("description", form.Description)
	if ferr != nil {
		errs = append(errs, *ferr)
	}

	imageURL, ferr := ParseURLOrNone("imageUrl", form.ImageURL)
	if ferr != nil {
		errs = append(errs, *ferr)
	}

	if len(errs) > 0 {
		return ValidatedEntryForm{}, NewValidationErrors(errs)
	}
	return ValidatedEntryForm{Title: title, Description: description, ImageURL: imageURL}, nil
}

// NewEntry creates a fresh entry with no content attached.
func NewEntry(form ValidatedEntryForm, now time.Time) Entry {
	return Entry{
		ID:          uuid.New(),
		Kind:        EntryKindNonContent,
		Title:       form.Title,
		Description: form.Description,
		ImageURL:    form.ImageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// UpdateEntry overwrites the form fields, preserving kind, id, and createdAt.
func UpdateEntry(e Entry, form ValidatedEntryForm, now time.Time) Entry {
	e.Title = form.Title
	e.Description = form.Description
	e.ImageURL = form.ImageURL
	e.UpdatedAt = now
	return e
}

// PublishEntry transitions a draft to published. The caller is responsible
// for supplying a draft entry; everything except kind and updatedAt is
// carried over unchanged.
func PublishEntry(e Entry, now time.Time) Entry {
	e.Kind = EntryKindPublished
	e.UpdatedAt = now
	return e
}
