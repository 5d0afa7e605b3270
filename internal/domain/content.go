package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Element is a single typed value inside a content item. URL-bearing types
// are validated at the form boundary; the value itself is stored as a string.
type Element struct {
	Type  ElementType
	Value string
}

// Content is one item inside an entry, holding an ordered list of elements.
type Content struct {
	ID        uuid.UUID
	EntryID   uuid.UUID
	Title     ShortText
	Author    string
	Category  Category
	Elements  []Element
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ElementForm is the raw input for a single element.
type ElementForm struct {
	Type  string
	Value string
}

// ContentForm is the raw, unvalidated input for creating or updating content.
type ContentForm struct {
	EntryID  string
	Title    string
	Author   string
	Category string
	Elements []ElementForm
}

// ValidatedContentForm holds the fields of a ContentForm after validation.
type ValidatedContentForm struct {
	EntryID  uuid.UUID
	Title    ShortText
	Author   string
	Category Category
	Elements []Element
}

// ValidateContentForm checks the owning entry id, title, category, and every
// element in order, collecting all field failures into one aggregated error.
func ValidateContentForm(form ContentForm) (ValidatedContentForm, error) {
	var errs []FieldError

	entryID, ferr := ParseEntryID(form.EntryID)
	if ferr != nil {
		errs = append(errs, *ferr)
	}

	title, ferr := NewShortText("title", form.Title)
	if ferr != nil {
		errs = append(errs, *ferr)
	}

	category, ok := ParseCategory(form.Category)
	if !ok {
		errs = append(errs, FieldError{
			Field:   "category",
			Message: fmt.Sprintf("%q is not a valid category", form.Category),
		})
	}

	elements := make([]Element, 0, len(form.Elements))
	for i, el := range form.Elements {
		field := fmt.Sprintf("elements[%d]", i)

		typ := ElementType(el.Type)
		if !typ.IsValid() {
			errs = append(errs, FieldError{
				Field:   field,
				Message: fmt.Sprintf("%q is not a valid element type", el.Type),
			})
			continue
		}
		if typ.RequiresURL() {
			if _, ferr := ParseURL(field, el.Value); ferr != nil {
				errs = append(errs, *ferr)
				continue
			}
		}
		elements = append(elements, Element{Type: typ, Value: el.Value})
	}

	if len(errs) > 0 {
		return ValidatedContentForm{}, NewValidationErrors(errs)
	}
	return ValidatedContentForm{
		EntryID:  entryID,
		Title:    title,
		Author:   form.Author,
		Category: category,
		Elements: elements,
	}, nil
}

// NewContent creates a content item with a fresh id.
func NewContent(form ValidatedContentForm, now time.Time) Content {
	return Content{
		ID:        uuid.New(),
		EntryID:   form.EntryID,
		Title:     form.Title,
		Author:    form.Author,
		Category:  form.Category,
		Elements:  form.Elements,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// UpdateContent replaces every form-backed field wholesale, preserving id
// and createdAt. Elements are never patched in place.
func UpdateContent(c Content, form ValidatedContentForm, now time.Time) Content {
	c.EntryID = form.EntryID
	c.Title = form.Title
	c.Author = form.Author
	c.Category = form.Category
	c.Elements = form.Elements
	c.UpdatedAt = now
	return c
}
