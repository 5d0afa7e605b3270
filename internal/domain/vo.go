package domain

import (
	"fmt"
	"net/url"
	"unicode/utf8"

	"github.com/google/uuid"
)

// ShortText is a validated string of 1 to 100 characters.
type ShortText string

func (s ShortText) String() string { return string(s) }

// NewShortText validates length bounds. The field label is used in the
// returned error so callers can aggregate failures per field.
func NewShortText(field, value string) (ShortText, *FieldError) {
	n := utf8.RuneCountInString(value)
	if n < 1 || n > 100 {
		return "", &FieldError{Field: field, Message: "must be between 1 and 100 characters"}
	}
	return ShortText(value), nil
}

// URL is a validated absolute URL.
type URL string

func (u URL) String() string { return string(u) }

// ParseURL validates that value is an absolute URL.
func ParseURL(field, value string) (URL, *FieldError) {
	parsed, err := url.Parse(value)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return "", &FieldError{Field: field, Message: "must be a valid absolute URL"}
	}
	return URL(value), nil
}

// ParseURLOrNone treats the empty string as a valid absent value.
func ParseURLOrNone(field, value string) (*URL, *FieldError) {
	if value == "" {
		return nil, nil
	}
	u, ferr := ParseURL(field, value)
	if ferr != nil {
		return nil, ferr
	}
	return &u, nil
}

// ParseEntryID validates the UUID v4 format of an entry identifier.
func ParseEntryID(value string) (uuid.UUID, *FieldError) {
	return parseID("entryId", value)
}

// ParseContentID validates the UUID v4 format of a content identifier.
func ParseContentID(value string) (uuid.UUID, *FieldError) {
	return parseID("contentId", value)
}

func parseID(field, value string) (uuid.UUID, *FieldError) {
	id, err := uuid.Parse(value)
	if err != nil || id.Version() != 4 {
		return uuid.Nil, &FieldError{Field: field, Message: fmt.Sprintf("%q is not a valid id", value)}
	}
	return id, nil
}
