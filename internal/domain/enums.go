package domain

// EntryStatus is the persisted publication state of an entry.
type EntryStatus string

const (
	EntryStatusDraft  EntryStatus = "draft"
	EntryStatusPublic EntryStatus = "public"
)

func (s EntryStatus) String() string { return string(s) }

func (s EntryStatus) IsValid() bool {
	switch s {
	case EntryStatusDraft, EntryStatusPublic:
		return true
	}
	return false
}

// EntryKind distinguishes the lifecycle variant of an entry. NonContent means
// the entry exists but has no content attached yet; Draft and Published follow
// the persisted status once content exists.
type EntryKind string

const (
	EntryKindNonContent EntryKind = "NON_CONTENT"
	EntryKindDraft      EntryKind = "DRAFT"
	EntryKindPublished  EntryKind = "PUBLISHED"
)

func (k EntryKind) String() string { return string(k) }

func (k EntryKind) IsValid() bool {
	switch k {
	case EntryKindNonContent, EntryKindDraft, EntryKindPublished:
		return true
	}
	return false
}

// Status maps the kind back onto the two-value persisted status column.
func (k EntryKind) Status() EntryStatus {
	if k == EntryKindPublished {
		return EntryStatusPublic
	}
	return EntryStatusDraft
}

// Category classifies a content item. The internal representation is
// capitalized; the external (DTO, storage) representation is lowercase.
type Category string

const (
	CategoryMusic Category = "Music"
	CategoryMovie Category = "Movie"
	CategoryBook  Category = "Book"
	CategoryFood  Category = "Food"
	CategoryTv    Category = "Tv"
	CategoryIdol  Category = "Idol"
	CategoryEvent Category = "Event"
	CategoryRadio Category = "Radio"
	CategoryOther Category = "Other"
)

func (c Category) String() string { return string(c) }

func (c Category) IsValid() bool {
	switch c {
	case CategoryMusic, CategoryMovie, CategoryBook, CategoryFood, CategoryTv,
		CategoryIdol, CategoryEvent, CategoryRadio, CategoryOther:
		return true
	}
	return false
}

var categoryByExternal = map[string]Category{
	"music": CategoryMusic,
	"movie": CategoryMovie,
	"book":  CategoryBook,
	"food":  CategoryFood,
	"tv":    CategoryTv,
	"idol":  CategoryIdol,
	"event": CategoryEvent,
	"radio": CategoryRadio,
	"other": CategoryOther,
}

var categoryToExternal = map[Category]string{
	CategoryMusic: "music",
	CategoryMovie: "movie",
	CategoryBook:  "book",
	CategoryFood:  "food",
	CategoryTv:    "tv",
	CategoryIdol:  "idol",
	CategoryEvent: "event",
	CategoryRadio: "radio",
	CategoryOther: "other",
}

// ParseCategory converts the external lowercase representation.
func ParseCategory(external string) (Category, bool) {
	c, ok := categoryByExternal[external]
	return c, ok
}

// External returns the lowercase representation used in DTOs and storage.
func (c Category) External() string { return categoryToExternal[c] }

// ElementType identifies the kind of a single content element. The external
// and internal representations coincide.
type ElementType string

const (
	ElementTypeText    ElementType = "text"
	ElementTypeImage   ElementType = "image"
	ElementTypeLink    ElementType = "link"
	ElementTypeAudio   ElementType = "audio"
	ElementTypeVideo   ElementType = "video"
	ElementTypeYoutube ElementType = "youtube"
	ElementTypeSpotify ElementType = "spotify"
	ElementTypeX       ElementType = "x"
)

func (t ElementType) String() string { return string(t) }

func (t ElementType) IsValid() bool {
	switch t {
	case ElementTypeText, ElementTypeImage, ElementTypeLink, ElementTypeAudio,
		ElementTypeVideo, ElementTypeYoutube, ElementTypeSpotify, ElementTypeX:
		return true
	}
	return false
}

// RequiresURL reports whether values of this element type must be absolute
// URLs. Text is free-form; x holds a social-post reference as a plain string.
func (t ElementType) RequiresURL() bool {
	switch t {
	case ElementTypeText, ElementTypeX:
		return false
	}
	return true
}
