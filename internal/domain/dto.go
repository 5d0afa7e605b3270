package domain

import "time"

// DTO shapes used at system boundaries (API responses, broadcast messages).
// They carry the external representations: lowercase categories, plain
// strings for ids and URLs.

type EntryContentDTO struct {
	ContentID string `json:"contentId"`
	Title     string `json:"title"`
	Author    string `json:"author"`
}

type EntryDTO struct {
	EntryID     string            `json:"entryId"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Status      string            `json:"status"`
	ImageURL    *string           `json:"imageUrl"`
	Contents    []EntryContentDTO `json:"contents"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

type ElementDTO struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type ContentDTO struct {
	ContentID string       `json:"contentId"`
	EntryID   string       `json:"entryId"`
	Title     string       `json:"title"`
	Author    string       `json:"author"`
	Category  string       `json:"category"`
	Elements  []ElementDTO `json:"elements"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

// ToDTO converts a content aggregate to its external shape.
func (c Content) ToDTO() ContentDTO {
	elements := make([]ElementDTO, 0, len(c.Elements))
	for _, el := range c.Elements {
		elements = append(elements, ElementDTO{Type: el.Type.String(), Value: el.Value})
	}
	return ContentDTO{
		ContentID: c.ID.String(),
		EntryID:   c.EntryID.String(),
		Title:     c.Title.String(),
		Author:    c.Author,
		Category:  c.Category.External(),
		Elements:  elements,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ToDTO converts an entry and the headers of its contents to the external
// shape.
func (e Entry) ToDTO(contents []EntryContentDTO) EntryDTO {
	var imageURL *string
	if e.ImageURL != nil {
		s := e.ImageURL.String()
		imageURL = &s
	}
	if contents == nil {
		contents = []EntryContentDTO{}
	}
	return EntryDTO{
		EntryID:     e.ID.String(),
		Title:       e.Title.String(),
		Description: e.Description.String(),
		Status:      e.Kind.Status().String(),
		ImageURL:    imageURL,
		Contents:    contents,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
