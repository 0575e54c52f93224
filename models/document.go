package models

import "time"

// Document formats.
const (
	FormatMarkdown = "markdown"
	FormatRichText = "richtext"
)

// Document is an authored work document. Format is either FormatMarkdown or
// FormatRichText. CategoryID is a weak reference and may be nil.
type Document struct {
	ID         int64      `json:"id"`
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	Format     string     `json:"format"`
	CategoryID *int64     `json:"categoryId,omitempty"`
	AuthorID   int64      `json:"authorId"`

	// Tags holds a JSON-encoded array of tag strings, kept opaque at this layer.
	Tags string `json:"tags,omitempty"`

	IsPublic  bool      `json:"isPublic"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateDocumentRequest is the payload for creating a document. AuthorID is
// always taken from the resolved caller, never from the client.
type CreateDocumentRequest struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	Format     string `json:"format,omitempty"`
	CategoryID *int64 `json:"categoryId,omitempty"`
	Tags       string `json:"tags,omitempty"`
	IsPublic   bool   `json:"isPublic,omitempty"`
}

// DocumentPatch is a partial update. Nil fields are left unchanged; the
// store refreshes UpdatedAt on any applied patch.
type DocumentPatch struct {
	Title      *string `json:"title,omitempty"`
	Content    *string `json:"content,omitempty"`
	Format     *string `json:"format,omitempty"`
	CategoryID *int64  `json:"categoryId,omitempty"`
	Tags       *string `json:"tags,omitempty"`
	IsPublic   *bool   `json:"isPublic,omitempty"`
}

// UpdateDocumentRequest couples a document id with its patch.
type UpdateDocumentRequest struct {
	ID int64 `json:"id"`
	DocumentPatch
}
