package models

import "time"

// File records metadata for a blob kept in external object storage. The
// bytes themselves never live in the store; StorageKey and URL point at the
// blob service. DocumentID is a weak reference: deleting a document leaves
// it dangling.
type File struct {
	ID         int64     `json:"id"`
	Filename   string    `json:"filename"`
	StorageKey string    `json:"storageKey"`
	URL        string    `json:"url"`
	MimeType   string    `json:"mimeType,omitempty"`
	Size       int64     `json:"size,omitempty"`
	UploaderID int64     `json:"uploaderId"`
	DocumentID *int64    `json:"documentId,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// UploadFileRequest carries base64-encoded file content from the client.
type UploadFileRequest struct {
	Filename   string `json:"filename"`
	Content    string `json:"content"` // base64-encoded bytes
	MimeType   string `json:"mimeType"`
	DocumentID *int64 `json:"documentId,omitempty"`
}
