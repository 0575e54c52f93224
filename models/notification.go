package models

import "time"

// Notification types.
const (
	NotificationComment  = "comment"
	NotificationLike     = "like"
	NotificationDocument = "document"
	NotificationSystem   = "system"
)

// Notification is a derived record addressed to a user, created only by
// side-effect hooks after a successful comment or like. RelatedID points at
// the record the event concerns (currently always a blog post id).
type Notification struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Content   string    `json:"content,omitempty"`
	RelatedID *int64    `json:"relatedId,omitempty"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

// InsertNotification is the hook-side payload for creating a notification.
type InsertNotification struct {
	UserID    int64  `json:"userId"`
	Type      string `json:"type"`
	Title     string `json:"title"`
	Content   string `json:"content,omitempty"`
	RelatedID *int64 `json:"relatedId,omitempty"`
}
