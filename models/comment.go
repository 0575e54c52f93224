package models

import "time"

// Comment is a reader comment on a blog post. ParentID links a reply to its
// parent comment by id only; comments stay independently addressable and
// deletable regardless of reply structure.
type Comment struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	PostID    int64     `json:"postId"`
	AuthorID  int64     `json:"authorId"`
	ParentID  *int64    `json:"parentId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateCommentRequest is the payload for commenting on a post.
type CreateCommentRequest struct {
	PostID   int64  `json:"postId"`
	Content  string `json:"content"`
	ParentID *int64 `json:"parentId,omitempty"`
}
