package models

import "time"

// Like marks that a user liked a blog post. At most one Like exists per
// (PostID, UserID) pair; the invariant is upheld by the toggle operation,
// not by a stored constraint.
type Like struct {
	ID        int64     `json:"id"`
	PostID    int64     `json:"postId"`
	UserID    int64     `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}
