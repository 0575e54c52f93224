package models

import "time"

// BlogPost is a publicly readable article. Slug is unique and is the public
// lookup handle; every lookup by slug bumps ViewCount.
//
// Publish lifecycle: a post starts as a draft (IsPublished false,
// PublishedAt nil). The first transition to published stamps PublishedAt
// exactly once; unpublishing retains the stamp so re-publishing does not
// move the post in the public ordering.
type BlogPost struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	Slug       string `json:"slug"`
	Content    string `json:"content"`
	Excerpt    string `json:"excerpt,omitempty"`
	CoverImage string `json:"coverImage,omitempty"`
	CategoryID *int64 `json:"categoryId,omitempty"`
	AuthorID   int64  `json:"authorId"`

	// Tags holds a JSON-encoded array of tag strings.
	Tags string `json:"tags,omitempty"`

	// ViewCount increases by one on every read-by-slug, with no
	// per-visitor deduplication.
	ViewCount int64 `json:"viewCount"`

	IsPublished bool       `json:"isPublished"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// CreateBlogPostRequest is the admin payload for creating a post. When
// IsPublished is true the post is stamped as published at creation time.
type CreateBlogPostRequest struct {
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Content     string `json:"content"`
	Excerpt     string `json:"excerpt,omitempty"`
	CoverImage  string `json:"coverImage,omitempty"`
	CategoryID  *int64 `json:"categoryId,omitempty"`
	Tags        string `json:"tags,omitempty"`
	IsPublished bool   `json:"isPublished,omitempty"`
}

// BlogPostPatch is a partial update. Nil fields are left unchanged.
// The publish transition (IsPublished) is interpreted by the service layer,
// which decides whether PublishedAt must be stamped.
type BlogPostPatch struct {
	Title       *string    `json:"title,omitempty"`
	Slug        *string    `json:"slug,omitempty"`
	Content     *string    `json:"content,omitempty"`
	Excerpt     *string    `json:"excerpt,omitempty"`
	CoverImage  *string    `json:"coverImage,omitempty"`
	CategoryID  *int64     `json:"categoryId,omitempty"`
	Tags        *string    `json:"tags,omitempty"`
	IsPublished *bool      `json:"isPublished,omitempty"`
	PublishedAt *time.Time `json:"-"`
}

// UpdateBlogPostRequest couples a post id with its patch.
type UpdateBlogPostRequest struct {
	ID int64 `json:"id"`
	BlogPostPatch
}
