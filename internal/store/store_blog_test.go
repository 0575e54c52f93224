package store

import (
	"context"
	"testing"
	"time"

	"github.com/dkurbatov/lifehub/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCreatePost(t *testing.T, s *Store, slug string, published bool, publishedAt *time.Time) int64 {
	t.Helper()
	id, err := s.CreateBlogPost(context.Background(), 1, models.CreateBlogPostRequest{
		Title:       "post " + slug,
		Slug:        slug,
		Content:     "content of " + slug,
		IsPublished: published,
	}, publishedAt)
	require.NoError(t, err)
	return id
}

// ── Slug uniqueness ──────────────────────────────────────────────────────────

func TestCreateBlogPost_SlugCollision(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	mustCreatePost(t, s, "hello-world", true, nil)

	_, err := s.CreateBlogPost(ctx, 1, models.CreateBlogPostRequest{Title: "dup", Slug: "hello-world"}, nil)
	assert.ErrorIs(t, err, ErrSlugAlreadyTaken)
}

func TestUpdateBlogPost_SlugReindex(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id := mustCreatePost(t, s, "old-slug", true, nil)
	mustCreatePost(t, s, "taken", true, nil)

	// A collision with another post leaves everything untouched.
	newTitle := "changed"
	taken := "taken"
	affected, err := s.UpdateBlogPost(ctx, id, models.BlogPostPatch{Title: &newTitle, Slug: &taken})
	assert.ErrorIs(t, err, ErrSlugAlreadyTaken)
	assert.Equal(t, 0, affected)

	post, err := s.GetBlogPostBySlug(ctx, "old-slug")
	require.NoError(t, err)
	assert.Equal(t, "post old-slug", post.Title)

	// A free slug re-indexes: the old handle stops resolving.
	fresh := "new-slug"
	affected, err = s.UpdateBlogPost(ctx, id, models.BlogPostPatch{Slug: &fresh})
	require.NoError(t, err)
	assert.Equal(t, 1, affected)

	_, err = s.GetBlogPostBySlug(ctx, "old-slug")
	assert.ErrorIs(t, err, ErrNotFound)

	post, err = s.GetBlogPostBySlug(ctx, "new-slug")
	require.NoError(t, err)
	assert.Equal(t, id, post.ID)
}

// ── View counter ─────────────────────────────────────────────────────────────

func TestIncrementBlogPostViews(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id := mustCreatePost(t, s, "counted", true, nil)

	for i := 0; i < 5; i++ {
		affected, err := s.IncrementBlogPostViews(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, 1, affected)
	}

	post, err := s.GetBlogPostByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(5), post.ViewCount)

	affected, err := s.IncrementBlogPostViews(ctx, 999)
	require.NoError(t, err)
	assert.Equal(t, 0, affected)
}

// ── Listings and ordering ────────────────────────────────────────────────────

func TestAllBlogPosts_DraftVisibility(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	mustCreatePost(t, s, "published", true, nil)
	mustCreatePost(t, s, "draft", false, nil)

	public, err := s.AllBlogPosts(ctx, false)
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, "published", public[0].Slug)

	all, err := s.AllBlogPosts(ctx, true)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestAllBlogPosts_OrderedByPublishTimeDesc(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	older := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	mustCreatePost(t, s, "first", true, &older)
	mustCreatePost(t, s, "second", true, &newer)

	posts, err := s.AllBlogPosts(ctx, false)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "second", posts[0].Slug)
	assert.Equal(t, "first", posts[1].Slug)
}

func TestSearchBlogPosts_PublishedOnly(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	mustCreatePost(t, s, "go-notes", true, nil)
	mustCreatePost(t, s, "go-draft", false, nil)

	found, err := s.SearchBlogPosts(ctx, "go-")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "go-notes", found[0].Slug)
}

// ── Likes ────────────────────────────────────────────────────────────────────

func TestLikes_PairLifecycle(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	postID := mustCreatePost(t, s, "likeable", true, nil)

	_, err := s.GetUserLikeForPost(ctx, postID, 1)
	assert.ErrorIs(t, err, ErrNotFound)

	likeID, err := s.CreateLike(ctx, postID, 1)
	require.NoError(t, err)

	like, err := s.GetUserLikeForPost(ctx, postID, 1)
	require.NoError(t, err)
	assert.Equal(t, likeID, like.ID)

	likes, err := s.LikesByPost(ctx, postID)
	require.NoError(t, err)
	assert.Len(t, likes, 1)

	affected, err := s.DeleteLike(ctx, postID, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, affected)

	affected, err = s.DeleteLike(ctx, postID, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, affected)
}

// ── Comments ─────────────────────────────────────────────────────────────────

func TestComments_OrderedOldestFirst(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	postID := mustCreatePost(t, s, "discussed", true, nil)

	firstID, err := s.CreateComment(ctx, 1, models.CreateCommentRequest{PostID: postID, Content: "first"})
	require.NoError(t, err)
	secondID, err := s.CreateComment(ctx, 1, models.CreateCommentRequest{PostID: postID, Content: "second", ParentID: &firstID})
	require.NoError(t, err)

	comments, err := s.CommentsByPost(ctx, postID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, firstID, comments[0].ID)
	assert.Equal(t, secondID, comments[1].ID)

	// Deleting the parent leaves the reply with a dangling ParentID.
	affected, err := s.DeleteComment(ctx, firstID)
	require.NoError(t, err)
	assert.Equal(t, 1, affected)

	comments, err = s.CommentsByPost(ctx, postID)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	require.NotNil(t, comments[0].ParentID)
	assert.Equal(t, firstID, *comments[0].ParentID)
}

func TestDeleteBlogPost_RemovesSlugIndex(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id := mustCreatePost(t, s, "ephemeral", true, nil)

	affected, err := s.DeleteBlogPost(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 1, affected)

	_, err = s.GetBlogPostBySlug(ctx, "ephemeral")
	assert.ErrorIs(t, err, ErrNotFound)

	// The slug is free for reuse afterwards.
	mustCreatePost(t, s, "ephemeral", true, nil)
}
