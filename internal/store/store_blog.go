package store

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/dkurbatov/lifehub/models"
)

// AllBlogPosts returns blog posts ordered by publish time (falling back to
// creation time) descending. When includeUnpublished is false, drafts are
// filtered out.
func (s *Store) AllBlogPosts(ctx context.Context, includeUnpublished bool) ([]models.BlogPost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.BlogPost, 0)
	for _, p := range s.posts {
		if !includeUnpublished && !p.IsPublished {
			continue
		}
		result = append(result, p)
	}
	sortPostsByPublishDesc(result)

	return result, nil
}

// BlogPostsByCategory returns published posts in the given category,
// ordered like AllBlogPosts.
func (s *Store) BlogPostsByCategory(ctx context.Context, categoryID int64) ([]models.BlogPost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.BlogPost, 0)
	for _, p := range s.posts {
		if p.IsPublished && p.CategoryID != nil && *p.CategoryID == categoryID {
			result = append(result, p)
		}
	}
	sortPostsByPublishDesc(result)

	return result, nil
}

// GetBlogPostBySlug returns the post with the given slug or ErrNotFound.
// The view counter is NOT touched here; see IncrementBlogPostViews.
func (s *Store) GetBlogPostBySlug(ctx context.Context, slug string) (models.BlogPost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.postsBySlug[slug]
	if !ok {
		return models.BlogPost{}, ErrNotFound
	}

	return s.posts[id], nil
}

// GetBlogPostByID returns the post with the given id or ErrNotFound.
func (s *Store) GetBlogPostByID(ctx context.Context, id int64) (models.BlogPost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.posts[id]
	if !ok {
		return models.BlogPost{}, ErrNotFound
	}

	return p, nil
}

// CreateBlogPost inserts a new post owned by authorID. The slug must be
// unique; a collision returns ErrSlugAlreadyTaken. When publishedAt is
// non-nil the post is created already stamped (used for posts created in
// the published state).
func (s *Store) CreateBlogPost(ctx context.Context, authorID int64, data models.CreateBlogPostRequest, publishedAt *time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.postsBySlug[data.Slug]; taken {
		return 0, ErrSlugAlreadyTaken
	}

	now := s.now()
	s.postSeq++
	post := models.BlogPost{
		ID:          s.postSeq,
		Title:       data.Title,
		Slug:        data.Slug,
		Content:     data.Content,
		Excerpt:     data.Excerpt,
		CoverImage:  data.CoverImage,
		CategoryID:  data.CategoryID,
		AuthorID:    authorID,
		Tags:        data.Tags,
		ViewCount:   0,
		IsPublished: data.IsPublished,
		PublishedAt: publishedAt,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.posts[post.ID] = post
	s.postsBySlug[post.Slug] = post.ID

	return post.ID, nil
}

// UpdateBlogPost applies a partial patch to the post with the given id and
// refreshes its updated timestamp. A slug change re-indexes the post; a
// collision with another post's slug returns ErrSlugAlreadyTaken with no
// fields applied. Returns the number of affected records.
func (s *Store) UpdateBlogPost(ctx context.Context, id int64, patch models.BlogPostPatch) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, ok := s.posts[id]
	if !ok {
		return 0, nil
	}

	if patch.Slug != nil && *patch.Slug != post.Slug {
		if _, taken := s.postsBySlug[*patch.Slug]; taken {
			return 0, ErrSlugAlreadyTaken
		}
		delete(s.postsBySlug, post.Slug)
		post.Slug = *patch.Slug
		s.postsBySlug[post.Slug] = id
	}

	if patch.Title != nil {
		post.Title = *patch.Title
	}
	if patch.Content != nil {
		post.Content = *patch.Content
	}
	if patch.Excerpt != nil {
		post.Excerpt = *patch.Excerpt
	}
	if patch.CoverImage != nil {
		post.CoverImage = *patch.CoverImage
	}
	if patch.CategoryID != nil {
		post.CategoryID = patch.CategoryID
	}
	if patch.Tags != nil {
		post.Tags = *patch.Tags
	}
	if patch.IsPublished != nil {
		post.IsPublished = *patch.IsPublished
	}
	if patch.PublishedAt != nil {
		post.PublishedAt = patch.PublishedAt
	}
	post.UpdatedAt = s.now()
	s.posts[id] = post

	return 1, nil
}

// DeleteBlogPost removes the post with the given id and its slug index
// entry. Comments and likes referencing the post keep their dangling ids.
// Returns the number of affected records.
func (s *Store) DeleteBlogPost(ctx context.Context, id int64) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, ok := s.posts[id]
	if !ok {
		return 0, nil
	}
	delete(s.postsBySlug, post.Slug)
	delete(s.posts, id)

	return 1, nil
}

// IncrementBlogPostViews bumps the post's view counter by one. Every call
// counts; there is no per-visitor deduplication. Returns the number of
// affected records.
func (s *Store) IncrementBlogPostViews(ctx context.Context, id int64) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, ok := s.posts[id]
	if !ok {
		return 0, nil
	}
	post.ViewCount++
	s.posts[id] = post

	return 1, nil
}

// SearchBlogPosts performs a case-sensitive substring match against the
// title and content of published posts, ordered like AllBlogPosts.
func (s *Store) SearchBlogPosts(ctx context.Context, query string) ([]models.BlogPost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.BlogPost, 0)
	for _, p := range s.posts {
		if !p.IsPublished {
			continue
		}
		if strings.Contains(p.Title, query) || strings.Contains(p.Content, query) {
			result = append(result, p)
		}
	}
	sortPostsByPublishDesc(result)

	return result, nil
}

// publishTime is the ordering key for public listings: publish time when
// stamped, creation time otherwise.
func publishTime(p models.BlogPost) time.Time {
	if p.PublishedAt != nil {
		return *p.PublishedAt
	}
	return p.CreatedAt
}

func sortPostsByPublishDesc(posts []models.BlogPost) {
	sort.Slice(posts, func(i, j int) bool {
		ti, tj := publishTime(posts[i]), publishTime(posts[j])
		if ti.Equal(tj) {
			return posts[i].ID > posts[j].ID
		}
		return ti.After(tj)
	})
}
