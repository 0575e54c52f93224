package service

import (
	"context"
	"time"
	"unicode/utf8"

	"github.com/dkurbatov/lifehub/internal/logger"
	"github.com/dkurbatov/lifehub/internal/store"
	"github.com/dkurbatov/lifehub/models"
)

const maxSlugLength = 500

type blogService struct {
	posts store.BlogRepository
	now   func() time.Time

	logger *logger.Logger
}

func NewBlogService(posts store.BlogRepository, logger *logger.Logger) BlogService {
	return &blogService{posts: posts, now: time.Now, logger: logger}
}

func (b *blogService) ListPublished(ctx context.Context) ([]models.BlogPost, error) {
	return b.posts.AllBlogPosts(ctx, false)
}

func (b *blogService) ListAll(ctx context.Context) ([]models.BlogPost, error) {
	caller, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err = adminOnly(caller); err != nil {
		return nil, err
	}

	return b.posts.AllBlogPosts(ctx, true)
}

// GetBySlug is the public read path: every successful lookup bumps the view
// counter, with no per-visitor deduplication.
func (b *blogService) GetBySlug(ctx context.Context, slug string) (models.BlogPost, error) {
	if slug == "" {
		return models.BlogPost{}, validationError("slug is required")
	}

	post, err := b.posts.GetBlogPostBySlug(ctx, slug)
	if err != nil {
		return models.BlogPost{}, err
	}

	if _, err = b.posts.IncrementBlogPostViews(ctx, post.ID); err != nil {
		return models.BlogPost{}, err
	}
	post.ViewCount++

	return post, nil
}

func (b *blogService) GetByID(ctx context.Context, id int64) (models.BlogPost, error) {
	if _, err := callerFromContext(ctx); err != nil {
		return models.BlogPost{}, err
	}

	return b.posts.GetBlogPostByID(ctx, id)
}

func (b *blogService) GetByCategory(ctx context.Context, categoryID int64) ([]models.BlogPost, error) {
	return b.posts.BlogPostsByCategory(ctx, categoryID)
}

func (b *blogService) Create(ctx context.Context, data models.CreateBlogPostRequest) (models.InsertResult, error) {
	if err := validateBlogPostTitle(data.Title); err != nil {
		return models.InsertResult{}, err
	}
	if err := validateBlogPostSlug(data.Slug); err != nil {
		return models.InsertResult{}, err
	}

	caller, err := callerFromContext(ctx)
	if err != nil {
		return models.InsertResult{}, err
	}
	if err = adminOnly(caller); err != nil {
		return models.InsertResult{}, err
	}

	// A post created in the published state is stamped at creation time.
	var publishedAt *time.Time
	if data.IsPublished {
		now := b.now()
		publishedAt = &now
	}

	id, err := b.posts.CreateBlogPost(ctx, caller.ID, data, publishedAt)
	if err != nil {
		return models.InsertResult{}, err
	}
	b.logger.Info().Int64("postId", id).Str("slug", data.Slug).Bool("published", data.IsPublished).Msg("blog post created")

	return models.InsertResult{InsertID: id}, nil
}

// Update applies the patch and owns the publish transition: the first
// draft-to-published flip stamps PublishedAt, and unpublishing keeps the
// stamp so a later re-publish does not move the post in the public
// ordering.
func (b *blogService) Update(ctx context.Context, req models.UpdateBlogPostRequest) (models.AffectedResult, error) {
	if req.Title != nil {
		if err := validateBlogPostTitle(*req.Title); err != nil {
			return models.AffectedResult{}, err
		}
	}
	if req.Slug != nil {
		if err := validateBlogPostSlug(*req.Slug); err != nil {
			return models.AffectedResult{}, err
		}
	}

	caller, err := callerFromContext(ctx)
	if err != nil {
		return models.AffectedResult{}, err
	}
	if err = adminOnly(caller); err != nil {
		return models.AffectedResult{}, err
	}

	post, err := b.posts.GetBlogPostByID(ctx, req.ID)
	if err != nil {
		return models.AffectedResult{}, err
	}

	patch := req.BlogPostPatch
	if patch.IsPublished != nil && *patch.IsPublished && !post.IsPublished && post.PublishedAt == nil {
		now := b.now()
		patch.PublishedAt = &now
	}

	affected, err := b.posts.UpdateBlogPost(ctx, req.ID, patch)
	if err != nil {
		return models.AffectedResult{}, err
	}

	return models.AffectedResult{AffectedRows: affected}, nil
}

func (b *blogService) Delete(ctx context.Context, id int64) (models.AffectedResult, error) {
	caller, err := callerFromContext(ctx)
	if err != nil {
		return models.AffectedResult{}, err
	}
	if err = adminOnly(caller); err != nil {
		return models.AffectedResult{}, err
	}

	affected, err := b.posts.DeleteBlogPost(ctx, id)
	if err != nil {
		return models.AffectedResult{}, err
	}
	b.logger.Info().Int64("postId", id).Msg("blog post deleted")

	return models.AffectedResult{AffectedRows: affected}, nil
}

func (b *blogService) Search(ctx context.Context, query string) ([]models.BlogPost, error) {
	if query == "" {
		return nil, validationError("query is required")
	}

	return b.posts.SearchBlogPosts(ctx, query)
}

func validateBlogPostTitle(title string) error {
	if title == "" || utf8.RuneCountInString(title) > maxTitleLength {
		return validationError("title must be 1..%d characters", maxTitleLength)
	}
	return nil
}

// Post slugs share the title bound, not the shorter category one.
func validateBlogPostSlug(slug string) error {
	if slug == "" || utf8.RuneCountInString(slug) > maxSlugLength {
		return validationError("slug must be 1..%d characters", maxSlugLength)
	}
	return nil
}
