package service

import (
	"context"
	"fmt"

	"github.com/dkurbatov/lifehub/internal/logger"
	"github.com/dkurbatov/lifehub/internal/store"
	"github.com/dkurbatov/lifehub/models"
)

type commentService struct {
	comments      store.CommentRepository
	posts         store.BlogRepository
	notifications store.NotificationRepository

	logger *logger.Logger
}

func NewCommentService(comments store.CommentRepository, posts store.BlogRepository, notifications store.NotificationRepository, logger *logger.Logger) CommentService {
	return &commentService{
		comments:      comments,
		posts:         posts,
		notifications: notifications,
		logger:        logger,
	}
}

func (c *commentService) ListByPost(ctx context.Context, postID int64) ([]models.Comment, error) {
	return c.comments.CommentsByPost(ctx, postID)
}

// Create stores the comment and then notifies the post author. Commenting
// on your own post produces no notification. The hook runs only after the
// comment is stored.
func (c *commentService) Create(ctx context.Context, data models.CreateCommentRequest) (models.InsertResult, error) {
	if data.Content == "" {
		return models.InsertResult{}, validationError("content is required")
	}

	caller, err := callerFromContext(ctx)
	if err != nil {
		return models.InsertResult{}, err
	}

	post, err := c.posts.GetBlogPostByID(ctx, data.PostID)
	if err != nil {
		return models.InsertResult{}, err
	}

	id, err := c.comments.CreateComment(ctx, caller.ID, data)
	if err != nil {
		return models.InsertResult{}, err
	}

	if post.AuthorID != caller.ID {
		postID := post.ID
		_, err = c.notifications.CreateNotification(ctx, models.InsertNotification{
			UserID:    post.AuthorID,
			Type:      models.NotificationComment,
			Title:     "New comment on your post",
			Content:   fmt.Sprintf("%s commented on %q", caller.Name, post.Title),
			RelatedID: &postID,
		})
		if err != nil {
			// The comment is already stored; a lost notification is not
			// worth failing the request over.
			c.logger.Error().Err(err).Int64("postId", post.ID).Msg("comment notification failed")
		}
	}

	return models.InsertResult{InsertID: id}, nil
}

// Delete requires a resolved caller but no ownership: any authenticated
// user may remove any comment.
func (c *commentService) Delete(ctx context.Context, id int64) (models.AffectedResult, error) {
	if _, err := callerFromContext(ctx); err != nil {
		return models.AffectedResult{}, err
	}

	affected, err := c.comments.DeleteComment(ctx, id)
	if err != nil {
		return models.AffectedResult{}, err
	}

	return models.AffectedResult{AffectedRows: affected}, nil
}
