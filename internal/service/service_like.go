package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dkurbatov/lifehub/internal/logger"
	"github.com/dkurbatov/lifehub/internal/store"
	"github.com/dkurbatov/lifehub/models"
)

type likeService struct {
	likes         store.LikeRepository
	posts         store.BlogRepository
	notifications store.NotificationRepository

	logger *logger.Logger
}

func NewLikeService(likes store.LikeRepository, posts store.BlogRepository, notifications store.NotificationRepository, logger *logger.Logger) LikeService {
	return &likeService{
		likes:         likes,
		posts:         posts,
		notifications: notifications,
		logger:        logger,
	}
}

func (l *likeService) GetByPost(ctx context.Context, postID int64) (models.LikeSummary, error) {
	likes, err := l.likes.LikesByPost(ctx, postID)
	if err != nil {
		return models.LikeSummary{}, err
	}

	return models.LikeSummary{Count: len(likes), Likes: likes}, nil
}

// Toggle flips the caller's like on a post. Creating a like notifies the
// post author (never on unlike, never on self-like); removing one fires no
// hook.
func (l *likeService) Toggle(ctx context.Context, postID int64) (models.ToggleLikeResult, error) {
	caller, err := callerFromContext(ctx)
	if err != nil {
		return models.ToggleLikeResult{}, err
	}

	post, err := l.posts.GetBlogPostByID(ctx, postID)
	if err != nil {
		return models.ToggleLikeResult{}, err
	}

	_, err = l.likes.GetUserLikeForPost(ctx, postID, caller.ID)
	switch {
	case err == nil:
		if _, err = l.likes.DeleteLike(ctx, postID, caller.ID); err != nil {
			return models.ToggleLikeResult{}, err
		}
		return models.ToggleLikeResult{Liked: false}, nil

	case errors.Is(err, store.ErrNotFound):
		if _, err = l.likes.CreateLike(ctx, postID, caller.ID); err != nil {
			return models.ToggleLikeResult{}, err
		}

		if post.AuthorID != caller.ID {
			relatedID := post.ID
			_, err = l.notifications.CreateNotification(ctx, models.InsertNotification{
				UserID:    post.AuthorID,
				Type:      models.NotificationLike,
				Title:     "New like on your post",
				Content:   fmt.Sprintf("%s liked %q", caller.Name, post.Title),
				RelatedID: &relatedID,
			})
			if err != nil {
				l.logger.Error().Err(err).Int64("postId", post.ID).Msg("like notification failed")
			}
		}
		return models.ToggleLikeResult{Liked: true}, nil

	default:
		return models.ToggleLikeResult{}, err
	}
}
