package store

import (
	"context"
	"sort"

	"github.com/dkurbatov/lifehub/models"
)

// LikesByPost returns all likes on a post, oldest first.
func (s *Store) LikesByPost(ctx context.Context, postID int64) ([]models.Like, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.Like, 0)
	for _, l := range s.likes {
		if l.PostID == postID {
			result = append(result, l)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })

	return result, nil
}

// GetUserLikeForPost returns the like a user placed on a post, or
// ErrNotFound when the pair has no like.
func (s *Store) GetUserLikeForPost(ctx context.Context, postID, userID int64) (models.Like, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, l := range s.likes {
		if l.PostID == postID && l.UserID == userID {
			return l, nil
		}
	}

	return models.Like{}, ErrNotFound
}

// CreateLike inserts a like for the (postID, userID) pair. The toggle logic
// in the service layer guarantees at most one like per pair; the store does
// not re-check.
func (s *Store) CreateLike(ctx context.Context, postID, userID int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.likeSeq++
	like := models.Like{
		ID:        s.likeSeq,
		PostID:    postID,
		UserID:    userID,
		CreatedAt: s.now(),
	}
	s.likes[like.ID] = like

	return like.ID, nil
}

// DeleteLike removes the like for the (postID, userID) pair. Returns the
// number of affected records.
func (s *Store) DeleteLike(ctx context.Context, postID, userID int64) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, l := range s.likes {
		if l.PostID == postID && l.UserID == userID {
			delete(s.likes, id)
			return 1, nil
		}
	}

	return 0, nil
}
