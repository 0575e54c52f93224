package store

import (
	"context"
	"sort"

	"github.com/dkurbatov/lifehub/models"
)

// CommentsByPost returns all comments on a post, oldest first. Replies are
// not nested: ParentID is a weak reference the client resolves.
func (s *Store) CommentsByPost(ctx context.Context, postID int64) ([]models.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.Comment, 0)
	for _, c := range s.comments {
		if c.PostID == postID {
			result = append(result, c)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].ID < result[j].ID
		}
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})

	return result, nil
}

// CreateComment inserts a new comment authored by authorID.
func (s *Store) CreateComment(ctx context.Context, authorID int64, data models.CreateCommentRequest) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.commentSeq++
	comment := models.Comment{
		ID:        s.commentSeq,
		Content:   data.Content,
		PostID:    data.PostID,
		AuthorID:  authorID,
		ParentID:  data.ParentID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.comments[comment.ID] = comment

	return comment.ID, nil
}

// DeleteComment removes the comment with the given id. Replies referencing
// it keep their dangling ParentID. Returns the number of affected records.
func (s *Store) DeleteComment(ctx context.Context, id int64) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.comments[id]; !ok {
		return 0, nil
	}
	delete(s.comments, id)

	return 1, nil
}
