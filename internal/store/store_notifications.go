package store

import (
	"context"
	"sort"

	"github.com/dkurbatov/lifehub/models"
)

// NotificationsByUser returns the user's notifications, newest first. When
// unreadOnly is true, read notifications are filtered out.
func (s *Store) NotificationsByUser(ctx context.Context, userID int64, unreadOnly bool) ([]models.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.Notification, 0)
	for _, n := range s.notifications {
		if n.UserID != userID {
			continue
		}
		if unreadOnly && n.IsRead {
			continue
		}
		result = append(result, n)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].ID > result[j].ID
		}
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	return result, nil
}

// CreateNotification inserts a notification addressed to data.UserID.
// Notifications always start unread.
func (s *Store) CreateNotification(ctx context.Context, data models.InsertNotification) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notificationSeq++
	notification := models.Notification{
		ID:        s.notificationSeq,
		UserID:    data.UserID,
		Type:      data.Type,
		Title:     data.Title,
		Content:   data.Content,
		RelatedID: data.RelatedID,
		IsRead:    false,
		CreatedAt: s.now(),
	}
	s.notifications[notification.ID] = notification

	return notification.ID, nil
}

// MarkNotificationAsRead flags the notification with the given id as read.
// Returns the number of affected records.
func (s *Store) MarkNotificationAsRead(ctx context.Context, id int64) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.notifications[id]
	if !ok {
		return 0, nil
	}
	n.IsRead = true
	s.notifications[id] = n

	return 1, nil
}

// MarkAllNotificationsAsRead flags every unread notification of the user as
// read and returns how many were flipped.
func (s *Store) MarkAllNotificationsAsRead(ctx context.Context, userID int64) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for id, n := range s.notifications {
		if n.UserID == userID && !n.IsRead {
			n.IsRead = true
			s.notifications[id] = n
			count++
		}
	}

	return count, nil
}
