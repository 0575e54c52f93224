package store

import (
	"context"
	"testing"

	"github.com/dkurbatov/lifehub/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifications_Lifecycle(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	postID := int64(7)
	firstID, err := s.CreateNotification(ctx, models.InsertNotification{
		UserID: 1, Type: models.NotificationComment, Title: "New comment on your post", RelatedID: &postID,
	})
	require.NoError(t, err)
	_, err = s.CreateNotification(ctx, models.InsertNotification{
		UserID: 1, Type: models.NotificationLike, Title: "Someone liked your post", RelatedID: &postID,
	})
	require.NoError(t, err)
	_, err = s.CreateNotification(ctx, models.InsertNotification{
		UserID: 2, Type: models.NotificationSystem, Title: "Welcome",
	})
	require.NoError(t, err)

	all, err := s.NotificationsByUser(ctx, 1, false)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.False(t, all[0].IsRead, "notifications always start unread")

	affected, err := s.MarkNotificationAsRead(ctx, firstID)
	require.NoError(t, err)
	assert.Equal(t, 1, affected)

	unread, err := s.NotificationsByUser(ctx, 1, true)
	require.NoError(t, err)
	require.Len(t, unread, 1)
	assert.Equal(t, models.NotificationLike, unread[0].Type)

	count, err := s.MarkAllNotificationsAsRead(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, count, "only remaining unread entries are flipped")

	unread, err = s.NotificationsByUser(ctx, 1, true)
	require.NoError(t, err)
	assert.Empty(t, unread)

	// User 2 is untouched by user 1's mark-all.
	otherUnread, err := s.NotificationsByUser(ctx, 2, true)
	require.NoError(t, err)
	assert.Len(t, otherUnread, 1)
}

func TestMarkNotificationAsRead_Missing(t *testing.T) {
	s := newTestStore(t)

	affected, err := s.MarkNotificationAsRead(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, 0, affected)
}
