package service

import (
	"context"

	"github.com/dkurbatov/lifehub/internal/logger"
	"github.com/dkurbatov/lifehub/internal/store"
	"github.com/dkurbatov/lifehub/models"
)

type notificationService struct {
	notifications store.NotificationRepository

	logger *logger.Logger
}

func NewNotificationService(notifications store.NotificationRepository, logger *logger.Logger) NotificationService {
	return &notificationService{notifications: notifications, logger: logger}
}

func (n *notificationService) List(ctx context.Context, unreadOnly bool) ([]models.Notification, error) {
	caller, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	return n.notifications.NotificationsByUser(ctx, caller.ID, unreadOnly)
}

// MarkAsRead flips a single notification by id. No ownership check: any
// authenticated caller may mark any notification.
func (n *notificationService) MarkAsRead(ctx context.Context, id int64) (models.AffectedResult, error) {
	if _, err := callerFromContext(ctx); err != nil {
		return models.AffectedResult{}, err
	}

	affected, err := n.notifications.MarkNotificationAsRead(ctx, id)
	if err != nil {
		return models.AffectedResult{}, err
	}

	return models.AffectedResult{AffectedRows: affected}, nil
}

func (n *notificationService) MarkAllAsRead(ctx context.Context) (models.AffectedResult, error) {
	caller, err := callerFromContext(ctx)
	if err != nil {
		return models.AffectedResult{}, err
	}

	count, err := n.notifications.MarkAllNotificationsAsRead(ctx, caller.ID)
	if err != nil {
		return models.AffectedResult{}, err
	}

	return models.AffectedResult{AffectedRows: count}, nil
}
