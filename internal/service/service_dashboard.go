package service

import (
	"context"

	"github.com/dkurbatov/lifehub/internal/logger"
	"github.com/dkurbatov/lifehub/internal/store"
	"github.com/dkurbatov/lifehub/models"
)

// recentItemsLimit caps the recent documents and files on the dashboard.
const recentItemsLimit = 5

type dashboardService struct {
	documents     store.DocumentRepository
	files         store.FileRepository
	posts         store.BlogRepository
	notifications store.NotificationRepository

	logger *logger.Logger
}

func NewDashboardService(
	documents store.DocumentRepository,
	files store.FileRepository,
	posts store.BlogRepository,
	notifications store.NotificationRepository,
	logger *logger.Logger,
) DashboardService {
	return &dashboardService{
		documents:     documents,
		files:         files,
		posts:         posts,
		notifications: notifications,
		logger:        logger,
	}
}

// Stats aggregates the caller's counters in one pass. The blog post count
// covers all posts (drafts included) and is reported only to admins;
// everyone else sees zero.
func (d *dashboardService) Stats(ctx context.Context) (models.DashboardStats, error) {
	caller, err := callerFromContext(ctx)
	if err != nil {
		return models.DashboardStats{}, err
	}

	documents, err := d.documents.DocumentsByAuthor(ctx, caller.ID)
	if err != nil {
		return models.DashboardStats{}, err
	}
	files, err := d.files.FilesByUploader(ctx, caller.ID)
	if err != nil {
		return models.DashboardStats{}, err
	}
	unread, err := d.notifications.NotificationsByUser(ctx, caller.ID, true)
	if err != nil {
		return models.DashboardStats{}, err
	}

	stats := models.DashboardStats{
		DocumentCount:       len(documents),
		FileCount:           len(files),
		UnreadNotifications: len(unread),
		RecentDocuments:     documents[:min(len(documents), recentItemsLimit)],
		RecentFiles:         files[:min(len(files), recentItemsLimit)],
	}

	if caller.IsAdmin() {
		posts, err := d.posts.AllBlogPosts(ctx, true)
		if err != nil {
			return models.DashboardStats{}, err
		}
		stats.BlogPostCount = len(posts)
	}

	return stats, nil
}
