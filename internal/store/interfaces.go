package store

import (
	"context"
	"time"

	"github.com/dkurbatov/lifehub/models"
)

// Narrow per-entity views of the store. All are satisfied by *Store;
// services depend on these so tests can substitute hand-rolled fakes.

type UserRepository interface {
	GetUserByOpenID(ctx context.Context, openID string) (models.User, error)
	UpsertUser(ctx context.Context, data models.UpsertUser) (models.User, error)
}

type CategoryRepository interface {
	AllCategories(ctx context.Context) ([]models.Category, error)
	GetCategoryByID(ctx context.Context, id int64) (models.Category, error)
	CreateCategory(ctx context.Context, data models.CreateCategoryRequest) (int64, error)
}

type DocumentRepository interface {
	DocumentsByAuthor(ctx context.Context, authorID int64) ([]models.Document, error)
	GetDocumentByID(ctx context.Context, id int64) (models.Document, error)
	CreateDocument(ctx context.Context, authorID int64, data models.CreateDocumentRequest) (int64, error)
	UpdateDocument(ctx context.Context, id int64, patch models.DocumentPatch) (int, error)
	DeleteDocument(ctx context.Context, id int64) (int, error)
	SearchDocuments(ctx context.Context, query string, authorID int64) ([]models.Document, error)
}

type FileRepository interface {
	FilesByUploader(ctx context.Context, uploaderID int64) ([]models.File, error)
	GetFileByID(ctx context.Context, id int64) (models.File, error)
	CreateFile(ctx context.Context, data InsertFile) (int64, error)
	DeleteFile(ctx context.Context, id int64) (int, error)
}

type BlogRepository interface {
	AllBlogPosts(ctx context.Context, includeUnpublished bool) ([]models.BlogPost, error)
	BlogPostsByCategory(ctx context.Context, categoryID int64) ([]models.BlogPost, error)
	GetBlogPostBySlug(ctx context.Context, slug string) (models.BlogPost, error)
	GetBlogPostByID(ctx context.Context, id int64) (models.BlogPost, error)
	CreateBlogPost(ctx context.Context, authorID int64, data models.CreateBlogPostRequest, publishedAt *time.Time) (int64, error)
	UpdateBlogPost(ctx context.Context, id int64, patch models.BlogPostPatch) (int, error)
	DeleteBlogPost(ctx context.Context, id int64) (int, error)
	IncrementBlogPostViews(ctx context.Context, id int64) (int, error)
	SearchBlogPosts(ctx context.Context, query string) ([]models.BlogPost, error)
}

type CommentRepository interface {
	CommentsByPost(ctx context.Context, postID int64) ([]models.Comment, error)
	CreateComment(ctx context.Context, authorID int64, data models.CreateCommentRequest) (int64, error)
	DeleteComment(ctx context.Context, id int64) (int, error)
}

type LikeRepository interface {
	LikesByPost(ctx context.Context, postID int64) ([]models.Like, error)
	GetUserLikeForPost(ctx context.Context, postID, userID int64) (models.Like, error)
	CreateLike(ctx context.Context, postID, userID int64) (int64, error)
	DeleteLike(ctx context.Context, postID, userID int64) (int, error)
}

type NotificationRepository interface {
	NotificationsByUser(ctx context.Context, userID int64, unreadOnly bool) ([]models.Notification, error)
	CreateNotification(ctx context.Context, data models.InsertNotification) (int64, error)
	MarkNotificationAsRead(ctx context.Context, id int64) (int, error)
	MarkAllNotificationsAsRead(ctx context.Context, userID int64) (int, error)
}

type HealthRepository interface {
	HealthRecordsByUser(ctx context.Context, userID int64) ([]models.HealthRecord, error)
	GetHealthRecordByID(ctx context.Context, id int64) (models.HealthRecord, error)
	CreateHealthRecord(ctx context.Context, userID int64, data models.CreateHealthRecordRequest) (int64, error)
	UpdateHealthRecord(ctx context.Context, id int64, patch models.HealthRecordPatch) (int, error)
	DeleteHealthRecord(ctx context.Context, id int64) (int, error)
}

type FinanceRepository interface {
	TransactionsByUser(ctx context.Context, userID int64) ([]models.Transaction, error)
	GetTransactionByID(ctx context.Context, id int64) (models.Transaction, error)
	CreateTransaction(ctx context.Context, userID int64, data models.CreateTransactionRequest) (int64, error)
	UpdateTransaction(ctx context.Context, id int64, patch models.TransactionPatch) (int, error)
	DeleteTransaction(ctx context.Context, id int64) (int, error)
	TransactionsSummary(ctx context.Context, userID int64, startDate, endDate time.Time) (models.FinanceSummary, error)
	CreateBalance(ctx context.Context, userID int64, data models.UpdateBalanceRequest) (int64, error)
	LatestBalance(ctx context.Context, userID int64) (models.Balance, error)
	BalanceHistory(ctx context.Context, userID int64) ([]models.Balance, error)
}
