// Package service implements the application's business operations on top
// of the entity store and the external-collaborator adapters.
//
// Every operation follows the same order: validate the payload, check the
// referenced records exist, apply the authorization guard, mutate the
// store, then fire any side-effect hook. A failure at any step
// short-circuits before the mutation.
package service

import (
	"context"

	"github.com/dkurbatov/lifehub/models"
)

// IdentityService resolves external identity handles to user records and
// answers session queries.
type IdentityService interface {
	// Resolve maps an openID to a user record, creating the record on first
	// sight. Resolution never fails for a non-empty handle.
	Resolve(ctx context.Context, openID string) (models.User, error)

	// Me returns the caller stored in the context.
	Me(ctx context.Context) (models.User, error)

	// IssueToken signs a session token for the caller.
	IssueToken(ctx context.Context) (models.TokenResult, error)

	// Logout acknowledges the client-side session teardown. Sessions are
	// stateless, so there is nothing to invalidate server-side.
	Logout(ctx context.Context) (models.SuccessResult, error)
}

type CategoryService interface {
	List(ctx context.Context) ([]models.Category, error)
	GetByID(ctx context.Context, id int64) (models.Category, error)
	Create(ctx context.Context, data models.CreateCategoryRequest) (models.InsertResult, error)
}

type DocumentService interface {
	List(ctx context.Context) ([]models.Document, error)
	GetByID(ctx context.Context, id int64) (models.Document, error)
	Create(ctx context.Context, data models.CreateDocumentRequest) (models.InsertResult, error)
	Update(ctx context.Context, req models.UpdateDocumentRequest) (models.AffectedResult, error)
	Delete(ctx context.Context, id int64) (models.AffectedResult, error)
	Search(ctx context.Context, query string) ([]models.Document, error)
}

type FileService interface {
	List(ctx context.Context) ([]models.File, error)
	Upload(ctx context.Context, data models.UploadFileRequest) (models.File, error)
	Delete(ctx context.Context, id int64) (models.AffectedResult, error)
}

type BlogService interface {
	ListPublished(ctx context.Context) ([]models.BlogPost, error)
	ListAll(ctx context.Context) ([]models.BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (models.BlogPost, error)
	GetByID(ctx context.Context, id int64) (models.BlogPost, error)
	GetByCategory(ctx context.Context, categoryID int64) ([]models.BlogPost, error)
	Create(ctx context.Context, data models.CreateBlogPostRequest) (models.InsertResult, error)
	Update(ctx context.Context, req models.UpdateBlogPostRequest) (models.AffectedResult, error)
	Delete(ctx context.Context, id int64) (models.AffectedResult, error)
	Search(ctx context.Context, query string) ([]models.BlogPost, error)
}

type CommentService interface {
	ListByPost(ctx context.Context, postID int64) ([]models.Comment, error)
	Create(ctx context.Context, data models.CreateCommentRequest) (models.InsertResult, error)
	Delete(ctx context.Context, id int64) (models.AffectedResult, error)
}

type LikeService interface {
	GetByPost(ctx context.Context, postID int64) (models.LikeSummary, error)
	Toggle(ctx context.Context, postID int64) (models.ToggleLikeResult, error)
}

type NotificationService interface {
	List(ctx context.Context, unreadOnly bool) ([]models.Notification, error)
	MarkAsRead(ctx context.Context, id int64) (models.AffectedResult, error)
	MarkAllAsRead(ctx context.Context) (models.AffectedResult, error)
}

type HealthService interface {
	List(ctx context.Context) ([]models.HealthRecord, error)
	GetByID(ctx context.Context, id int64) (models.HealthRecord, error)
	Create(ctx context.Context, data models.CreateHealthRecordRequest) (models.InsertResult, error)
	Update(ctx context.Context, req models.UpdateHealthRecordRequest) (models.AffectedResult, error)
	Delete(ctx context.Context, id int64) (models.AffectedResult, error)
}

type FinanceService interface {
	ListTransactions(ctx context.Context) ([]models.Transaction, error)
	GetTransaction(ctx context.Context, id int64) (models.Transaction, error)
	CreateTransaction(ctx context.Context, data models.CreateTransactionRequest) (models.InsertResult, error)
	UpdateTransaction(ctx context.Context, req models.UpdateTransactionRequest) (models.AffectedResult, error)
	DeleteTransaction(ctx context.Context, id int64) (models.AffectedResult, error)
	GetSummary(ctx context.Context, rng models.SummaryRange) (models.FinanceSummary, error)
	GetLatestBalance(ctx context.Context) (models.Balance, error)
	GetBalanceHistory(ctx context.Context) ([]models.Balance, error)
	UpdateBalance(ctx context.Context, data models.UpdateBalanceRequest) (models.InsertResult, error)
}

type DashboardService interface {
	Stats(ctx context.Context) (models.DashboardStats, error)
}

type AssistantService interface {
	GenerateSummary(ctx context.Context, content string) (models.SummaryResult, error)
	GenerateTags(ctx context.Context, content string) (models.TagsResult, error)
	ImproveWriting(ctx context.Context, content string) (models.ImproveResult, error)
}

type VoiceService interface {
	Transcribe(ctx context.Context, audioURL, language string) (models.TranscriptionResult, error)
}
