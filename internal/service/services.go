package service

import (
	"github.com/dkurbatov/lifehub/internal/adapter"
	"github.com/dkurbatov/lifehub/internal/config"
	"github.com/dkurbatov/lifehub/internal/logger"
	"github.com/dkurbatov/lifehub/internal/store"
)

// Services aggregates every business service behind one wiring point.
type Services struct {
	IdentityService     IdentityService
	CategoryService     CategoryService
	DocumentService     DocumentService
	FileService         FileService
	BlogService         BlogService
	CommentService      CommentService
	LikeService         LikeService
	NotificationService NotificationService
	HealthService       HealthService
	FinanceService      FinanceService
	DashboardService    DashboardService
	AssistantService    AssistantService
	VoiceService        VoiceService
}

// Adapters groups the external-collaborator clients handed to NewServices.
type Adapters struct {
	LLM         adapter.LanguageModel
	Transcriber adapter.Transcriber
	Blobs       adapter.BlobStorage
}

func NewServices(s *store.Store, adapters Adapters, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		IdentityService:     NewIdentityService(s, cfg.App, logger),
		CategoryService:     NewCategoryService(s, logger),
		DocumentService:     NewDocumentService(s, logger),
		FileService:         NewFileService(s, adapters.Blobs, logger),
		BlogService:         NewBlogService(s, logger),
		CommentService:      NewCommentService(s, s, s, logger),
		LikeService:         NewLikeService(s, s, s, logger),
		NotificationService: NewNotificationService(s, logger),
		HealthService:       NewHealthService(s, logger),
		FinanceService:      NewFinanceService(s, logger),
		DashboardService:    NewDashboardService(s, s, s, s, logger),
		AssistantService:    NewAssistantService(adapters.LLM, logger),
		VoiceService:        NewVoiceService(adapters.Transcriber, logger),
	}
}
