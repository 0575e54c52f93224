package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init wires the full route table. Three route groups share the recoverer,
// trace-id, and logging chain:
//
//   - public routes serve reads with no resolved caller;
//   - protected routes run behind the identity middleware, which always
//     yields a caller (bearer token or the demo fallback);
//   - admin routes also run behind identity; the role check itself lives in
//     the service layer.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// public
	router.Group(func(r chi.Router) {
		r.Get("/api/categories", h.listCategories)
		r.Get("/api/categories/{id}", h.getCategory)

		r.Get("/api/blog/posts", h.listPublishedPosts)
		r.Get("/api/blog/search", h.searchPosts)
		r.Get("/api/blog/categories/{categoryID}/posts", h.listPostsByCategory)
		r.Get("/api/blog/posts/{slug}", h.getPostBySlug)

		r.Get("/api/posts/{postID}/comments", h.listComments)
		r.Get("/api/posts/{postID}/likes", h.getLikes)
	})

	// protected
	router.Group(func(r chi.Router) {
		r.Use(h.identity)

		r.Get("/api/auth/me", h.me)
		r.Post("/api/auth/token", h.issueToken)
		r.Post("/api/auth/logout", h.logout)

		r.Get("/api/documents", h.listDocuments)
		r.Post("/api/documents", h.createDocument)
		r.Get("/api/documents/search", h.searchDocuments)
		r.Get("/api/documents/{id}", h.getDocument)
		r.Put("/api/documents/{id}", h.updateDocument)
		r.Delete("/api/documents/{id}", h.deleteDocument)

		r.Get("/api/files", h.listFiles)
		r.Post("/api/files", h.uploadFile)
		r.Delete("/api/files/{id}", h.deleteFile)

		r.Get("/api/blog/posts/id/{id}", h.getPostByID)

		r.Post("/api/comments", h.createComment)
		r.Delete("/api/comments/{id}", h.deleteComment)

		r.Post("/api/posts/{postID}/like", h.toggleLike)

		r.Get("/api/notifications", h.listNotifications)
		r.Post("/api/notifications/read-all", h.markAllNotificationsRead)
		r.Post("/api/notifications/{id}/read", h.markNotificationRead)

		r.Get("/api/health-records", h.listHealthRecords)
		r.Post("/api/health-records", h.createHealthRecord)
		r.Get("/api/health-records/{id}", h.getHealthRecord)
		r.Put("/api/health-records/{id}", h.updateHealthRecord)
		r.Delete("/api/health-records/{id}", h.deleteHealthRecord)

		r.Get("/api/finance/transactions", h.listTransactions)
		r.Post("/api/finance/transactions", h.createTransaction)
		r.Get("/api/finance/transactions/{id}", h.getTransaction)
		r.Put("/api/finance/transactions/{id}", h.updateTransaction)
		r.Delete("/api/finance/transactions/{id}", h.deleteTransaction)
		r.Get("/api/finance/summary", h.financeSummary)
		r.Get("/api/finance/balance", h.latestBalance)
		r.Get("/api/finance/balance/history", h.balanceHistory)
		r.Post("/api/finance/balance", h.updateBalance)

		r.Get("/api/dashboard/stats", h.dashboardStats)

		r.Post("/api/assistant/summary", h.generateSummary)
		r.Post("/api/assistant/tags", h.generateTags)
		r.Post("/api/assistant/improve", h.improveWriting)

		r.Post("/api/voice/transcriptions", h.transcribe)
	})

	// admin
	router.Group(func(r chi.Router) {
		r.Use(h.identity)

		r.Post("/api/categories", h.createCategory)

		r.Get("/api/blog/admin/posts", h.listAllPosts)
		r.Post("/api/blog/posts", h.createPost)
		r.Put("/api/blog/posts/id/{id}", h.updatePost)
		r.Delete("/api/blog/posts/id/{id}", h.deletePost)
	})

	return router
}
