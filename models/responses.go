package models

// InsertResult reports the server-assigned id of a newly created record.
type InsertResult struct {
	InsertID int64 `json:"insertId"`
}

// AffectedResult reports how many records an update or delete touched.
// Zero means the target was not found.
type AffectedResult struct {
	AffectedRows int `json:"affectedRows"`
}

// LikeSummary is the response shape for listing likes on a post.
type LikeSummary struct {
	Count int    `json:"count"`
	Likes []Like `json:"likes"`
}

// ToggleLikeResult reports the like state after a toggle.
type ToggleLikeResult struct {
	Liked bool `json:"liked"`
}

// FinanceSummary aggregates a user's transactions over a date range.
// All amounts are integer minor units; Balance = TotalIncome - TotalExpense.
type FinanceSummary struct {
	TotalIncome  int64 `json:"totalIncome"`
	TotalExpense int64 `json:"totalExpense"`
	Balance      int64 `json:"balance"`
}

// DashboardStats is the aggregate view backing the dashboard page.
// BlogPostCount is computed only for admin callers and is zero otherwise.
type DashboardStats struct {
	DocumentCount       int        `json:"documentCount"`
	FileCount           int        `json:"fileCount"`
	BlogPostCount       int        `json:"blogPostCount"`
	UnreadNotifications int        `json:"unreadNotifications"`
	RecentDocuments     []Document `json:"recentDocuments"`
	RecentFiles         []File     `json:"recentFiles"`
}

// SummaryResult is the assistant's generated summary of a piece of content.
type SummaryResult struct {
	Summary string `json:"summary"`
}

// TagsResult is the assistant's generated tag list for a piece of content.
type TagsResult struct {
	Tags []string `json:"tags"`
}

// ImproveResult is the assistant's revision of a piece of content.
type ImproveResult struct {
	Improved string `json:"improved"`
}

// TranscriptionResult is the transcribed text of an audio recording.
type TranscriptionResult struct {
	Text     string `json:"text"`
	Language string `json:"language,omitempty"`
}

// SuccessResult is the generic acknowledgement for operations with no
// meaningful payload (e.g. logout).
type SuccessResult struct {
	Success bool `json:"success"`
}

// TokenResult carries a freshly signed session token.
type TokenResult struct {
	Token string `json:"token"`
}
