package models

// PersonInfo is the logged-in user's display info returned by the
// dashboard endpoints.
type PersonInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// SentimentCounts aggregates a feedback set by server-derived sentiment.
type SentimentCounts struct {
	Positive int `json:"positive_count"`
	Neutral  int `json:"neutral_count"`
	Negative int `json:"negative_count"`
	Total    int `json:"total_count"`
}

// AdminDashboard is the response of GET /feedback/dashboard/admin/.
type AdminDashboard struct {
	AdminInfo   PersonInfo       `json:"admin_info"`
	Feedbacks   []FeedbackRecord `json:"feedbacks"`
	TotalPages  int              `json:"total_pages"`
	CurrentPage int              `json:"current_page"`
}

// StaffDashboard is the response of GET /feedback/dashboard/staff/.
type StaffDashboard struct {
	StaffInfo       PersonInfo       `json:"staff_info"`
	SentimentCounts SentimentCounts  `json:"sentiment_counts"`
	Feedbacks       []FeedbackRecord `json:"feedbacks"`
	TotalPages      int              `json:"total_pages"`
	CurrentPage     int              `json:"current_page"`
}

// Analysis is the response of GET /feedback/analysis/. The sentiment
// figures honour the requested time filter; the *_last_* counters and
// total_count are global.
type Analysis struct {
	Positive          int `json:"positive"`
	Negative          int `json:"negative"`
	Neutral           int `json:"neutral"`
	TotalCount        int `json:"total_count"`
	FeedbacksLastDay  int `json:"feedbacks_last_day"`
	FeedbacksLastWeek int `json:"feedbacks_last_week"`
	FeedbacksLastMon  int `json:"feedbacks_last_month"`
	ActiveUsersCount  int `json:"active_users_count"`
}

// AnalysisFilters is the set of time filters the analysis endpoint accepts.
var AnalysisFilters = []string{"today", "last7days", "lastmonth", "total"}
