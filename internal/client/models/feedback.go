package models

// Categories is the fixed set of feedback categories the backend accepts.
var Categories = []string{
	"Electronics",
	"Clothing",
	"Books",
	"Furniture",
	"Grocery",
	"Health & Beauty",
	"Toys",
	"Sports Equipment",
	"Automobile",
	"Other",
}

// FeedbackSubmission is the transient payload of a feedback submit call.
// It is validated client-side before hitting the network and is not
// persisted locally.
type FeedbackSubmission struct {
	Category     string `json:"category" validate:"required,oneof=Electronics Clothing Books Furniture Grocery 'Health & Beauty' Toys 'Sports Equipment' Automobile Other"`
	ProductName  string `json:"product_name" validate:"required"`
	FeedbackText string `json:"feedback_text" validate:"required"`
}

// FeedbackRecord is a server-owned feedback row. Sentiment is computed
// server-side; the client only displays it. UserName is populated on the
// admin views only.
type FeedbackRecord struct {
	ID           int64  `json:"id"`
	UserName     string `json:"user__username,omitempty"`
	UserEmail    string `json:"user__email,omitempty"`
	Category     string `json:"category"`
	ProductName  string `json:"product_name"`
	FeedbackText string `json:"feedback_text"`
	Sentiment    string `json:"sentiment"`
	CreatedAt    string `json:"created_at"`
}
