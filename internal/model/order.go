package model

import "time"

// DefaultUserID is used when a request does not identify the guest
const DefaultUserID = "default_user"

// VoiceOrderRequest represents an utterance submitted for processing
type VoiceOrderRequest struct {
	Input  string `json:"input"`
	UserID string `json:"user_id,omitempty"`
}

// VoiceOrderResponse represents the assistant reply for one utterance
type VoiceOrderResponse struct {
	Response   string          `json:"response"`
	Intent     string          `json:"intent"`
	Sentiment  *SentimentLabel `json:"sentiment"`
	Score      *float64        `json:"score"`
	Source     ResultSource    `json:"source"`
	MatchScore float64         `json:"match_score,omitempty"`
	UserID     string          `json:"user_id"`
	RequestID  string          `json:"request_id,omitempty"`
}

// FeedbackRequest represents free text feedback from a guest
type FeedbackRequest struct {
	Feedback string `json:"feedback"`
	UserID   string `json:"user_id,omitempty"`
}

// FeedbackResponse represents feedback response
type FeedbackResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// InteractionRecord is one append-only row of the interaction log
type InteractionRecord struct {
	ID            string    `json:"id" db:"id"`
	Timestamp     time.Time `json:"timestamp" db:"created_at"`
	UserID        string    `json:"user_id" db:"user_id"`
	Transcription string    `json:"transcription" db:"transcription"`
	Intent        string    `json:"intent" db:"intent"`
	Sentiment     string    `json:"sentiment" db:"sentiment"`
	Response      string    `json:"response" db:"response"`
}

// FeedbackRecord is one append-only row of the feedback log
type FeedbackRecord struct {
	ID        string    `json:"id" db:"id"`
	Timestamp time.Time `json:"timestamp" db:"created_at"`
	UserID    string    `json:"user_id" db:"user_id"`
	Feedback  string    `json:"feedback" db:"feedback"`
}
