package model

import "strings"

// SentimentLabel is the polarity reported by a sentiment analyzer
type SentimentLabel string

const (
	SentimentPositive SentimentLabel = "Positive"
	SentimentNeutral  SentimentLabel = "Neutral"
	SentimentNegative SentimentLabel = "Negative"
)

// Sentiment is the label and confidence returned by a sentiment analyzer
type Sentiment struct {
	Label SentimentLabel `json:"label"`
	Score float64        `json:"score"`
}

// ParseSentimentLabel maps provider labels (POSITIVE, neg, LABEL_2...) onto the
// three labels the composer understands. Unknown labels become Neutral.
func ParseSentimentLabel(raw string) SentimentLabel {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "positive", "pos", "label_2":
		return SentimentPositive
	case "negative", "neg", "label_0":
		return SentimentNegative
	default:
		return SentimentNeutral
	}
}
