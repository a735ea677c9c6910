package service

import (
	"fmt"

	"voiceorder/internal/model"
)

// Sentiment conditioned lead-ins
const (
	LeadInPositive = "Thank you for your request! "
	LeadInNeutral  = "I see. "
	LeadInNegative = "I'm sorry to hear that. "
)

const repeatOrderTemplate = "Your previous order was '%s'. This new order has been received, and we'll prepare your food shortly."

// ResponseComposer turns a classification into the reply spoken to the guest
type ResponseComposer struct{}

// NewResponseComposer creates a response composer
func NewResponseComposer() *ResponseComposer {
	return &ResponseComposer{}
}

// Compose builds the reply. previousOrder is the order recorded strictly
// before this request, or "" when the guest has none. A nil sentiment means
// analysis failed and is treated as neutral.
func (c *ResponseComposer) Compose(result model.ClassificationResult, sentiment *model.Sentiment, previousOrder string) string {
	switch {
	case result.Source == model.SourceFAQ:
		return result.Response
	case result.Intent == model.IntentUnknown:
		return ClarificationResponse
	}

	body := result.Response
	if result.Intent.IsOrder() && !result.Negated && previousOrder != "" {
		body = fmt.Sprintf(repeatOrderTemplate, previousOrder)
	}
	return leadIn(sentiment) + body
}

func leadIn(sentiment *model.Sentiment) string {
	if sentiment == nil {
		return LeadInNeutral
	}
	switch sentiment.Label {
	case model.SentimentPositive:
		return LeadInPositive
	case model.SentimentNegative:
		return LeadInNegative
	default:
		return LeadInNeutral
	}
}
