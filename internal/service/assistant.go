package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"voiceorder/internal/model"
	"voiceorder/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Reply is the outcome of handling one utterance
type Reply struct {
	UserID    string
	Result    model.ClassificationResult
	Sentiment *model.Sentiment // nil when analysis failed
	Response  string
}

// Assistant runs the full pipeline: FAQ matcher, intent cascade, negation
// adjustment, sentiment, response composition and context bookkeeping.
type Assistant struct {
	faq        *FAQMatcher
	classifier *IntentClassifier
	composer   *ResponseComposer
	sentiment  SentimentAnalyzer
	contexts   repository.ContextStore
	sink       repository.InteractionSink

	pending sync.WaitGroup
}

// NewAssistant wires the pipeline. faq and sentiment may be nil; a nil sink
// discards interaction records.
func NewAssistant(
	faq *FAQMatcher,
	classifier *IntentClassifier,
	composer *ResponseComposer,
	sentiment SentimentAnalyzer,
	contexts repository.ContextStore,
	sink repository.InteractionSink,
) *Assistant {
	if sink == nil {
		sink = repository.NopSink{}
	}
	return &Assistant{
		faq:        faq,
		classifier: classifier,
		composer:   composer,
		sentiment:  sentiment,
		contexts:   contexts,
		sink:       sink,
	}
}

// Resolve classifies an utterance. A FAQ hit short-circuits the keyword
// cascade; otherwise the cascade result is adjusted for negation.
func (a *Assistant) Resolve(utterance string) model.ClassificationResult {
	if a.faq != nil {
		match, err := a.faq.Match(utterance)
		switch {
		case errors.Is(err, ErrFAQUnavailable):
			// inert corpus, fall through to keywords
		case err != nil:
			logrus.WithError(err).Warn("FAQ matching failed")
		case match != nil:
			return model.ClassificationResult{
				Intent:   model.IntentGeneralInquiry,
				Label:    model.IntentGeneralInquiry.Label(),
				Response: match.Entry.Answer,
				Source:   model.SourceFAQ,
				Score:    match.Score,
			}
		}
	}

	return AdjustForNegation(utterance, a.classifier.Classify(utterance))
}

// Handle processes one utterance for a guest. Only an empty utterance is an
// error; collaborator and storage failures degrade the reply instead.
func (a *Assistant) Handle(ctx context.Context, userID, utterance string) (*Reply, error) {
	utterance = strings.TrimSpace(utterance)
	if utterance == "" {
		return nil, ErrEmptyUtterance
	}
	if strings.TrimSpace(userID) == "" {
		userID = model.DefaultUserID
	}

	result := a.Resolve(utterance)
	sentiment := a.analyze(ctx, utterance)

	var previous string
	if result.Source == model.SourceRules && result.Intent.IsOrder() && !result.Negated {
		prev, found, err := a.contexts.Swap(ctx, userID, utterance)
		if err != nil {
			logrus.WithError(err).WithField("user_id", userID).Error("Failed to update guest context")
		} else if found {
			previous = prev
		}
	}

	reply := &Reply{
		UserID:    userID,
		Result:    result,
		Sentiment: sentiment,
		Response:  a.composer.Compose(result, sentiment, previous),
	}

	logrus.WithFields(logrus.Fields{
		"user_id": userID,
		"intent":  result.Label,
		"source":  result.Source,
		"score":   result.Score,
	}).Info("Utterance handled")

	a.recordInteraction(userID, utterance, reply)
	return reply, nil
}

// RecordFeedback appends guest feedback to the feedback log in the background
func (a *Assistant) RecordFeedback(userID, feedback string) error {
	feedback = strings.TrimSpace(feedback)
	if feedback == "" {
		return ErrEmptyUtterance
	}
	if strings.TrimSpace(userID) == "" {
		userID = model.DefaultUserID
	}

	rec := model.FeedbackRecord{
		ID:        uuid.NewString(),
		Timestamp: time.Now(),
		UserID:    userID,
		Feedback:  feedback,
	}
	a.background(func(ctx context.Context) error {
		return a.sink.LogFeedback(ctx, rec)
	}, "feedback")
	return nil
}

// Wait blocks until all background log writes have finished
func (a *Assistant) Wait() {
	a.pending.Wait()
}

func (a *Assistant) analyze(ctx context.Context, utterance string) *model.Sentiment {
	if a.sentiment == nil {
		return nil
	}
	sentiment, err := a.sentiment.Analyze(ctx, utterance)
	if err != nil {
		logrus.WithError(err).Warn("Sentiment analysis failed, continuing without sentiment")
		return nil
	}
	return sentiment
}

func (a *Assistant) recordInteraction(userID, utterance string, reply *Reply) {
	sentimentLabel := "Unknown"
	if reply.Sentiment != nil {
		sentimentLabel = string(reply.Sentiment.Label)
	}

	rec := model.InteractionRecord{
		ID:            uuid.NewString(),
		Timestamp:     time.Now(),
		UserID:        userID,
		Transcription: utterance,
		Intent:        reply.Result.Label,
		Sentiment:     sentimentLabel,
		Response:      reply.Response,
	}
	a.background(func(ctx context.Context) error {
		return a.sink.LogInteraction(ctx, rec)
	}, "interaction")
}

// background runs a log write detached from the request. Failures are
// reported and swallowed.
func (a *Assistant) background(write func(ctx context.Context) error, kind string) {
	a.pending.Add(1)
	go func() {
		defer a.pending.Done()
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := write(ctx); err != nil {
			logrus.WithError(err).WithField("kind", kind).Error("Failed to write log record")
		}
	}()
}
