package service

import (
	"context"
	"strings"

	"voiceorder/internal/model"
	"voiceorder/internal/utils"
)

// SentimentAnalyzer is the black-box sentiment collaborator
type SentimentAnalyzer interface {
	Analyze(ctx context.Context, text string) (*model.Sentiment, error)
}

var (
	positiveWords = wordSet("love", "great", "thank", "thanks", "wonderful", "excellent", "amazing", "good",
		"nice", "happy", "perfect", "lovely", "appreciate", "delicious", "fantastic", "awesome", "pleased", "please")
	negativeWords = wordSet("bad", "terrible", "awful", "hate", "dirty", "broken", "problem", "complaint",
		"unhappy", "disappointed", "disappointing", "rude", "cold", "slow", "worst", "noisy", "issue", "horrible",
		"angry", "wrong", "late", "smelly")
	flipWords = wordSet("not", "no", "never", "don't", "dont", "isn't", "wasn't", "aren't", "didn't")
)

// LexiconAnalyzer is an in-process word-list analyzer used when no remote
// model is configured. A negation directly before a word flips its polarity.
type LexiconAnalyzer struct{}

// NewLexiconAnalyzer creates a lexicon based analyzer
func NewLexiconAnalyzer() *LexiconAnalyzer {
	return &LexiconAnalyzer{}
}

// Analyze implements SentimentAnalyzer
func (a *LexiconAnalyzer) Analyze(ctx context.Context, text string) (*model.Sentiment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var pos, neg int
	flip := false
	for _, raw := range strings.Fields(utils.Lower(text)) {
		word := strings.Trim(raw, ".,!?;:\"()")
		_, isPos := positiveWords[word]
		_, isNeg := negativeWords[word]
		switch {
		case isPos && !flip, isNeg && flip:
			pos++
		case isNeg, isPos:
			neg++
		}
		_, flip = flipWords[word]
	}

	total := pos + neg
	switch {
	case total == 0 || pos == neg:
		return &model.Sentiment{Label: model.SentimentNeutral, Score: 0.5}, nil
	case pos > neg:
		return &model.Sentiment{Label: model.SentimentPositive, Score: 0.5 + 0.5*float64(pos-neg)/float64(total)}, nil
	default:
		return &model.Sentiment{Label: model.SentimentNegative, Score: 0.5 + 0.5*float64(neg-pos)/float64(total)}, nil
	}
}

func wordSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
