package service

import (
	"fmt"

	"voiceorder/internal/model"
	"voiceorder/internal/utils"

	"github.com/sirupsen/logrus"
)

// MatchMode selects a tuned FAQ matching profile. The threshold, the scorer
// and frequent-word stripping belong to the mode and are never set separately.
type MatchMode string

const (
	MatchTokenSet MatchMode = "token_set"
	MatchRatio    MatchMode = "ratio"

	// DefaultFrequentMin is the number of FAQ questions a word must occur in
	// before it is treated as filler
	DefaultFrequentMin = 5
)

type matchProfile struct {
	threshold     float64
	stripFrequent bool
	score         func(a, b string) float64
}

var matchProfiles = map[MatchMode]matchProfile{
	MatchTokenSet: {threshold: 75, stripFrequent: true, score: utils.TokenSetRatio},
	MatchRatio:    {threshold: 60, stripFrequent: false, score: utils.Ratio},
}

// FAQMatch is the best scoring FAQ entry for an utterance
type FAQMatch struct {
	Entry model.FAQEntry
	Score float64
}

// FAQMatcher fuzzy-matches utterances against a preprocessed question table.
// It is immutable after construction and safe for concurrent use.
type FAQMatcher struct {
	mode       MatchMode
	profile    matchProfile
	normalizer *utils.Normalizer
	entries    []model.FAQEntry
}

// NewFAQMatcher preprocesses the corpus. An empty corpus yields a matcher in
// the unavailable state rather than an error.
func NewFAQMatcher(corpus []model.FAQEntry, mode MatchMode, frequentMin int) (*FAQMatcher, error) {
	profile, ok := matchProfiles[mode]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMatchMode, mode)
	}
	if frequentMin <= 0 {
		frequentMin = DefaultFrequentMin
	}

	m := &FAQMatcher{mode: mode, profile: profile}
	if len(corpus) == 0 {
		m.normalizer = utils.NewNormalizer(nil)
		return m, nil
	}

	var frequent map[string]struct{}
	if profile.stripFrequent {
		questions := make([]string, len(corpus))
		for i, entry := range corpus {
			questions[i] = entry.Question
		}
		frequent = utils.FrequentWords(questions, frequentMin)
	}
	m.normalizer = utils.NewNormalizer(frequent)

	index := make(map[string]int, len(corpus))
	for _, entry := range corpus {
		key := m.normalizer.Process(entry.Question)
		if key == "" {
			logrus.WithField("question", entry.Question).Debug("FAQ question has no content words, skipped")
			continue
		}
		entry.Key = key
		// a later duplicate key replaces the earlier answer
		if i, dup := index[key]; dup {
			m.entries[i] = entry
			continue
		}
		index[key] = len(m.entries)
		m.entries = append(m.entries, entry)
	}

	logrus.WithFields(logrus.Fields{
		"mode":           mode,
		"entries":        len(m.entries),
		"frequent_words": m.normalizer.FrequentList(),
	}).Info("FAQ matcher ready")

	return m, nil
}

// Available reports whether the matcher has a usable corpus
func (m *FAQMatcher) Available() bool {
	return m != nil && len(m.entries) > 0
}

// Mode returns the tuned profile in use
func (m *FAQMatcher) Mode() MatchMode {
	return m.mode
}

// Threshold returns the acceptance score of the active profile
func (m *FAQMatcher) Threshold() float64 {
	return m.profile.threshold
}

// Len returns the number of distinct processed questions
func (m *FAQMatcher) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

// Match returns the best entry scoring at or above the threshold, or nil.
// ErrFAQUnavailable is returned when there is no corpus to match against.
func (m *FAQMatcher) Match(utterance string) (*FAQMatch, error) {
	if !m.Available() {
		return nil, ErrFAQUnavailable
	}

	processed := m.normalizer.Process(utterance)
	if processed == "" {
		return nil, nil
	}

	best, bestScore := -1, -1.0
	for i, entry := range m.entries {
		if score := m.profile.score(processed, entry.Key); score > bestScore {
			best, bestScore = i, score
		}
	}

	if best < 0 || bestScore < m.profile.threshold {
		return nil, nil
	}
	return &FAQMatch{Entry: m.entries[best], Score: bestScore}, nil
}
