package service

import (
	"regexp"
	"strings"

	"voiceorder/internal/model"
	"voiceorder/internal/utils"
)

// negationPattern scans the whole utterance, not just the clause that
// matched the intent keyword
var negationPattern = regexp.MustCompile(`\b(?:no|not|don't|dont|do not|never|can't|cant|cannot|won't|wont|will not)\b`)

// HasNegation reports whether the utterance contains a negation cue
func HasNegation(utterance string) bool {
	return negationPattern.MatchString(utils.Lower(utterance))
}

// DeclinedLabel is the lexical refusal form of an intent label
func DeclinedLabel(tag model.IntentTag) string {
	return "Do not " + strings.ToLower(tag.Label())
}

// AdjustForNegation rewrites order-like intents into their declined form when
// the utterance is negated. Every other intent is returned unchanged.
func AdjustForNegation(utterance string, result model.ClassificationResult) model.ClassificationResult {
	if result.Source != model.SourceRules || !result.Intent.IsNegatable() || !HasNegation(utterance) {
		return result
	}

	label := DeclinedLabel(result.Intent)
	result.Label = label
	result.Response = label + "."
	result.Negated = true
	return result
}
