package utils

import (
	"sort"
	"strings"
	"unicode"
)

// englishStopwords is the NLTK English stopword list
var englishStopwords = toSet([]string{
	"i", "me", "my", "myself", "we", "our", "ours", "ourselves", "you", "you're",
	"you've", "you'll", "you'd", "your", "yours", "yourself", "yourselves", "he",
	"him", "his", "himself", "she", "she's", "her", "hers", "herself", "it", "it's",
	"its", "itself", "they", "them", "their", "theirs", "themselves", "what",
	"which", "who", "whom", "this", "that", "that'll", "these", "those", "am", "is",
	"are", "was", "were", "be", "been", "being", "have", "has", "had", "having",
	"do", "does", "did", "doing", "a", "an", "the", "and", "but", "if", "or",
	"because", "as", "until", "while", "of", "at", "by", "for", "with", "about",
	"against", "between", "into", "through", "during", "before", "after", "above",
	"below", "to", "from", "up", "down", "in", "out", "on", "off", "over", "under",
	"again", "further", "then", "once", "here", "there", "when", "where", "why",
	"how", "all", "any", "both", "each", "few", "more", "most", "other", "some",
	"such", "no", "nor", "not", "only", "own", "same", "so", "than", "too", "very",
	"s", "t", "can", "will", "just", "don", "don't", "should", "should've", "now",
	"d", "ll", "m", "o", "re", "ve", "y", "ain", "aren", "aren't", "couldn",
	"couldn't", "didn", "didn't", "doesn", "doesn't", "hadn", "hadn't", "hasn",
	"hasn't", "haven", "haven't", "isn", "isn't", "ma", "mightn", "mightn't",
	"mustn", "mustn't", "needn", "needn't", "shan", "shan't", "shouldn",
	"shouldn't", "wasn", "wasn't", "weren", "weren't", "won", "won't", "wouldn",
	"wouldn't",
})

// Lower lowercases and trims an utterance, folding typographic apostrophes
// produced by speech engines into ASCII ones.
func Lower(text string) string {
	text = strings.NewReplacer("’", "'", "‘", "'").Replace(text)
	return strings.ToLower(strings.TrimSpace(text))
}

// Tokenize splits lowercased text into alphabetic-only tokens. Tokens carrying
// digits or inner punctuation ("don't", "24h") are dropped.
func Tokenize(text string) []string {
	fields := strings.FieldsFunc(Lower(text), func(r rune) bool {
		return unicode.IsSpace(r) || (unicode.IsPunct(r) && r != '\'') || unicode.IsSymbol(r)
	})

	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		field = strings.Trim(field, "'")
		if field != "" && isAlpha(field) {
			tokens = append(tokens, field)
		}
	}
	return tokens
}

// RemoveStopwords drops English stopwords and any extra words supplied
func RemoveStopwords(tokens []string, extra map[string]struct{}) []string {
	kept := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if _, stop := englishStopwords[token]; stop {
			continue
		}
		if _, stop := extra[token]; stop {
			continue
		}
		kept = append(kept, token)
	}
	return kept
}

// FrequentWords returns the tokens that occur in at least minQuestions of the
// given questions after stopword removal. A token counts once per question.
func FrequentWords(questions []string, minQuestions int) map[string]struct{} {
	counts := make(map[string]int)
	for _, question := range questions {
		seen := make(map[string]struct{})
		for _, token := range RemoveStopwords(Tokenize(question), nil) {
			if _, dup := seen[token]; dup {
				continue
			}
			seen[token] = struct{}{}
			counts[token]++
		}
	}

	frequent := make(map[string]struct{})
	for token, n := range counts {
		if n >= minQuestions {
			frequent[token] = struct{}{}
		}
	}
	return frequent
}

// Normalizer turns raw text into the space-joined token form used as FAQ keys
type Normalizer struct {
	frequent map[string]struct{}
}

// NewNormalizer creates a normalizer that also strips the given frequent words
func NewNormalizer(frequent map[string]struct{}) *Normalizer {
	return &Normalizer{frequent: frequent}
}

// Process lowercases, tokenizes and strips stopwords and frequent words
func (n *Normalizer) Process(text string) string {
	return strings.Join(RemoveStopwords(Tokenize(text), n.frequent), " ")
}

// FrequentList returns the frequent words in sorted order
func (n *Normalizer) FrequentList() []string {
	words := make([]string, 0, len(n.frequent))
	for w := range n.frequent {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

func isAlpha(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
