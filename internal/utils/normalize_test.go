package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "Punctuation and case",
			input: "  Hello, I don't want FOOD!  ",
			want:  []string{"hello", "i", "want", "food"},
		},
		{
			name:  "Digits are not alphabetic",
			input: "room 204 needs towels",
			want:  []string{"room", "needs", "towels"},
		},
		{
			name:  "Curly apostrophe",
			input: "I can’t sleep",
			want:  []string{"i", "sleep"},
		},
		{
			name:  "Empty",
			input: "",
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.input))
		})
	}
}

func TestLower(t *testing.T) {
	assert.Equal(t, "i don't want food", Lower("  I DON’T want food "))
}

func TestRemoveStopwords(t *testing.T) {
	tokens := []string{"what", "time", "is", "breakfast", "served"}
	assert.Equal(t, []string{"time", "breakfast", "served"}, RemoveStopwords(tokens, nil))

	extra := map[string]struct{}{"time": {}}
	assert.Equal(t, []string{"breakfast", "served"}, RemoveStopwords(tokens, extra))
}

func TestFrequentWords(t *testing.T) {
	questions := []string{
		"Is the pool available?",
		"Is the gym available today?",
		"Is room service available?",
		"Is a crib available, is a crib available?",
		"Is parking available?",
		"What time is breakfast?",
	}

	frequent := FrequentWords(questions, 5)
	assert.Equal(t, map[string]struct{}{"available": {}}, frequent)

	// a token repeated inside one question counts once
	assert.NotContains(t, FrequentWords(questions, 6), "available")
	assert.Empty(t, FrequentWords(nil, 5))
}

func TestNormalizerProcess(t *testing.T) {
	n := NewNormalizer(map[string]struct{}{"available": {}})
	assert.Equal(t, "pool", n.Process("Is the pool available?"))
	assert.Equal(t, "breakfast served", n.Process("When is breakfast served"))
	assert.Equal(t, "", n.Process("is it available"))
	assert.Equal(t, []string{"available"}, n.FrequentList())
}
