package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRatio(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{name: "Identical", a: "pool hours", b: "pool hours", want: 100},
		{name: "One extra char", a: "this is a test", b: "this is a test!", want: 96.5517},
		{name: "One substitution", a: "abc", b: "abd", want: 66.6667},
		{name: "Both empty", a: "", b: "", want: 100},
		{name: "One empty", a: "", b: "pool", want: 0},
		{name: "Disjoint", a: "abc", b: "xyz", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Ratio(tt.a, tt.b), 0.001)
		})
	}
}

func TestTokenSetRatio(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{name: "Reordered", a: "served breakfast", b: "breakfast served", want: 100},
		{name: "Subset", a: "breakfast served", b: "time breakfast served", want: 100},
		{name: "Duplicate tokens", a: "fuzzy wuzzy was a bear", b: "fuzzy fuzzy was a bear", want: 100},
		{name: "Empty side", a: "", b: "breakfast", want: 0},
		{name: "Both empty", a: "", b: "", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, TokenSetRatio(tt.a, tt.b), 0.001)
		})
	}
}

func TestTokenSetRatio_PartialOverlap(t *testing.T) {
	// common "pool", remainders "hours" vs "towels": best is base vs "pool hours"/"pool towels"
	score := TokenSetRatio("pool hours", "pool towels")
	assert.InDelta(t, Ratio("pool hours", "pool towels"), score, 0.001)
	assert.Greater(t, score, 60.0)
	assert.Less(t, score, 100.0)

	assert.Less(t, TokenSetRatio("want food", "wifi password"), 75.0)
}
