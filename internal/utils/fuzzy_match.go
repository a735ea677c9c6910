package utils

import (
	"sort"
	"strings"
)

// Ratio returns the normalized indel similarity of two strings on a 0-100
// scale: 200*LCS / (len(a)+len(b)). Two empty strings are identical.
func Ratio(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	total := len(ra) + len(rb)
	if total == 0 {
		return 100
	}
	if len(ra) == 0 || len(rb) == 0 {
		return 0
	}
	return 200 * float64(lcsLength(ra, rb)) / float64(total)
}

// TokenSetRatio compares two strings as sets of whitespace separated tokens,
// so reordering and subset phrasing still score high. Returns 0 if either
// side has no tokens.
func TokenSetRatio(a, b string) float64 {
	setA, setB := tokenSet(a), tokenSet(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}

	var common, onlyA, onlyB []string
	for token := range setA {
		if _, ok := setB[token]; ok {
			common = append(common, token)
		} else {
			onlyA = append(onlyA, token)
		}
	}
	for token := range setB {
		if _, ok := setA[token]; !ok {
			onlyB = append(onlyB, token)
		}
	}
	sort.Strings(common)
	sort.Strings(onlyA)
	sort.Strings(onlyB)

	base := strings.Join(common, " ")
	withA := strings.TrimSpace(base + " " + strings.Join(onlyA, " "))
	withB := strings.TrimSpace(base + " " + strings.Join(onlyB, " "))

	if len(common) > 0 && (len(onlyA) == 0 || len(onlyB) == 0) {
		return 100
	}

	best := Ratio(withA, withB)
	if len(common) > 0 {
		best = max(best, Ratio(base, withA), Ratio(base, withB))
	}
	return best
}

func tokenSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, token := range strings.Fields(s) {
		set[token] = struct{}{}
	}
	return set
}

// lcsLength computes the longest common subsequence with two rolling rows
func lcsLength(a, b []rune) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			switch {
			case a[i-1] == b[j-1]:
				curr[j] = prev[j-1] + 1
			case prev[j] >= curr[j-1]:
				curr[j] = prev[j]
			default:
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
