// Package match scores playback-catalog candidates against a target title.
package match

import "strings"

// Acceptance thresholds in percent. Series titles collide more often
// (sequels, remakes, regional variants sharing a base name), so they
// get a stricter bar than movies.
const (
	MovieThreshold  = 60.0
	SeriesThreshold = 70.0
)

// Ratio computes a similarity between two titles in [0, 1]. Comparison
// is case-insensitive; punctuation, accents and whitespace are left
// untouched. The ratio is twice the longest-common-subsequence length
// divided by the sum of both lengths, so the thresholds above are
// calibrated against this exact metric.
func Ratio(a, b string) float64 {
	x := []rune(strings.ToLower(a))
	y := []rune(strings.ToLower(b))
	if len(x) == 0 && len(y) == 0 {
		return 1.0
	}
	if len(x) == 0 || len(y) == 0 {
		return 0.0
	}
	return 2.0 * float64(lcs(x, y)) / float64(len(x)+len(y))
}

// lcs computes the longest common subsequence length with a
// two-row dynamic program.
func lcs(x, y []rune) int {
	prev := make([]int, len(y)+1)
	cur := make([]int, len(y)+1)
	for i := 1; i <= len(x); i++ {
		for j := 1; j <= len(y); j++ {
			if x[i-1] == y[j-1] {
				cur[j] = prev[j-1] + 1
			} else if prev[j] >= cur[j-1] {
				cur[j] = prev[j]
			} else {
				cur[j] = cur[j-1]
			}
		}
		prev, cur = cur, prev
	}
	return prev[len(y)]
}

// Best scans candidates for the one whose title scores highest against
// target, returning it with its percentage score. Candidates with an
// empty title are skipped. Ties keep the first-seen candidate (the
// comparison is strictly greater). The third return is false when no
// candidate reached minPercent; absence of a match is a normal outcome,
// never an error.
func Best[T any](target string, candidates []T, title func(T) string, minPercent float64) (T, float64, bool) {
	var best T
	bestPercent := 0.0
	found := false
	for _, c := range candidates {
		name := title(c)
		if name == "" {
			continue
		}
		percent := Ratio(target, name) * 100
		if percent > bestPercent {
			bestPercent = percent
			best = c
			found = true
		}
	}
	if !found || bestPercent < minPercent {
		var zero T
		return zero, bestPercent, false
	}
	return best, bestPercent, true
}
