package fuzzy

import (
	"sort"
	"strings"
)

// LevenshteinDistance calculates the edit distance between two strings.
// This measures how many single-character edits (insertions, deletions,
// or substitutions) are required to change one string into another.
func LevenshteinDistance(s1, s2 string) int {
	s1 = normalizeString(s1)
	s2 = normalizeString(s2)

	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}

	r1 := []rune(s1)
	r2 := []rune(s2)
	m := len(r1)
	n := len(r2)

	d := make([][]int, m+1)
	for i := range d {
		d[i] = make([]int, n+1)
	}

	for i := 0; i <= m; i++ {
		d[i][0] = i
	}
	for j := 0; j <= n; j++ {
		d[0][j] = j
	}

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			cost := 0
			if r1[i-1] != r2[j-1] {
				cost = 1
			}
			d[i][j] = min3(
				d[i-1][j]+1,      // deletion
				d[i][j-1]+1,      // insertion
				d[i-1][j-1]+cost, // substitution
			)
		}
	}

	return d[m][n]
}

// Match checks if query fuzzy-matches text within a given threshold.
// threshold is the maximum allowed edit distance per word.
func Match(query, text string, threshold int) bool {
	query = normalizeString(query)
	text = normalizeString(text)

	// If query is contained in text, it's a match
	if strings.Contains(text, query) {
		return true
	}

	// Check if any word in text fuzzy-matches the query
	for _, word := range strings.Fields(text) {
		if LevenshteinDistance(query, word) <= threshold {
			return true
		}
		// Partial match: word starts with query
		if strings.HasPrefix(word, query) {
			return true
		}
	}

	return false
}

// Threshold picks a typo tolerance based on query length
func Threshold(query string) int {
	switch {
	case len(query) <= 3:
		return 1
	case len(query) >= 8:
		return 3
	default:
		return 2
	}
}

// scoreTitle scores how relevant a title is to a query. Higher is better.
func scoreTitle(query, title string) float64 {
	query = normalizeString(query)
	titleNorm := normalizeString(title)
	score := 0.0

	if strings.Contains(titleNorm, query) {
		score += 100.0
		if containsWord(titleNorm, query) {
			score += 50.0
		}
		return score
	}

	for _, word := range strings.Fields(titleNorm) {
		dist := LevenshteinDistance(query, word)
		if dist <= 2 {
			score += 50.0 - float64(dist)*15
		}
		if strings.HasPrefix(word, query) {
			score += 40.0
		}
	}

	return score
}

// RankTitles returns the titles matching query, best match first, capped
// at limit. Used for search suggestions over summary titles.
func RankTitles(query string, titles []string, limit int) []string {
	threshold := Threshold(query)

	type scored struct {
		title string
		score float64
	}

	var matches []scored
	for _, title := range titles {
		if !Match(query, title, threshold) {
			continue
		}
		matches = append(matches, scored{title: title, score: scoreTitle(query, title)})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}

	result := make([]string, len(matches))
	for i, m := range matches {
		result[i] = m.title
	}
	return result
}

func min3(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}

// normalizeString lowercases and collapses whitespace
func normalizeString(s string) string {
	s = strings.ToLower(s)
	return strings.Join(strings.Fields(s), " ")
}

// containsWord checks if text contains query as a whole word
func containsWord(text, query string) bool {
	for _, word := range strings.Fields(text) {
		if word == query {
			return true
		}
	}
	return false
}
