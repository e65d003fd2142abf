package service

import (
	"strings"

	"careerready_backend/internal/model"
)

// FilterSuggestions produces the Connections candidate list. With an empty
// query, candidates are corpus members sharing at least one interest tag with
// self (exact, case-sensitive tag comparison). With a query, the whole corpus
// is name-filtered by case-insensitive substring instead. Self never appears,
// duplicates are dropped by id, and favorites sort before non-favorites while
// each group keeps the corpus order (no secondary sort key — insertion-order
// stable on purpose).
func FilterSuggestions(self model.User, corpus []model.User, query string) []model.User {
	loweredQuery := strings.ToLower(strings.TrimSpace(query))
	seen := make(map[string]bool, len(corpus))

	var favorites, others []model.User
	for _, candidate := range corpus {
		if candidate.ID == self.ID || seen[candidate.ID] {
			continue
		}

		if loweredQuery == "" {
			if !sharesInterest(self.Interests, candidate.Interests) {
				continue
			}
		} else if !strings.Contains(strings.ToLower(candidate.Name), loweredQuery) {
			continue
		}

		seen[candidate.ID] = true
		if self.Favorites.Contains(candidate.ID) {
			favorites = append(favorites, candidate)
		} else {
			others = append(others, candidate)
		}
	}

	return append(favorites, others...)
}

func sharesInterest(a, b model.Interests) bool {
	for _, tag := range a {
		if b.Contains(tag) {
			return true
		}
	}
	return false
}

// SuggestTags matches a typed prefix against the tag vocabulary. Forms are
// normalized (lowercased, non-alphanumerics stripped); a tag is accepted when
// either normalized form contains the other, or their Levenshtein distance is
// at most 2. An empty input accepts everything. Results keep vocabulary order
// and are capped at 6 — no ranking by distance.
func SuggestTags(input string, vocabulary []string) []string {
	const maxSuggestions = 6

	normalizedInput := normalizeTag(input)
	var out []string
	for _, tag := range vocabulary {
		if len(out) == maxSuggestions {
			break
		}
		if normalizedInput == "" {
			out = append(out, tag)
			continue
		}

		normalized := normalizeTag(tag)
		if strings.Contains(normalized, normalizedInput) ||
			strings.Contains(normalizedInput, normalized) ||
			levenshtein(normalized, normalizedInput) <= 2 {
			out = append(out, tag)
		}
	}
	return out
}

func normalizeTag(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func levenshtein(x, y string) int {
	m, n := len(x), len(y)
	dp := make([][]int, m+1)
	for i := range dp {
		dp[i] = make([]int, n+1)
		dp[i][0] = i
	}
	for j := 0; j <= n; j++ {
		dp[0][j] = j
	}

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			if x[i-1] == y[j-1] {
				dp[i][j] = dp[i-1][j-1]
				continue
			}
			dp[i][j] = min3(dp[i-1][j]+1, dp[i][j-1]+1, dp[i-1][j-1]+1)
		}
	}
	return dp[m][n]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
