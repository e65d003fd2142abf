package service

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoReference marks an answer that cannot be validated because the
// question carries no reference answer. Distinct from "invalid": callers must
// not report a false negative.
var ErrNoReference = errors.New("no reference answer available for validation")

// MatchResult is the outcome of scoring a free-text answer against a
// reference answer.
type MatchResult struct {
	Matches int      `json:"matches"`
	Tokens  []string `json:"tokens"`
	Ratio   float64  `json:"ratio"`
	Valid   bool     `json:"valid"`
}

// ScoreAnswer is a heuristic token-overlap check, not a semantic one: no
// stemming, no synonyms. Reference tokens are the lowercased runs of
// alphanumerics longer than two characters, kept with repeats (a concept the
// reference mentions twice weighs twice). A token counts as matched when it
// appears anywhere inside the lowercased candidate, substring-wise ("class"
// matches inside "subclass"). The answer is valid when at least half the
// tokens (rounded up, floor 1) match.
func ScoreAnswer(reference, candidate string) (MatchResult, error) {
	tokens := referenceTokens(reference)
	if len(tokens) == 0 {
		return MatchResult{}, ErrNoReference
	}

	normalized := strings.ToLower(candidate)
	matches := 0
	for _, t := range tokens {
		if strings.Contains(normalized, t) {
			matches++
		}
	}

	threshold := (len(tokens) + 1) / 2 // ceil(n/2), n >= 1 so floor of 1 holds
	return MatchResult{
		Matches: matches,
		Tokens:  tokens,
		Ratio:   float64(matches) / float64(len(tokens)),
		Valid:   matches >= threshold,
	}, nil
}

func referenceTokens(reference string) []string {
	lowered := strings.ToLower(reference)
	fields := strings.FieldsFunc(lowered, func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
	})

	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) > 2 {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// ValidationFeedback phrases a MatchResult for the student.
func ValidationFeedback(result MatchResult) string {
	if result.Valid {
		return fmt.Sprintf(
			"The pseudo-code contains %d/%d key tokens and looks correct. Suggestions: add edge-case handling and comments.",
			result.Matches, len(result.Tokens))
	}

	hints := result.Tokens
	if len(hints) > 3 {
		hints = hints[:3]
	}
	return fmt.Sprintf(
		"The pseudo-code is missing key concepts (%d/%d). Look for: %s.",
		result.Matches, len(result.Tokens), strings.Join(hints, ", "))
}
