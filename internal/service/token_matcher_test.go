package service

import (
	"errors"
	"strings"
	"testing"
)

func TestScoreAnswerIdenticalText(t *testing.T) {
	reference := "Use a stack to reverse the linked list iteratively"
	result, err := ScoreAnswer(reference, reference)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Valid {
		t.Error("identical text should validate")
	}
	if result.Matches != len(result.Tokens) {
		t.Errorf("expected all %d tokens matched, got %d", len(result.Tokens), result.Matches)
	}
	if result.Ratio != 1.0 {
		t.Errorf("expected ratio 1.0, got %f", result.Ratio)
	}
}

func TestScoreAnswerUnrelatedText(t *testing.T) {
	result, err := ScoreAnswer(
		"binary search divides the sorted array in half each iteration",
		"pineapple pizza weather forecast",
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Valid {
		t.Error("unrelated text should not validate")
	}
	// Containment is substring-based: "the" sits inside "weather", so a
	// single incidental match survives even here.
	if result.Matches != 1 {
		t.Errorf("expected 1 incidental match, got %d", result.Matches)
	}
}

func TestScoreAnswerNoReference(t *testing.T) {
	for _, reference := range []string{"", "a an to", "!!! ??"} {
		_, err := ScoreAnswer(reference, "anything at all")
		if !errors.Is(err, ErrNoReference) {
			t.Errorf("reference %q: expected ErrNoReference, got %v", reference, err)
		}
	}
}

func TestScoreAnswerTokenization(t *testing.T) {
	// Short words drop out, longer ones keep repeats.
	result, err := ScoreAnswer("the map maps a key to a value, key first", "irrelevant")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"the", "map", "maps", "key", "value", "key", "first"}
	if len(result.Tokens) != len(want) {
		t.Fatalf("expected tokens %v, got %v", want, result.Tokens)
	}
	for i, tok := range want {
		if result.Tokens[i] != tok {
			t.Errorf("token %d: expected %q, got %q", i, tok, result.Tokens[i])
		}
	}
}

func TestScoreAnswerSubstringMatch(t *testing.T) {
	// "authentication" in the candidate contains the token "authentication",
	// and "token" matches inside "tokens".
	result, err := ScoreAnswer("authentication token", "use authentication tokens here")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Matches != 2 {
		t.Errorf("expected 2 matches, got %d", result.Matches)
	}
	if !result.Valid {
		t.Error("expected valid")
	}
}

func TestScoreAnswerAbbreviationDoesNotMatch(t *testing.T) {
	// "auth" does not contain "authentication": containment runs reference
	// token into candidate, never the reverse.
	result, err := ScoreAnswer("authentication token", "the auth token here")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Tokens) != 2 {
		t.Fatalf("expected 2 tokens, got %v", result.Tokens)
	}
	if result.Matches != 1 {
		t.Errorf("expected 1 match, got %d", result.Matches)
	}
	if !result.Valid { // threshold ceil(2/2) = 1
		t.Error("one of two tokens should validate")
	}
}

func TestScoreAnswerThreshold(t *testing.T) {
	// Four tokens, threshold ceil(4/2)=2.
	reference := "stack queue heap graph"
	cases := []struct {
		candidate string
		valid     bool
	}{
		{"nothing relevant", false},
		{"a stack only", false},
		{"stack and queue", true},
		{"stack queue heap graph all of them", true},
	}
	for _, tc := range cases {
		result, err := ScoreAnswer(reference, tc.candidate)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Valid != tc.valid {
			t.Errorf("candidate %q: expected valid=%v, got %v (%d/%d)",
				tc.candidate, tc.valid, result.Valid, result.Matches, len(result.Tokens))
		}
	}
}

func TestScoreAnswerSingleTokenFloor(t *testing.T) {
	// One token means the threshold floors at 1.
	result, err := ScoreAnswer("recursion", "solve it with recursion")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Valid {
		t.Error("single matched token should validate")
	}

	result, err = ScoreAnswer("recursion", "use a loop")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Valid {
		t.Error("single unmatched token should not validate")
	}
}

func TestScoreAnswerCaseInsensitive(t *testing.T) {
	result, err := ScoreAnswer("Binary Search Tree", "BINARY search TREE")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Matches != 3 {
		t.Errorf("expected 3 matches, got %d", result.Matches)
	}
}

func TestValidationFeedbackPhrasing(t *testing.T) {
	valid, _ := ScoreAnswer("stack queue", "stack queue")
	msg := ValidationFeedback(valid)
	if !strings.Contains(msg, "2/2") || !strings.Contains(msg, "looks correct") {
		t.Errorf("unexpected valid feedback: %q", msg)
	}

	invalid, _ := ScoreAnswer("stack queue heap graph tree", "nothing")
	msg = ValidationFeedback(invalid)
	if !strings.Contains(msg, "0/5") {
		t.Errorf("unexpected invalid feedback: %q", msg)
	}
	// Hints cap at the first three tokens.
	if !strings.Contains(msg, "stack, queue, heap") || strings.Contains(msg, "graph") {
		t.Errorf("expected first three tokens as hints: %q", msg)
	}
}
