package service

import (
	"strings"
	"testing"
)

func TestSelectOfflineResponseKeywordRouting(t *testing.T) {
	cases := []struct {
		message string
		expect  string
	}{
		{"explain linked list please", "linked list"},
		{"how does binary search work?", "Binary Search"},
		{"what is a hash table", "hash table"},
		{"give me study tips", "Study Techniques"},
		{"any tips?", "Study Techniques"},
	}
	for _, tc := range cases {
		got := SelectOfflineResponse(tc.message)
		if !strings.Contains(got, tc.expect) {
			t.Errorf("message %q: expected response containing %q, got %q", tc.message, tc.expect, got)
		}
	}
}

func TestSelectOfflineResponseAllKeywordsRequired(t *testing.T) {
	// "linked" alone must not fire the linked-list entry.
	got := SelectOfflineResponse("what does linked mean")
	if strings.Contains(got, "linear data structure") {
		t.Error("entry fired with only one of its keywords present")
	}
}

func TestSelectOfflineResponseOrderPrecedence(t *testing.T) {
	// A message matching both the study entry and the default must take the
	// earlier, more specific entry.
	got := SelectOfflineResponse("study tips for binary search")
	if !strings.Contains(got, "Binary Search") {
		t.Errorf("expected the binary search entry to win, got %q", got)
	}
}

func TestSelectOfflineResponseFallbackEchoesMessage(t *testing.T) {
	got := SelectOfflineResponse("quantum entanglement basics")
	if !strings.Contains(got, "quantum entanglement basics") {
		t.Errorf("generic fallback should echo the message, got %q", got)
	}
}

func TestSelectOfflineResponsePure(t *testing.T) {
	for _, message := range []string{"", "linked list", "anything else"} {
		first := SelectOfflineResponse(message)
		second := SelectOfflineResponse(message)
		if first == "" {
			t.Errorf("message %q: response must be non-empty", message)
		}
		if first != second {
			t.Errorf("message %q: responses differ between calls", message)
		}
	}
}

func TestSelectOfflineResponseCaseInsensitive(t *testing.T) {
	if SelectOfflineResponse("LINKED LIST") != SelectOfflineResponse("linked list") {
		t.Error("keyword matching should ignore case")
	}
}
