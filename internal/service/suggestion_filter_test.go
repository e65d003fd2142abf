package service

import (
	"testing"

	"careerready_backend/internal/model"
)

func suggestionUser(id, name string, interests ...string) model.User {
	u := model.User{Name: name, Interests: interests}
	u.ID = id
	return u
}

func suggestionIDs(users []model.User) []string {
	ids := make([]string, len(users))
	for i, u := range users {
		ids[i] = u.ID
	}
	return ids
}

func TestFilterSuggestionsSharedInterest(t *testing.T) {
	self := suggestionUser("self", "Me", "Backend", "Databases")
	corpus := []model.User{
		suggestionUser("a", "Alice", "Backend"),
		suggestionUser("b", "Bob", "Frontend"),
		suggestionUser("c", "Carol", "Databases", "DevOps"),
		self,
	}

	got := FilterSuggestions(self, corpus, "")
	ids := suggestionIDs(got)
	if len(ids) != 2 || ids[0] != "a" || ids[1] != "c" {
		t.Errorf("expected [a c], got %v", ids)
	}
}

func TestFilterSuggestionsInterestCaseSensitive(t *testing.T) {
	self := suggestionUser("self", "Me", "backend")
	corpus := []model.User{suggestionUser("a", "Alice", "Backend")}

	if got := FilterSuggestions(self, corpus, ""); len(got) != 0 {
		t.Errorf("tag comparison must be exact, got %v", suggestionIDs(got))
	}
}

func TestFilterSuggestionsQuerySearchesWholeCorpus(t *testing.T) {
	// With a query, shared interests stop mattering.
	self := suggestionUser("self", "Me", "Backend")
	corpus := []model.User{
		suggestionUser("a", "Alana", "Frontend"),
		suggestionUser("b", "Bob", "Backend"),
	}

	got := FilterSuggestions(self, corpus, "ALA")
	ids := suggestionIDs(got)
	if len(ids) != 1 || ids[0] != "a" {
		t.Errorf("expected [a], got %v", ids)
	}
}

func TestFilterSuggestionsSelfExcluded(t *testing.T) {
	self := suggestionUser("self", "Selfie", "Backend")
	corpus := []model.User{self}

	if got := FilterSuggestions(self, corpus, ""); len(got) != 0 {
		t.Errorf("self must never appear, got %v", suggestionIDs(got))
	}
	if got := FilterSuggestions(self, corpus, "self"); len(got) != 0 {
		t.Errorf("self must never appear even under a matching query, got %v", suggestionIDs(got))
	}
}

func TestFilterSuggestionsFavoritesFirstStable(t *testing.T) {
	self := suggestionUser("self", "Me", "Go")
	self.Favorites = model.StringList{"c", "a"}
	corpus := []model.User{
		suggestionUser("a", "Alice", "Go"),
		suggestionUser("b", "Bob", "Go"),
		suggestionUser("c", "Carol", "Go"),
		suggestionUser("d", "Dave", "Go"),
	}

	got := FilterSuggestions(self, corpus, "")
	ids := suggestionIDs(got)
	// Favorites keep corpus order (a before c), then the rest keep theirs.
	want := []string{"a", "c", "b", "d"}
	if len(ids) != len(want) {
		t.Fatalf("expected %v, got %v", want, ids)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, ids)
		}
	}
}

func TestFilterSuggestionsDedupesByID(t *testing.T) {
	self := suggestionUser("self", "Me", "Go")
	dup := suggestionUser("a", "Alice", "Go")
	corpus := []model.User{dup, dup}

	if got := FilterSuggestions(self, corpus, ""); len(got) != 1 {
		t.Errorf("expected dedupe to 1 entry, got %v", suggestionIDs(got))
	}
}

func TestSuggestTagsSubstringAndDistance(t *testing.T) {
	vocabulary := []string{"Machine Learning", "Frontend", "Backend", "Databases"}

	got := SuggestTags("front", vocabulary)
	if len(got) != 1 || got[0] != "Frontend" {
		t.Errorf("expected [Frontend], got %v", got)
	}

	// One substitution away from "backend".
	got = SuggestTags("bickend", vocabulary)
	if len(got) != 1 || got[0] != "Backend" {
		t.Errorf("expected [Backend], got %v", got)
	}
}

func TestSuggestTagsNormalization(t *testing.T) {
	vocabulary := []string{"Machine Learning"}
	got := SuggestTags("machine-learning", vocabulary)
	if len(got) != 1 {
		t.Errorf("punctuation and case should not matter, got %v", got)
	}
}

func TestSuggestTagsEmptyInputAcceptsAll(t *testing.T) {
	vocabulary := []string{"A", "B", "C"}
	got := SuggestTags("", vocabulary)
	if len(got) != 3 {
		t.Errorf("empty input should accept everything, got %v", got)
	}
}

func TestSuggestTagsCap(t *testing.T) {
	vocabulary := []string{"t1", "t2", "t3", "t4", "t5", "t6", "t7", "t8"}
	got := SuggestTags("", vocabulary)
	if len(got) != 6 {
		t.Errorf("expected cap of 6, got %d", len(got))
	}
	// Vocabulary order, no ranking.
	if got[0] != "t1" || got[5] != "t6" {
		t.Errorf("expected first six in vocabulary order, got %v", got)
	}
}

func TestLevenshtein(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"kitten", "sitting", 3},
		{"backend", "bickend", 1},
	}
	for _, tc := range cases {
		if got := levenshtein(tc.a, tc.b); got != tc.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}
