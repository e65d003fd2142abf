package service

import (
	"context"
	"errors"
	"testing"

	"careerready_backend/internal/model"

	"google.golang.org/genai"
)

// fakeGenerator is the Generator double used across the relay service tests.
type fakeGenerator struct {
	json    string
	text    string
	err     error
	prompts []string
}

func (f *fakeGenerator) GenerateJSON(ctx context.Context, prompt string, schema *genai.Schema) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.json, f.err
}

func (f *fakeGenerator) GenerateText(ctx context.Context, system, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.text, f.err
}

func TestExamBankShape(t *testing.T) {
	for examType, questions := range mockExamBank {
		if len(questions) == 0 {
			t.Errorf("%s: bank must not be empty", examType)
		}
		ids := make(map[string]bool, len(questions))
		for _, q := range questions {
			if q.Type != model.QuestionMCQ && q.Type != model.QuestionExplanation {
				t.Errorf("%s/%s: unexpected type %q", examType, q.ID, q.Type)
			}
			if q.Question == "" || q.CorrectAnswer == "" || q.Explanation == "" {
				t.Errorf("%s/%s: incomplete question", examType, q.ID)
			}
			if q.Type == model.QuestionMCQ && len(q.Options) < 2 {
				t.Errorf("%s/%s: mcq needs options", examType, q.ID)
			}
			if ids[q.ID] {
				t.Errorf("%s: duplicate id %q", examType, q.ID)
			}
			ids[q.ID] = true
		}
	}
}

func TestGenerateFallsBackOnError(t *testing.T) {
	svc := NewExamService(&fakeGenerator{err: errors.New("quota exceeded")}, nil)

	got := svc.Generate(context.Background(), "SQL")
	if len(got) != len(mockExamBank["SQL"]) {
		t.Fatalf("expected the SQL bank, got %d questions", len(got))
	}
	if got[0].ID != mockExamBank["SQL"][0].ID {
		t.Errorf("expected bank question %q first, got %q", mockExamBank["SQL"][0].ID, got[0].ID)
	}
}

func TestGenerateUnknownTypeFallsBackToDSA(t *testing.T) {
	svc := NewExamService(nil, nil)

	got := svc.Generate(context.Background(), "Underwater Basket Weaving")
	if len(got) == 0 || got[0].ID != mockExamBank["DSA"][0].ID {
		t.Error("unknown subject should serve the DSA bank")
	}
}

func TestGenerateUsesModelOutput(t *testing.T) {
	payload := `[
		{"id":"g-1","type":"mcq","question":"Pick one","options":["a","b"],"correctAnswer":"a","explanation":"because"},
		{"id":"g-2","type":"explanation","question":"Explain it","correctAnswer":"Key points","explanation":"tests depth"}
	]`
	svc := NewExamService(&fakeGenerator{json: payload}, nil)

	got := svc.Generate(context.Background(), "DSA")
	if len(got) != 2 || got[0].ID != "g-1" || got[1].ID != "g-2" {
		t.Fatalf("expected generated questions, got %+v", got)
	}
}

func TestGenerateRejectsMalformedOutput(t *testing.T) {
	// Valid JSON, but every item violates the question contract.
	payload := `[{"id":"x","type":"truefalse","question":"?","correctAnswer":"y","explanation":"z"}]`
	svc := NewExamService(&fakeGenerator{json: payload}, nil)

	got := svc.Generate(context.Background(), "SQL")
	if len(got) != len(mockExamBank["SQL"]) {
		t.Error("unusable payload should fall back to the bank")
	}
}

func TestSanitizeQuestions(t *testing.T) {
	in := []model.Question{
		{Type: model.QuestionMCQ, Question: "ok", Options: []string{"a", "b"}, CorrectAnswer: "a"},
		{Type: model.QuestionMCQ, Question: "one option", Options: []string{"a"}, CorrectAnswer: "a"},
		{Type: model.QuestionExplanation, Question: "", CorrectAnswer: "a"},
		{ID: "keep", Type: model.QuestionExplanation, Question: "fine", CorrectAnswer: "a"},
	}

	got := sanitizeQuestions(in, "SQL")
	if len(got) != 2 {
		t.Fatalf("expected 2 surviving questions, got %d", len(got))
	}
	if got[0].ID != "SQL-1" {
		t.Errorf("expected backfilled id SQL-1, got %q", got[0].ID)
	}
	if got[1].ID != "keep" {
		t.Errorf("existing ids must be preserved, got %q", got[1].ID)
	}
}
