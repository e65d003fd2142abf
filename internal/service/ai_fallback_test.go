package service

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestSkillGapFallbackOnError(t *testing.T) {
	svc := NewSkillGapService(&fakeGenerator{err: errors.New("boom")}, nil)

	got := svc.Analyze(context.Background(), "Backend Engineer", []string{"Go"}, "6 weeks")
	if got == nil {
		t.Fatal("fallback must never be nil")
	}
	if len(got.Analysis.RequiredSkills) == 0 || len(got.Roadmap) != 3 || len(got.Strategies) != 3 {
		t.Errorf("unexpected fallback shape: %+v", got)
	}
}

func TestSkillGapFallbackWithoutGenerator(t *testing.T) {
	svc := NewSkillGapService(nil, nil)
	if svc.Analyze(context.Background(), "SRE", []string{"Linux"}, "2 weeks") == nil {
		t.Fatal("nil generator must still produce an analysis")
	}
}

func TestSkillGapUsesModelOutput(t *testing.T) {
	payload := `{
		"analysis": {"requiredSkills": ["Go"], "missingSkills": ["Kubernetes"]},
		"roadmap": [{"phase": "Phase 1", "topics": ["Go"], "duration": "1 week"}],
		"strategies": [{"phase": "Phase 1", "strategy": "build", "timeAllocation": "10 hours"}]
	}`
	gen := &fakeGenerator{json: payload}
	svc := NewSkillGapService(gen, nil)

	got := svc.Analyze(context.Background(), "Backend Engineer", []string{"Go"}, "6 weeks")
	if len(got.Analysis.MissingSkills) != 1 || got.Analysis.MissingSkills[0] != "Kubernetes" {
		t.Errorf("expected model output, got %+v", got)
	}
	if len(gen.prompts) != 1 || !strings.Contains(gen.prompts[0], "Backend Engineer") {
		t.Errorf("prompt should carry the role, got %v", gen.prompts)
	}
}

func TestInterviewFeedbackFallbackRanges(t *testing.T) {
	svc := NewInterviewService(&fakeGenerator{err: errors.New("boom")}, nil, nil)

	for i := 0; i < 50; i++ {
		got := svc.Feedback(context.Background())
		if got.ConfidenceScore < 60 || got.ConfidenceScore > 100 {
			t.Fatalf("confidence %d out of range", got.ConfidenceScore)
		}
		if got.StressLevel < 20 || got.StressLevel > 60 {
			t.Fatalf("stress %d out of range", got.StressLevel)
		}
		if got.ClarityScore < 60 || got.ClarityScore > 100 {
			t.Fatalf("clarity %d out of range", got.ClarityScore)
		}
		if len(got.Feedback.Strengths) == 0 || len(got.Feedback.Weaknesses) == 0 || len(got.Feedback.Tips) == 0 {
			t.Fatal("fallback feedback lists must be populated")
		}
	}
}

func TestExplainKnownQuestionFallback(t *testing.T) {
	svc := NewAnswerService(&fakeGenerator{err: errors.New("boom")})

	got := svc.Explain(context.Background(), "What does JOIN do in SQL?", "", "Combines rows from multiple tables")
	if !strings.Contains(got, "SQL JOIN combines rows") {
		t.Errorf("expected the canned JOIN explanation, got %q", got)
	}
}

func TestExplainDefaultTemplate(t *testing.T) {
	svc := NewAnswerService(nil)

	got := svc.Explain(context.Background(), "Something novel?", "", "42")
	if !strings.Contains(got, "The correct answer is: 42") || !strings.Contains(got, "not provided") {
		t.Errorf("unexpected default explanation: %q", got)
	}

	got = svc.Explain(context.Background(), "Something novel?", "41", "42")
	if !strings.Contains(got, "Your answer was: 41") {
		t.Errorf("expected the student's answer echoed, got %q", got)
	}
}

func TestExplainPrefersModel(t *testing.T) {
	svc := NewAnswerService(&fakeGenerator{text: "model says so"})

	got := svc.Explain(context.Background(), "What does JOIN do in SQL?", "", "x")
	if got != "model says so" {
		t.Errorf("model output should win over the canned table, got %q", got)
	}
}

func TestStudyChatFallsBackToOfflineTable(t *testing.T) {
	svc := NewStudyChatService(&fakeGenerator{err: errors.New("boom")})

	got := svc.Reply(context.Background(), "explain linked list")
	if got != SelectOfflineResponse("explain linked list") {
		t.Errorf("expected the offline response, got %q", got)
	}
}

func TestStudyChatPrefersModel(t *testing.T) {
	svc := NewStudyChatService(&fakeGenerator{text: "Sure! 📚"})
	if got := svc.Reply(context.Background(), "help me study"); got != "Sure! 📚" {
		t.Errorf("expected model output, got %q", got)
	}
}
