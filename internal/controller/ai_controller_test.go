package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"careerready_backend/internal/service"

	"github.com/gin-gonic/gin"
)

// relayRouter wires the relay endpoints with generation disabled, so every
// response comes from fallback content. That is the offline contract the
// frontend depends on.
func relayRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	ai := NewAIController(
		service.NewSkillGapService(nil, nil),
		service.NewExamService(nil, nil),
		service.NewInterviewService(nil, nil, nil),
		service.NewAnswerService(nil),
	)
	chat := NewStudyChatController(service.NewStudyChatService(nil))

	router := gin.New()
	router.POST("/api/ai/skill-gap", ai.SkillGap)
	router.POST("/api/ai/generate-exam", ai.GenerateExam)
	router.POST("/api/ai/interview-feedback", ai.InterviewFeedback)
	router.POST("/api/ai/explanation", ai.Explanation)
	router.POST("/api/study-chat", chat.Chat)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSkillGapMissingFields(t *testing.T) {
	router := relayRouter()

	w := postJSON(t, router, "/api/ai/skill-gap", `{"role":"Backend Engineer"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if body["error"] != "Missing required fields: role, skills, time" {
		t.Errorf("unexpected error body: %v", body)
	}
}

func TestSkillGapFallbackShape(t *testing.T) {
	router := relayRouter()

	w := postJSON(t, router, "/api/ai/skill-gap", `{"role":"Backend Engineer","skills":["Go"],"time":"6 weeks"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body struct {
		Analysis struct {
			RequiredSkills []string `json:"requiredSkills"`
			MissingSkills  []string `json:"missingSkills"`
		} `json:"analysis"`
		Roadmap    []map[string]any `json:"roadmap"`
		Strategies []map[string]any `json:"strategies"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if len(body.Analysis.RequiredSkills) == 0 || len(body.Roadmap) == 0 || len(body.Strategies) == 0 {
		t.Errorf("incomplete fallback body: %s", w.Body.String())
	}
}

func TestGenerateExamMissingType(t *testing.T) {
	router := relayRouter()

	w := postJSON(t, router, "/api/ai/generate-exam", `{}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Missing exam type") {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}

func TestGenerateExamReturnsBareArray(t *testing.T) {
	router := relayRouter()

	w := postJSON(t, router, "/api/ai/generate-exam", `{"type":"SQL"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var questions []struct {
		ID            string `json:"id"`
		Type          string `json:"type"`
		CorrectAnswer string `json:"correctAnswer"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &questions); err != nil {
		t.Fatalf("body must be a bare array: %v", err)
	}
	if len(questions) != 10 {
		t.Fatalf("expected 10 SQL questions, got %d", len(questions))
	}
	for _, q := range questions {
		if q.Type != "mcq" && q.Type != "explanation" {
			t.Errorf("%s: unexpected type %q", q.ID, q.Type)
		}
		if q.CorrectAnswer == "" {
			t.Errorf("%s: empty correctAnswer", q.ID)
		}
	}
}

func TestInterviewFeedbackShape(t *testing.T) {
	router := relayRouter()

	w := postJSON(t, router, "/api/ai/interview-feedback", `{}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body struct {
		ConfidenceScore int `json:"confidenceScore"`
		Feedback        struct {
			Tips []string `json:"tips"`
		} `json:"feedback"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if body.ConfidenceScore < 60 || body.ConfidenceScore > 100 {
		t.Errorf("confidence %d out of range", body.ConfidenceScore)
	}
	if len(body.Feedback.Tips) == 0 {
		t.Error("expected tips")
	}
}

func TestExplanationValidateFlow(t *testing.T) {
	router := relayRouter()

	w := postJSON(t, router, "/api/ai/explanation", `{
		"question": "Describe binary search",
		"answer": "split the sorted array in half and compare with the middle",
		"correctAnswer": "binary search tree sorted middle half",
		"validate": true
	}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body struct {
		Valid    bool     `json:"valid"`
		Feedback string   `json:"feedback"`
		Matches  int      `json:"matches"`
		Tokens   []string `json:"tokens"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if body.Matches < 1 || len(body.Tokens) == 0 || body.Feedback == "" {
		t.Errorf("unexpected validation body: %s", w.Body.String())
	}
}

func TestExplanationValidateWithoutReference(t *testing.T) {
	router := relayRouter()

	w := postJSON(t, router, "/api/ai/explanation", `{"question":"Q","answer":"A","validate":true}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body struct {
		Valid    bool   `json:"valid"`
		Feedback string `json:"feedback"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if body.Valid || !strings.Contains(body.Feedback, "No reference answer") {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}

func TestExplanationRequiresQuestion(t *testing.T) {
	router := relayRouter()

	w := postJSON(t, router, "/api/ai/explanation", `{"correctAnswer":"x"}`)
	if w.Code != http.StatusBadRequest || !strings.Contains(w.Body.String(), "Missing question") {
		t.Errorf("expected 400 Missing question, got %d %s", w.Code, w.Body.String())
	}
}

func TestExplanationRequiresCorrectAnswer(t *testing.T) {
	router := relayRouter()

	w := postJSON(t, router, "/api/ai/explanation", `{"question":"Q"}`)
	if w.Code != http.StatusBadRequest || !strings.Contains(w.Body.String(), "Missing correctAnswer") {
		t.Errorf("expected 400 Missing correctAnswer, got %d %s", w.Code, w.Body.String())
	}
}

func TestStudyChatRequiresMessage(t *testing.T) {
	router := relayRouter()

	for _, body := range []string{`{}`, `{"message":"   "}`} {
		w := postJSON(t, router, "/api/study-chat", body)
		if w.Code != http.StatusBadRequest || !strings.Contains(w.Body.String(), "Message is required") {
			t.Errorf("body %s: expected 400 Message is required, got %d %s", body, w.Code, w.Body.String())
		}
	}
}

func TestStudyChatOfflineResponse(t *testing.T) {
	router := relayRouter()

	w := postJSON(t, router, "/api/study-chat", `{"message":"explain linked list"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body struct {
		Response string `json:"response"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if !strings.Contains(body.Response, "linked list") {
		t.Errorf("expected the linked list offline response, got %q", body.Response)
	}
}
