package service

import (
	"context"
	"encoding/json"
	"fmt"

	"careerready_backend/internal/model"
	"careerready_backend/internal/repository"
	"careerready_backend/pkg/logger"
	"careerready_backend/pkg/monitoring"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

type ExamService struct {
	AI       Generator
	ExamRepo *repository.ExamRepository
}

func NewExamService(ai Generator, examRepo *repository.ExamRepository) *ExamService {
	return &ExamService{AI: ai, ExamRepo: examRepo}
}

var examSchema = &genai.Schema{
	Type: genai.TypeArray,
	Items: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"id":            {Type: genai.TypeString},
			"type":          {Type: genai.TypeString, Enum: []string{"mcq", "explanation"}},
			"question":      {Type: genai.TypeString},
			"options":       {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
			"correctAnswer": {Type: genai.TypeString},
			"explanation":   {Type: genai.TypeString},
		},
		Required: []string{"id", "type", "question", "correctAnswer", "explanation"},
	},
}

// Generate builds a mock exam for a subject. Generated questions are sanity
// checked; a failed or malformed generation resolves to the static bank for
// the subject (DSA when the subject is unknown).
func (s *ExamService) Generate(ctx context.Context, examType string) []model.Question {
	if s.AI != nil {
		prompt := fmt.Sprintf("Generate a 10-question mock exam for %s including MCQs and basic coding theory questions that require a written explanation.", examType)

		raw, err := s.AI.GenerateJSON(ctx, prompt, examSchema)
		if err == nil {
			var questions []model.Question
			if jsonErr := json.Unmarshal([]byte(raw), &questions); jsonErr == nil {
				if cleaned := sanitizeQuestions(questions, examType); len(cleaned) > 0 {
					return cleaned
				}
			}
			err = fmt.Errorf("unusable exam payload: %s", raw)
		}
		logger.Log.Warn("exam generation failed, serving question bank",
			zap.String("type", examType), zap.Error(err))
	}

	monitoring.AIFallbackCounter.WithLabelValues("generate-exam").Inc()

	if questions, ok := mockExamBank[examType]; ok {
		return questions
	}
	return mockExamBank["DSA"]
}

// sanitizeQuestions drops generated items that violate the question contract
// and backfills missing ids.
func sanitizeQuestions(questions []model.Question, examType string) []model.Question {
	cleaned := make([]model.Question, 0, len(questions))
	for i, q := range questions {
		if q.Question == "" || q.CorrectAnswer == "" {
			continue
		}
		if q.Type != model.QuestionMCQ && q.Type != model.QuestionExplanation {
			continue
		}
		if q.Type == model.QuestionMCQ && len(q.Options) < 2 {
			continue
		}
		if q.ID == "" {
			q.ID = fmt.Sprintf("%s-%d", examType, i+1)
		}
		cleaned = append(cleaned, q)
	}
	return cleaned
}

// SaveResult persists a finished attempt. Results are immutable: there is no
// update path.
func (s *ExamService) SaveResult(result *model.ExamResult) error {
	return s.ExamRepo.Create(result)
}

func (s *ExamService) ResultsForUser(userID string) ([]model.ExamResult, error) {
	return s.ExamRepo.FindByUserID(userID)
}
