package service

import (
	"context"
	"fmt"

	"careerready_backend/pkg/logger"
	"careerready_backend/pkg/monitoring"

	"go.uber.org/zap"
)

// AnswerService backs the explanation endpoint: free-form answer validation
// against a reference, and plain-text explanations of why an answer is right.
type AnswerService struct {
	AI Generator
}

func NewAnswerService(ai Generator) *AnswerService {
	return &AnswerService{AI: ai}
}

// Validate scores a free-form or pseudo-code answer against the reference
// answer. Validation is local and never consults the model.
func (s *AnswerService) Validate(reference, candidate string) (MatchResult, string, error) {
	result, err := ScoreAnswer(reference, candidate)
	if err != nil {
		return MatchResult{}, "", err
	}
	return result, ValidationFeedback(result), nil
}

const explanationSystemPrompt = "You are a computer science tutor. Explain in a short paragraph " +
	"why the given correct answer is right, contrasting it with the student's answer when one is provided."

// Canned explanations for questions the static exam bank is known to contain.
var mockExplanations = map[string]string{
	"What is the time complexity of binary search?": "Binary search works by repeatedly dividing the search space in half. " +
		"Each division reduces the problem size, leading to logarithmic complexity O(log n). " +
		"This is much faster than linear search O(n) for large datasets.",
	"What does JOIN do in SQL?": "SQL JOIN combines rows from two or more tables based on a related column. " +
		"INNER JOIN returns only matching records, LEFT JOIN includes all records from left table, " +
		"RIGHT JOIN from right table, and FULL JOIN returns all records from both tables.",
}

// Explain produces a prose explanation for a question given the correct
// answer and the student's attempt. The model is tried first; any failure
// falls back to the canned table keyed by exact question text.
func (s *AnswerService) Explain(ctx context.Context, question, answer, correctAnswer string) string {
	if s.AI != nil {
		prompt := fmt.Sprintf("Question: %s\nCorrect answer: %s\nStudent answer: %s", question, correctAnswer, answer)
		text, err := s.AI.GenerateText(ctx, explanationSystemPrompt, prompt)
		if err == nil && text != "" {
			return text
		}
		logger.Log.Warn("explanation generation failed, serving fallback",
			zap.String("question", question), zap.Error(err))
	}

	monitoring.AIFallbackCounter.WithLabelValues("explanation").Inc()
	if explanation, ok := mockExplanations[question]; ok {
		return explanation
	}
	if answer == "" {
		answer = "not provided"
	}
	return fmt.Sprintf("The correct answer is: %s. Your answer was: %s. "+
		"The correct answer is more accurate/complete because it addresses the core concept more effectively.",
		correctAnswer, answer)
}
