package service

import (
	"context"

	"careerready_backend/pkg/logger"
	"careerready_backend/pkg/monitoring"

	"go.uber.org/zap"
)

const studyChatSystemPrompt = `You are an AI Study Assistant. You ONLY answer questions related to:
- Academic subjects (Math, Science, Programming, etc.)
- Study techniques and learning strategies
- Exam preparation and test-taking tips
- Time management for students
- Educational resources and recommendations
- Career guidance for students
- Homework help and concept explanations

If the user asks about anything NOT related to studying, learning, or education, politely decline and redirect them to ask study-related questions.

Keep responses concise, helpful, and encouraging. Use emojis occasionally to make it friendly.`

// StudyChatService answers study questions through the model, with a
// keyword-matched offline table when generation is unavailable.
type StudyChatService struct {
	AI Generator
}

func NewStudyChatService(ai Generator) *StudyChatService {
	return &StudyChatService{AI: ai}
}

// Reply always produces a response. A generation failure is not an error for
// the caller, it just routes through the offline table.
func (s *StudyChatService) Reply(ctx context.Context, message string) string {
	if s.AI != nil {
		text, err := s.AI.GenerateText(ctx, studyChatSystemPrompt, message)
		if err == nil && text != "" {
			return text
		}
		logger.Log.Warn("study chat generation failed, serving offline response", zap.Error(err))
	}

	monitoring.AIFallbackCounter.WithLabelValues("study-chat").Inc()
	return SelectOfflineResponse(message)
}
