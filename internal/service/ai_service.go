package service

import (
	"context"
	"fmt"
	"time"

	"careerready_backend/internal/config"
	"careerready_backend/internal/util"

	"google.golang.org/genai"
)

// Generator abstracts the text-generation API so relay handlers can take a
// test double. Implementations must be safe for concurrent use.
type Generator interface {
	// GenerateJSON asks the model for output conforming to schema and
	// returns the raw JSON text.
	GenerateJSON(ctx context.Context, prompt string, schema *genai.Schema) (string, error)
	// GenerateText answers a prompt under a fixed system instruction.
	GenerateText(ctx context.Context, system, prompt string) (string, error)
}

// GeminiService is the production Generator, constructed once at process
// start and passed by reference to request handlers.
type GeminiService struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

func NewGeminiService(ctx context.Context, cfg config.AIConfig) (*GeminiService, error) {
	if cfg.APIKey == "" {
		return nil, util.ErrGenerationDisabled
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &GeminiService{
		client:  client,
		model:   cfg.Model,
		timeout: cfg.RequestTimeout,
	}, nil
}

func (s *GeminiService) GenerateJSON(ctx context.Context, prompt string, schema *genai.Schema) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	})
	if err != nil {
		return "", err
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("model returned empty response")
	}
	return text, nil
}

func (s *GeminiService) GenerateText(ctx context.Context, system, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
	})
	if err != nil {
		return "", err
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("model returned empty response")
	}
	return text, nil
}
