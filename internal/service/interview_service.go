package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"mime/multipart"
	"path/filepath"

	"careerready_backend/internal/model"
	"careerready_backend/internal/repository"
	"careerready_backend/internal/util"
	"careerready_backend/pkg/logger"
	"careerready_backend/pkg/monitoring"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

type InterviewService struct {
	AI            Generator
	InterviewRepo *repository.InterviewRepository
	Storage       *StorageService
}

func NewInterviewService(ai Generator, interviewRepo *repository.InterviewRepository, storage *StorageService) *InterviewService {
	return &InterviewService{
		AI:            ai,
		InterviewRepo: interviewRepo,
		Storage:       storage,
	}
}

// InterviewFeedback is the wire shape of one simulated feedback round.
type InterviewFeedback struct {
	ConfidenceScore int `json:"confidenceScore"`
	StressLevel     int `json:"stressLevel"`
	ClarityScore    int `json:"clarityScore"`
	Feedback        struct {
		Strengths  []string `json:"strengths"`
		Weaknesses []string `json:"weaknesses"`
		Tips       []string `json:"tips"`
	} `json:"feedback"`
}

var interviewSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"confidenceScore": {Type: genai.TypeNumber},
		"stressLevel":     {Type: genai.TypeNumber},
		"clarityScore":    {Type: genai.TypeNumber},
		"feedback": {
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"strengths":  {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
				"weaknesses": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
				"tips":       {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
			},
			Required: []string{"strengths", "weaknesses", "tips"},
		},
	},
	Required: []string{"confidenceScore", "stressLevel", "clarityScore", "feedback"},
}

// Feedback simulates post-interview analysis. The generation call carries no
// user content — the model is asked to score common pitfalls — so a failure
// degrades to randomized canned feedback.
func (s *InterviewService) Feedback(ctx context.Context) *InterviewFeedback {
	if s.AI != nil {
		prompt := "The user just finished a mock technical interview. Generate feedback based on common pitfalls and best practices."

		raw, err := s.AI.GenerateJSON(ctx, prompt, interviewSchema)
		if err == nil {
			var feedback InterviewFeedback
			if jsonErr := json.Unmarshal([]byte(raw), &feedback); jsonErr == nil {
				return &feedback
			}
			err = fmt.Errorf("unmarshal interview feedback: %s", raw)
		}
		logger.Log.Warn("interview feedback generation failed, serving fallback", zap.Error(err))
	}

	monitoring.AIFallbackCounter.WithLabelValues("interview-feedback").Inc()
	return mockInterviewFeedback()
}

func mockInterviewFeedback() *InterviewFeedback {
	feedback := &InterviewFeedback{
		ConfidenceScore: rand.Intn(40) + 60, // 60-100
		StressLevel:     rand.Intn(40) + 20, // 20-60
		ClarityScore:    rand.Intn(40) + 60, // 60-100
	}
	feedback.Feedback.Strengths = []string{
		"Clear communication of thought process",
		"Good problem-solving approach",
		"Confident in technical knowledge",
	}
	feedback.Feedback.Weaknesses = []string{
		"Could improve on time management",
		"Need better edge case handling",
		"More practice needed for complex scenarios",
	}
	feedback.Feedback.Tips = []string{
		"Practice speaking while coding to improve communication",
		"Always start with edge cases and constraints",
		"Use more descriptive variable names",
		"Test your code with sample inputs before finalizing",
		"Manage interview time better by grouping related tasks",
	}
	return feedback
}

// SaveSession persists one feedback round for the owning user.
func (s *InterviewService) SaveSession(session *model.InterviewSession) error {
	return s.InterviewRepo.Create(session)
}

func (s *InterviewService) SessionsForUser(userID string) ([]model.InterviewSession, error) {
	return s.InterviewRepo.FindByUserID(userID)
}

// AttachRecording stores an uploaded interview recording and hangs its URL
// and probed duration off the session. A recording that ffprobe cannot read
// is stored anyway with duration 0.
func (s *InterviewService) AttachRecording(ctx context.Context, userID, sessionID string, file *multipart.FileHeader, localPath string) (*model.InterviewSession, error) {
	session, err := s.InterviewRepo.FindByID(sessionID)
	if err != nil {
		return nil, err
	}
	if session.UserID != userID {
		return nil, util.ErrPermissionDenied
	}

	filename := fmt.Sprintf("interviews/%s/%s%s", userID, model.GenerateUUID(), filepath.Ext(file.Filename))
	url, err := s.Storage.UploadLocalFile(ctx, filename, localPath, file.Header.Get("Content-Type"))
	if err != nil {
		return nil, err
	}

	session.RecordingURL = url
	if info, err := util.ProbeRecording(localPath); err == nil {
		session.Duration = info.Duration
	} else {
		logger.Log.Warn("recording probe failed, keeping zero duration",
			zap.String("sessionId", sessionID), zap.Error(err))
	}

	if err := s.InterviewRepo.Update(session); err != nil {
		return nil, err
	}
	return session, nil
}
