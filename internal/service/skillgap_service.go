package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"careerready_backend/internal/model"
	"careerready_backend/internal/repository"
	"careerready_backend/pkg/logger"
	"careerready_backend/pkg/monitoring"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

type SkillGapService struct {
	AI         Generator
	ReportRepo *repository.ReportRepository
}

func NewSkillGapService(ai Generator, reportRepo *repository.ReportRepository) *SkillGapService {
	return &SkillGapService{AI: ai, ReportRepo: reportRepo}
}

// SkillGapResult is the wire shape of one analysis: required vs. missing
// skills plus a phased roadmap and per-phase strategies.
type SkillGapResult struct {
	Analysis struct {
		RequiredSkills []string `json:"requiredSkills"`
		MissingSkills  []string `json:"missingSkills"`
	} `json:"analysis"`
	Roadmap    []model.RoadmapPhase  `json:"roadmap"`
	Strategies []model.PhaseStrategy `json:"strategies"`
}

var skillGapSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"analysis": {
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"requiredSkills": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
				"missingSkills":  {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
			},
			Required: []string{"requiredSkills", "missingSkills"},
		},
		"roadmap": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"phase":    {Type: genai.TypeString},
					"topics":   {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
					"duration": {Type: genai.TypeString},
				},
				Required: []string{"phase", "topics", "duration"},
			},
		},
		"strategies": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"phase":          {Type: genai.TypeString},
					"strategy":       {Type: genai.TypeString},
					"timeAllocation": {Type: genai.TypeString},
				},
				Required: []string{"phase", "strategy", "timeAllocation"},
			},
		},
	},
	Required: []string{"analysis", "roadmap", "strategies"},
}

// Analyze produces a readiness report for the target role. A failed or
// unconfigured generation call resolves immediately to the canned analysis —
// no retries.
func (s *SkillGapService) Analyze(ctx context.Context, role string, skills []string, prepTime string) *SkillGapResult {
	if s.AI != nil {
		prompt := fmt.Sprintf("Analyze career readiness for Role: %s. Current Skills: %s. Prep Time: %s.",
			role, strings.Join(skills, ", "), prepTime)

		raw, err := s.AI.GenerateJSON(ctx, prompt, skillGapSchema)
		if err == nil {
			var result SkillGapResult
			if jsonErr := json.Unmarshal([]byte(raw), &result); jsonErr == nil {
				return &result
			}
			err = fmt.Errorf("unmarshal skill gap response: %s", raw)
		}
		logger.Log.Warn("skill gap generation failed, serving fallback",
			zap.String("role", role), zap.Error(err))
	}

	monitoring.AIFallbackCounter.WithLabelValues("skill-gap").Inc()
	return mockSkillGap()
}

// SaveReport stores an analysis the client chose to keep.
func (s *SkillGapService) SaveReport(userID, role string, skills []string, prepTime string, result *SkillGapResult) (*model.SkillGapReport, error) {
	report := &model.SkillGapReport{
		UserID:          userID,
		TargetRole:      role,
		CurrentSkills:   model.StringList(skills),
		PreparationTime: prepTime,
		RequiredSkills:  model.StringList(result.Analysis.RequiredSkills),
		MissingSkills:   model.StringList(result.Analysis.MissingSkills),
		Roadmap:         model.PhaseList(result.Roadmap),
		Strategies:      model.StrategyList(result.Strategies),
	}
	if err := s.ReportRepo.Create(report); err != nil {
		return nil, err
	}
	return report, nil
}

func (s *SkillGapService) ReportsForUser(userID string) ([]model.SkillGapReport, error) {
	return s.ReportRepo.FindByUserID(userID)
}

func mockSkillGap() *SkillGapResult {
	result := &SkillGapResult{
		Roadmap: []model.RoadmapPhase{
			{Phase: "Phase 1: Basics", Topics: []string{"ES6+ JavaScript", "React fundamentals", "Node.js basics"}, Duration: "2 weeks"},
			{Phase: "Phase 2: Intermediate", Topics: []string{"Advanced React", "SQL optimization", "REST API design"}, Duration: "3 weeks"},
			{Phase: "Phase 3: Advanced", Topics: []string{"System Design", "Microservices", "DevOps basics"}, Duration: "4 weeks"},
		},
		Strategies: []model.PhaseStrategy{
			{Phase: "Phase 1", Strategy: "Watch tutorials and build small projects", TimeAllocation: "20 hours"},
			{Phase: "Phase 2", Strategy: "Solve LeetCode problems and build medium projects", TimeAllocation: "25 hours"},
			{Phase: "Phase 3", Strategy: "Understand design patterns and build full-stack project", TimeAllocation: "30 hours"},
		},
	}
	result.Analysis.RequiredSkills = []string{"JavaScript/TypeScript", "React/Vue", "Node.js", "Database Design", "System Design"}
	result.Analysis.MissingSkills = []string{"Advanced React patterns", "Database optimization", "Microservices"}
	return result
}
