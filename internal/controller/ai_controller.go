package controller

import (
	"errors"
	"net/http"

	"careerready_backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AIController serves the AI relay endpoints. These return raw JSON shapes
// rather than the store envelope: the frontend consumes them directly and
// expects the same bodies whether the model or a fallback answered.
type AIController struct {
	SkillGapService  *service.SkillGapService
	ExamService      *service.ExamService
	InterviewService *service.InterviewService
	AnswerService    *service.AnswerService
}

func NewAIController(skillGap *service.SkillGapService, exam *service.ExamService, interview *service.InterviewService, answer *service.AnswerService) *AIController {
	return &AIController{
		SkillGapService:  skillGap,
		ExamService:      exam,
		InterviewService: interview,
		AnswerService:    answer,
	}
}

type skillGapRequest struct {
	Role   string   `json:"role"`
	Skills []string `json:"skills"`
	Time   string   `json:"time"`
}

// SkillGap godoc
// @Summary Analyze readiness for a target role
// @Tags ai
// @Accept json
// @Produce json
// @Param body body skillGapRequest true "Role, current skills, prep time"
// @Success 200 {object} service.SkillGapResult
// @Failure 400 {object} object "{error}"
// @Router /api/ai/skill-gap [post]
func (c *AIController) SkillGap(ctx *gin.Context) {
	var req skillGapRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.Role == "" || len(req.Skills) == 0 || req.Time == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields: role, skills, time"})
		return
	}

	result := c.SkillGapService.Analyze(ctx.Request.Context(), req.Role, req.Skills, req.Time)
	ctx.JSON(http.StatusOK, result)
}

type generateExamRequest struct {
	Type string `json:"type"`
}

// GenerateExam godoc
// @Summary Generate an exam for a subject
// @Description Responds with a bare question array. An unknown subject falls back to the DSA bank.
// @Tags ai
// @Accept json
// @Produce json
// @Param body body generateExamRequest true "Exam type"
// @Success 200 {array} model.Question
// @Failure 400 {object} object "{error}"
// @Router /api/ai/generate-exam [post]
func (c *AIController) GenerateExam(ctx *gin.Context) {
	var req generateExamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil || req.Type == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Missing exam type"})
		return
	}

	questions := c.ExamService.Generate(ctx.Request.Context(), req.Type)
	ctx.JSON(http.StatusOK, questions)
}

// InterviewFeedback godoc
// @Summary Generate mock-interview feedback
// @Tags ai
// @Produce json
// @Success 200 {object} service.InterviewFeedback
// @Router /api/ai/interview-feedback [post]
func (c *AIController) InterviewFeedback(ctx *gin.Context) {
	feedback := c.InterviewService.Feedback(ctx.Request.Context())
	ctx.JSON(http.StatusOK, feedback)
}

type explanationRequest struct {
	Question      string `json:"question"`
	Answer        string `json:"answer"`
	CorrectAnswer string `json:"correctAnswer"`
	Validate      bool   `json:"validate"`
}

// Explanation godoc
// @Summary Explain an answer, or validate a free-form one
// @Description With validate=true the answer is scored against the reference by token overlap and the body carries {valid, feedback, matches, tokens}. Otherwise the body carries {explanation}.
// @Tags ai
// @Accept json
// @Produce json
// @Param body body explanationRequest true "Question plus answers"
// @Success 200 {object} object
// @Failure 400 {object} object "{error}"
// @Router /api/ai/explanation [post]
func (c *AIController) Explanation(ctx *gin.Context) {
	var req explanationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.Question == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Missing question"})
		return
	}

	if req.Validate {
		result, feedback, err := c.AnswerService.Validate(req.CorrectAnswer, req.Answer)
		if errors.Is(err, service.ErrNoReference) {
			ctx.JSON(http.StatusOK, gin.H{
				"valid":    false,
				"feedback": "No reference answer available for validation.",
			})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{
			"valid":    result.Valid,
			"feedback": feedback,
			"matches":  result.Matches,
			"tokens":   result.Tokens,
		})
		return
	}

	if req.CorrectAnswer == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Missing correctAnswer for explanation"})
		return
	}

	explanation := c.AnswerService.Explain(ctx.Request.Context(), req.Question, req.Answer, req.CorrectAnswer)
	ctx.JSON(http.StatusOK, gin.H{"explanation": explanation})
}
