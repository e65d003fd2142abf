package controller

import (
	"careerready_backend/internal/model"
	"careerready_backend/internal/service"
	"careerready_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ExamController struct {
	ExamService *service.ExamService
}

func NewExamController(examService *service.ExamService) *ExamController {
	return &ExamController{ExamService: examService}
}

type examResultRequest struct {
	ExamType       string                  `json:"examType" binding:"required"`
	Score          int                     `json:"score"`
	TotalQuestions int                     `json:"totalQuestions" binding:"required,min=1"`
	Accuracy       float64                 `json:"accuracy"`
	TimeSpent      int                     `json:"timeSpent"`
	AIUsagePercent int                     `json:"aiUsagePercent"`
	WeakTopics     model.StringList        `json:"weakTopics"`
	Results        []model.QuestionOutcome `json:"results"`
}

// SaveResult godoc
// @Summary Record a finished exam attempt
// @Description Results are immutable; there is no update or delete path.
// @Tags exams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body examResultRequest true "Attempt details"
// @Success 201 {object} util.Response{data=model.ExamResult}
// @Failure 400 {object} util.Response
// @Router /api/exams [post]
func (c *ExamController) SaveResult(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req examResultRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result := &model.ExamResult{
		UserID:         claims.UserID,
		ExamType:       req.ExamType,
		Score:          req.Score,
		TotalQuestions: req.TotalQuestions,
		Accuracy:       req.Accuracy,
		TimeSpent:      req.TimeSpent,
		AIUsagePercent: req.AIUsagePercent,
		WeakTopics:     req.WeakTopics,
		Results:        model.OutcomeList(req.Results),
	}
	if err := c.ExamService.SaveResult(result); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, result)
}

// ListForUser godoc
// @Summary List a user's exam attempts
// @Tags exams
// @Produce json
// @Security BearerAuth
// @Param id path string true "User id"
// @Success 200 {object} util.Response{data=[]model.ExamResult}
// @Failure 403 {object} util.Response
// @Router /api/users/{id}/exams [get]
func (c *ExamController) ListForUser(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil || claims.UserID != ctx.Param("id") {
		util.Forbidden(ctx)
		return
	}

	results, err := c.ExamService.ResultsForUser(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, results)
}
