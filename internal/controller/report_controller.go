package controller

import (
	"careerready_backend/internal/service"
	"careerready_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	SkillGapService *service.SkillGapService
}

func NewReportController(skillGapService *service.SkillGapService) *ReportController {
	return &ReportController{SkillGapService: skillGapService}
}

type saveReportRequest struct {
	TargetRole      string                 `json:"targetRole" binding:"required"`
	CurrentSkills   []string               `json:"currentSkills" binding:"required"`
	PreparationTime string                 `json:"preparationTime"`
	Result          service.SkillGapResult `json:"result" binding:"required"`
}

// SaveReport godoc
// @Summary Store a skill-gap analysis the client chose to keep
// @Tags reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body saveReportRequest true "Analysis to store"
// @Success 201 {object} util.Response{data=model.SkillGapReport}
// @Failure 400 {object} util.Response
// @Router /api/reports [post]
func (c *ReportController) SaveReport(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req saveReportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	report, err := c.SkillGapService.SaveReport(claims.UserID, req.TargetRole, req.CurrentSkills, req.PreparationTime, &req.Result)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, report)
}

// ListForUser godoc
// @Summary List a user's stored skill-gap reports
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param id path string true "User id"
// @Success 200 {object} util.Response{data=[]model.SkillGapReport}
// @Failure 403 {object} util.Response
// @Router /api/users/{id}/reports [get]
func (c *ReportController) ListForUser(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil || claims.UserID != ctx.Param("id") {
		util.Forbidden(ctx)
		return
	}

	reports, err := c.SkillGapService.ReportsForUser(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, reports)
}
