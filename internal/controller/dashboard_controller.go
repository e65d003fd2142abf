package controller

import (
	"errors"

	"careerready_backend/internal/service"
	"careerready_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	DashboardService *service.DashboardService
}

func NewDashboardController(dashboardService *service.DashboardService) *DashboardController {
	return &DashboardController{DashboardService: dashboardService}
}

// Stats godoc
// @Summary Get dashboard statistics for a user
// @Description Readable by any signed-in user: public profile pages and
// connection cards surface these aggregates. Raw daily logs stay owner-only.
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Param id path string true "User id"
// @Success 200 {object} util.Response{data=service.DashboardStats}
// @Router /api/users/{id}/stats [get]
func (c *DashboardController) Stats(ctx *gin.Context) {
	stats, err := c.DashboardService.Stats(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, stats)
}

// Logs godoc
// @Summary List a user's daily study logs
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Param id path string true "User id"
// @Success 200 {object} util.Response{data=[]model.DailyLog}
// @Failure 403 {object} util.Response
// @Router /api/users/{id}/logs [get]
func (c *DashboardController) Logs(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil || claims.UserID != ctx.Param("id") {
		util.Forbidden(ctx)
		return
	}

	logs, err := c.DashboardService.LogsForUser(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, logs)
}

type logHoursRequest struct {
	Date  string  `json:"date" binding:"required"`
	Hours float64 `json:"hours" binding:"min=0"`
}

// LogHours godoc
// @Summary Record study hours for a day
// @Description One entry per day; resubmitting a date replaces its hours.
// @Tags dashboard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body logHoursRequest true "Date and hours"
// @Success 200 {object} util.Response{data=model.DailyLog}
// @Failure 400 {object} util.Response
// @Router /api/logs [post]
func (c *DashboardController) LogHours(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req logHoursRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	log, err := c.DashboardService.LogHours(ctx.Request.Context(), claims.UserID, req.Date, req.Hours)
	if err != nil {
		if errors.Is(err, util.ErrInvalidDate) {
			util.BadRequest(ctx, "Invalid date, expected YYYY-MM-DD")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, log)
}
