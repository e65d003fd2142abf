package controller

import (
	"errors"

	"careerready_backend/internal/service"
	"careerready_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ReminderController struct {
	ReminderService *service.ReminderService
}

func NewReminderController(reminderService *service.ReminderService) *ReminderController {
	return &ReminderController{ReminderService: reminderService}
}

func (c *ReminderController) respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrReminderNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrInvalidRecurrence):
		util.BadRequest(ctx, "Reminder needs a valid HH:MM time and either weekdays or a date, not both")
	default:
		util.LogInternalError(ctx, err)
	}
}

// Create godoc
// @Summary Create a study reminder
// @Description A reminder is either weekly (days set) or one-shot (date set), never both.
// @Tags reminders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.ReminderInput true "Reminder"
// @Success 201 {object} util.Response{data=model.StudyReminder}
// @Failure 400 {object} util.Response
// @Router /api/reminders [post]
func (c *ReminderController) Create(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var input service.ReminderInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	reminder, err := c.ReminderService.Create(claims.UserID, &input)
	if err != nil {
		c.respondError(ctx, err)
		return
	}
	util.Created(ctx, reminder)
}

// List godoc
// @Summary List the caller's reminders
// @Tags reminders
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.StudyReminder}
// @Router /api/reminders [get]
func (c *ReminderController) List(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	reminders, err := c.ReminderService.ListForUser(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, reminders)
}

// Update godoc
// @Summary Update a reminder
// @Tags reminders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reminder id"
// @Param body body service.ReminderInput true "Reminder"
// @Success 200 {object} util.Response{data=model.StudyReminder}
// @Failure 404 {object} util.Response
// @Router /api/reminders/{id} [put]
func (c *ReminderController) Update(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var input service.ReminderInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	reminder, err := c.ReminderService.Update(claims.UserID, ctx.Param("id"), &input)
	if err != nil {
		c.respondError(ctx, err)
		return
	}
	util.Success(ctx, reminder)
}

type reminderToggleRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

// Toggle godoc
// @Summary Enable or disable a reminder without changing its schedule
// @Tags reminders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reminder id"
// @Param body body reminderToggleRequest true "Enabled flag"
// @Success 200 {object} util.Response{data=model.StudyReminder}
// @Failure 404 {object} util.Response
// @Router /api/reminders/{id}/toggle [patch]
func (c *ReminderController) Toggle(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req reminderToggleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	reminder, err := c.ReminderService.SetEnabled(claims.UserID, ctx.Param("id"), *req.Enabled)
	if err != nil {
		c.respondError(ctx, err)
		return
	}
	util.Success(ctx, reminder)
}

// Delete godoc
// @Summary Delete a reminder
// @Tags reminders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reminder id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/reminders/{id} [delete]
func (c *ReminderController) Delete(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.ReminderService.Delete(claims.UserID, ctx.Param("id")); err != nil {
		c.respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
