package controller

import (
	"errors"
	"os"
	"path/filepath"

	"careerready_backend/internal/model"
	"careerready_backend/internal/service"
	"careerready_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type InterviewController struct {
	InterviewService *service.InterviewService
}

func NewInterviewController(interviewService *service.InterviewService) *InterviewController {
	return &InterviewController{InterviewService: interviewService}
}

type interviewSessionRequest struct {
	ConfidenceScore int      `json:"confidenceScore" binding:"min=0,max=100"`
	StressLevel     int      `json:"stressLevel" binding:"min=0,max=100"`
	ClarityScore    int      `json:"clarityScore" binding:"min=0,max=100"`
	Strengths       []string `json:"strengths"`
	Weaknesses      []string `json:"weaknesses"`
	Tips            []string `json:"tips"`
}

// CreateSession godoc
// @Summary Persist one mock-interview feedback round
// @Tags interview
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body interviewSessionRequest true "Feedback round"
// @Success 201 {object} util.Response{data=model.InterviewSession}
// @Failure 400 {object} util.Response
// @Router /api/interview/sessions [post]
func (c *InterviewController) CreateSession(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req interviewSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	session := &model.InterviewSession{
		UserID:          claims.UserID,
		ConfidenceScore: req.ConfidenceScore,
		StressLevel:     req.StressLevel,
		ClarityScore:    req.ClarityScore,
		Strengths:       req.Strengths,
		Weaknesses:      req.Weaknesses,
		Tips:            req.Tips,
	}
	if err := c.InterviewService.SaveSession(session); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, session)
}

// ListSessions godoc
// @Summary List the caller's mock-interview sessions
// @Tags interview
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.InterviewSession}
// @Router /api/interview/sessions [get]
func (c *InterviewController) ListSessions(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	sessions, err := c.InterviewService.SessionsForUser(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, sessions)
}

// UploadRecording godoc
// @Summary Attach a recording to an interview session
// @Description Multipart upload; the recording's duration is probed server side.
// @Tags interview
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param sessionId formData string true "Session id"
// @Param recording formData file true "Recording file"
// @Success 200 {object} util.Response{data=model.InterviewSession}
// @Failure 400 {object} util.Response
// @Failure 403 {object} util.Response
// @Router /api/interview/recording [post]
func (c *InterviewController) UploadRecording(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	sessionID := ctx.PostForm("sessionId")
	if sessionID == "" {
		util.BadRequest(ctx, "Missing sessionId")
		return
	}

	file, err := ctx.FormFile("recording")
	if err != nil {
		util.BadRequest(ctx, "Missing recording file")
		return
	}

	// The recording lands in a temp file first so ffprobe can read it.
	tmpPath := filepath.Join(os.TempDir(), model.GenerateUUID()+filepath.Ext(file.Filename))
	if err := ctx.SaveUploadedFile(file, tmpPath); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer os.Remove(tmpPath)

	session, err := c.InterviewService.AttachRecording(ctx.Request.Context(), claims.UserID, sessionID, file, tmpPath)
	if err != nil {
		if errors.Is(err, util.ErrPermissionDenied) {
			util.Forbidden(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, session)
}
