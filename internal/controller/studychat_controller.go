package controller

import (
	"net/http"
	"strings"

	"careerready_backend/internal/service"

	"github.com/gin-gonic/gin"
)

type StudyChatController struct {
	StudyChatService *service.StudyChatService
}

func NewStudyChatController(studyChatService *service.StudyChatService) *StudyChatController {
	return &StudyChatController{StudyChatService: studyChatService}
}

type studyChatRequest struct {
	Message string `json:"message"`
}

// Chat godoc
// @Summary Answer a study question
// @Description Raw {response} body. When the request context dies before any answer can be produced, the 500 body still carries a usable degraded response.
// @Tags ai
// @Accept json
// @Produce json
// @Param body body studyChatRequest true "Message"
// @Success 200 {object} object "{response}"
// @Failure 400 {object} object "{error}"
// @Failure 500 {object} object "{error, response}"
// @Router /api/study-chat [post]
func (c *StudyChatController) Chat(ctx *gin.Context) {
	var req studyChatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Message) == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Message is required"})
		return
	}

	response := c.StudyChatService.Reply(ctx.Request.Context(), req.Message)

	if ctx.Request.Context().Err() != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":    "Failed to generate response",
			"response": "I'm having trouble connecting right now. Please try again in a moment! 🔄",
		})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"response": response})
}
