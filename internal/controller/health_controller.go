package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthController struct{}

func NewHealthController() *HealthController {
	return &HealthController{}
}

// Health godoc
// @Summary Service health check
// @Tags health
// @Produce json
// @Success 200 {object} object "{status, service, time}"
// @Router /api/health [get]
func (c *HealthController) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "careerready-backend",
		"time":    time.Now().UTC().Format(time.RFC3339),
	})
}
