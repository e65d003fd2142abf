package app

import (
	"careerready_backend/docs"
	"careerready_backend/internal/config"
	"careerready_backend/internal/middleware"
	"careerready_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", c.health.Health)

		// Auth
		api.POST("/register", c.auth.Register)
		api.POST("/login", c.auth.Login)

		// AI relay endpoints. Unauthenticated by design: the frontend calls
		// them before any account exists, and they store nothing.
		ai := api.Group("/ai")
		{
			ai.POST("/skill-gap", c.ai.SkillGap)
			ai.POST("/generate-exam", c.ai.GenerateExam)
			ai.POST("/interview-feedback", c.ai.InterviewFeedback)
			ai.POST("/explanation", c.ai.Explanation)
		}
		api.POST("/study-chat", c.studyChat.Chat)

		// Public reads. The profile view takes optional auth so a signed-in
		// viewer sees their favorite state.
		api.GET("/users/:id", middleware.TryAuthMiddleware(cfg), c.user.PublicProfile)
		api.GET("/interests", c.connection.Interests)
		api.GET("/interests/suggest", c.connection.SuggestInterests)
	}

	authorized := router.Group("/api")
	authorized.Use(middleware.AuthMiddleware(cfg))
	{
		authorized.GET("/profile", c.user.Profile)
		authorized.PUT("/user/profile", c.user.UpdateProfile)
		authorized.POST("/user/avatar/upload", c.user.UploadAvatar)

		authorized.GET("/users/:id/stats", c.dashboard.Stats)
		authorized.GET("/users/:id/logs", c.dashboard.Logs)
		authorized.POST("/logs", c.dashboard.LogHours)

		authorized.GET("/users/:id/exams", c.exam.ListForUser)
		authorized.POST("/exams", c.exam.SaveResult)

		authorized.GET("/users/:id/reports", c.report.ListForUser)
		authorized.POST("/reports", c.report.SaveReport)

		authorized.GET("/connections/suggestions", c.connection.Suggestions)
		authorized.GET("/connections/favorites", c.connection.Favorites)
		authorized.POST("/users/:id/favorite", c.connection.ToggleFavorite)

		authorized.GET("/reminders", c.reminder.List)
		authorized.POST("/reminders", c.reminder.Create)
		authorized.PUT("/reminders/:id", c.reminder.Update)
		authorized.PATCH("/reminders/:id/toggle", c.reminder.Toggle)
		authorized.DELETE("/reminders/:id", c.reminder.Delete)

		authorized.GET("/interview/sessions", c.interview.ListSessions)
		authorized.POST("/interview/sessions", c.interview.CreateSession)
		authorized.POST("/interview/recording", c.interview.UploadRecording)
	}
}
