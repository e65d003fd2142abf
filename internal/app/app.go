package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"careerready_backend/internal/config"
	"careerready_backend/internal/controller"
	"careerready_backend/internal/repository"
	"careerready_backend/internal/service"
	"careerready_backend/pkg/database"
	"careerready_backend/pkg/logger"
	"careerready_backend/pkg/monitoring"
	"careerready_backend/pkg/security"
	"careerready_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client
}

type repositories struct {
	user      *repository.UserRepository
	exam      *repository.ExamRepository
	report    *repository.ReportRepository
	interview *repository.InterviewRepository
	reminder  *repository.ReminderRepository
	log       *repository.LogRepository
	interest  *repository.InterestRepository
}

type services struct {
	storage    *service.StorageService
	auth       *service.AuthService
	user       *service.UserService
	dashboard  *service.DashboardService
	connection *service.ConnectionService
	skillGap   *service.SkillGapService
	exam       *service.ExamService
	interview  *service.InterviewService
	answer     *service.AnswerService
	studyChat  *service.StudyChatService
	reminder   *service.ReminderService
}

type controllers struct {
	health     *controller.HealthController
	auth       *controller.AuthController
	user       *controller.UserController
	dashboard  *controller.DashboardController
	connection *controller.ConnectionController
	exam       *controller.ExamController
	report     *controller.ReportController
	interview  *controller.InterviewController
	reminder   *controller.ReminderController
	ai         *controller.AIController
	studyChat  *controller.StudyChatController
}

func (a *App) initRepositories(db *gorm.DB, rdb *redis.Client) *repositories {
	return &repositories{
		user:      repository.NewUserRepository(db),
		exam:      repository.NewExamRepository(db),
		report:    repository.NewReportRepository(db),
		interview: repository.NewInterviewRepository(db),
		reminder:  repository.NewReminderRepository(db),
		log:       repository.NewLogRepository(db),
		interest:  repository.NewInterestRepository(db, rdb),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	// A missing API key disables generation entirely; every relay endpoint
	// then answers from its fallback.
	var generator service.Generator
	gemini, err := service.NewGeminiService(context.Background(), cfg.AI)
	if err != nil {
		logger.Log.Warn("generation disabled, relay endpoints will serve fallbacks", zap.Error(err))
	} else {
		generator = gemini
	}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.user = service.NewUserService(repos.user, repos.interest, s.storage)
	s.dashboard = service.NewDashboardService(repos.exam, repos.log, rdb)
	s.connection = service.NewConnectionService(repos.user, repos.exam, repos.interest)
	s.skillGap = service.NewSkillGapService(generator, repos.report)
	s.exam = service.NewExamService(generator, repos.exam)
	s.interview = service.NewInterviewService(generator, repos.interview, s.storage)
	s.answer = service.NewAnswerService(generator)
	s.studyChat = service.NewStudyChatService(generator)
	s.reminder = service.NewReminderService(repos.reminder)

	return s
}

func (a *App) initControllers(s *services) *controllers {
	return &controllers{
		health:     controller.NewHealthController(),
		auth:       controller.NewAuthController(s.auth),
		user:       controller.NewUserController(s.user, s.connection),
		dashboard:  controller.NewDashboardController(s.dashboard),
		connection: controller.NewConnectionController(s.connection),
		exam:       controller.NewExamController(s.exam),
		report:     controller.NewReportController(s.skillGap),
		interview:  controller.NewInterviewController(s.interview),
		reminder:   controller.NewReminderController(s.reminder),
		ai:         controller.NewAIController(s.skillGap, s.exam, s.interview, s.answer),
		studyChat:  controller.NewStudyChatController(s.studyChat),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		// The interest cache and dashboard cache degrade to MySQL reads when
		// Redis is down.
		logger.Log.Warn("Redis unavailable, caching disabled", zap.Error(err))
		rdb = nil
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db, rdb)
	services := app.initServices(repos, cfg, rdb)
	controllers := app.initControllers(services)

	monitoring.Init()

	gin.SetMode(cfg.Server.Mode)
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("careerready-backend", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
