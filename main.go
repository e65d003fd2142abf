// @title CareerReady AI API
// @version 1.0
// @description Backend for the CareerReady AI interview-preparation platform.

// @host localhost:5000
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"flag"
	"log"

	"careerready_backend/internal/app"
	"careerready_backend/internal/config"
	"careerready_backend/pkg/configwatcher"
	"careerready_backend/pkg/logger"
)

func main() {
	migrateOnly := flag.Bool("migrate-only", false, "run database migrations and exit")
	migrate := flag.Bool("migrate", false, "force migrations on startup even in release mode")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cfg.ForceMigrate = *migrate || *migrateOnly
	cfg.MigrateOnly = *migrateOnly

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	if *migrateOnly {
		log.Println("Database migration completed, exiting")
		return
	}

	go configwatcher.WatchConfig("configs/config.yaml", cfg, func(newCfg interface{}) {
		// Most settings need a restart; the reload is logged so operators see
		// the drift between file and process.
		logger.Log.Info("Config file changed, restart to apply")
	})

	application.Run()
}
