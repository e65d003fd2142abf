package database

import (
	"fmt"
	"log"

	"careerready_backend/internal/config"
	"careerready_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DBName,
		cfg.Database.Charset,
		cfg.Database.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	// Migrations run automatically outside release mode; in release they need
	// the -migrate flag.
	if cfg.Server.Mode == "release" && !cfg.ForceMigrate {
		return db, nil
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.ExamResult{},
		&model.SkillGapReport{},
		&model.InterviewSession{},
		&model.StudyReminder{},
		&model.DailyLog{},
		&model.Interest{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	// Seed the interest vocabulary so autocomplete works on a fresh install.
	var count int64
	db.Model(&model.Interest{}).Count(&count)
	if count == 0 {
		defaultInterests := []string{
			"Frontend", "Backend", "Fullstack", "Data Science",
			"Machine Learning", "DevOps", "SRE", "QA",
			"System Design", "Algorithms", "Databases", "Computer Networks",
		}
		for _, name := range defaultInterests {
			db.Create(&model.Interest{Name: name})
		}
	}

	return db, nil
}
