package repository

import (
	"careerready_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LogRepository struct {
	DB *gorm.DB
}

func NewLogRepository(db *gorm.DB) *LogRepository {
	return &LogRepository{DB: db}
}

// Upsert keeps one row per (user, date); resubmitting a day replaces hours.
func (r *LogRepository) Upsert(log *model.DailyLog) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"hours", "updated_at"}),
	}).Create(log).Error
}

func (r *LogRepository) FindByUserID(userID string) ([]model.DailyLog, error) {
	var logs []model.DailyLog
	err := r.DB.Where("user_id = ?", userID).Order("date ASC").Find(&logs).Error
	return logs, err
}

func (r *LogRepository) FindByUserSince(userID, since string) ([]model.DailyLog, error) {
	var logs []model.DailyLog
	err := r.DB.Where("user_id = ? AND date >= ?", userID, since).Order("date ASC").Find(&logs).Error
	return logs, err
}
