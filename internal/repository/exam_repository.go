package repository

import (
	"careerready_backend/internal/model"

	"gorm.io/gorm"
)

type ExamRepository struct {
	DB *gorm.DB
}

func NewExamRepository(db *gorm.DB) *ExamRepository {
	return &ExamRepository{DB: db}
}

func (r *ExamRepository) Create(result *model.ExamResult) error {
	return r.DB.Create(result).Error
}

func (r *ExamRepository) FindByUserID(userID string) ([]model.ExamResult, error) {
	var results []model.ExamResult
	err := r.DB.Where("user_id = ?", userID).Order("created_at ASC").Find(&results).Error
	return results, err
}

func (r *ExamRepository) CountByUserID(userID string) (int64, error) {
	var count int64
	err := r.DB.Model(&model.ExamResult{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

// AverageScore returns the mean exam score for one user; 0 when the user has
// no finished attempts.
func (r *ExamRepository) AverageScore(userID string) (float64, error) {
	var avg *float64
	err := r.DB.Model(&model.ExamResult{}).
		Where("user_id = ?", userID).
		Select("AVG(score)").
		Scan(&avg).Error
	if err != nil || avg == nil {
		return 0, err
	}
	return *avg, nil
}
