package repository

import (
	"careerready_backend/internal/model"

	"gorm.io/gorm"
)

type ReportRepository struct {
	DB *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{DB: db}
}

func (r *ReportRepository) Create(report *model.SkillGapReport) error {
	return r.DB.Create(report).Error
}

func (r *ReportRepository) FindByUserID(userID string) ([]model.SkillGapReport, error) {
	var reports []model.SkillGapReport
	err := r.DB.Where("user_id = ?", userID).Order("created_at ASC").Find(&reports).Error
	return reports, err
}
