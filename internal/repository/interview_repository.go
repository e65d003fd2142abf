package repository

import (
	"careerready_backend/internal/model"

	"gorm.io/gorm"
)

type InterviewRepository struct {
	DB *gorm.DB
}

func NewInterviewRepository(db *gorm.DB) *InterviewRepository {
	return &InterviewRepository{DB: db}
}

func (r *InterviewRepository) Create(session *model.InterviewSession) error {
	return r.DB.Create(session).Error
}

func (r *InterviewRepository) FindByUserID(userID string) ([]model.InterviewSession, error) {
	var sessions []model.InterviewSession
	err := r.DB.Where("user_id = ?", userID).Order("created_at ASC").Find(&sessions).Error
	return sessions, err
}

func (r *InterviewRepository) FindByID(id string) (*model.InterviewSession, error) {
	var session model.InterviewSession
	err := r.DB.First(&session, "id = ?", id).Error
	return &session, err
}

func (r *InterviewRepository) Update(session *model.InterviewSession) error {
	return r.DB.Save(session).Error
}
