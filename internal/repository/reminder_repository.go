package repository

import (
	"careerready_backend/internal/model"

	"gorm.io/gorm"
)

type ReminderRepository struct {
	DB *gorm.DB
}

func NewReminderRepository(db *gorm.DB) *ReminderRepository {
	return &ReminderRepository{DB: db}
}

func (r *ReminderRepository) Create(reminder *model.StudyReminder) error {
	return r.DB.Create(reminder).Error
}

func (r *ReminderRepository) FindByUserID(userID string) ([]model.StudyReminder, error) {
	var reminders []model.StudyReminder
	err := r.DB.Where("user_id = ?", userID).Order("created_at ASC").Find(&reminders).Error
	return reminders, err
}

func (r *ReminderRepository) FindByID(id string) (*model.StudyReminder, error) {
	var reminder model.StudyReminder
	err := r.DB.First(&reminder, "id = ?", id).Error
	return &reminder, err
}

func (r *ReminderRepository) Update(reminder *model.StudyReminder) error {
	return r.DB.Save(reminder).Error
}

func (r *ReminderRepository) Delete(id string) error {
	return r.DB.Delete(&model.StudyReminder{}, "id = ?", id).Error
}
