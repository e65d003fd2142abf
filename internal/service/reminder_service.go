package service

import (
	"errors"
	"regexp"
	"time"

	"careerready_backend/internal/model"
	"careerready_backend/internal/repository"
	"careerready_backend/internal/util"

	"gorm.io/gorm"
)

var timeOfDayPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

type ReminderService struct {
	ReminderRepo *repository.ReminderRepository
}

func NewReminderService(reminderRepo *repository.ReminderRepository) *ReminderService {
	return &ReminderService{ReminderRepo: reminderRepo}
}

// ReminderInput carries the client-editable reminder fields.
type ReminderInput struct {
	Title   string        `json:"title" binding:"required"`
	Time    string        `json:"time" binding:"required"`
	Days    model.IntList `json:"days"`
	Date    string        `json:"date"`
	Enabled *bool         `json:"enabled"`
}

func validateRecurrence(input *ReminderInput) error {
	if !timeOfDayPattern.MatchString(input.Time) {
		return util.ErrInvalidRecurrence
	}
	hasDays := len(input.Days) > 0
	hasDate := input.Date != ""
	if hasDays == hasDate {
		return util.ErrInvalidRecurrence
	}
	if hasDays {
		for _, d := range input.Days {
			if d < 0 || d > 6 {
				return util.ErrInvalidRecurrence
			}
		}
	}
	if hasDate {
		if _, err := time.Parse("2006-01-02", input.Date); err != nil {
			return util.ErrInvalidRecurrence
		}
	}
	return nil
}

func (s *ReminderService) Create(userID string, input *ReminderInput) (*model.StudyReminder, error) {
	if err := validateRecurrence(input); err != nil {
		return nil, err
	}
	reminder := &model.StudyReminder{
		UserID:  userID,
		Title:   input.Title,
		Time:    input.Time,
		Days:    input.Days,
		Date:    input.Date,
		Enabled: true,
	}
	if input.Enabled != nil {
		reminder.Enabled = *input.Enabled
	}
	if err := s.ReminderRepo.Create(reminder); err != nil {
		return nil, err
	}
	return reminder, nil
}

func (s *ReminderService) ListForUser(userID string) ([]model.StudyReminder, error) {
	return s.ReminderRepo.FindByUserID(userID)
}

// owned loads a reminder and checks the caller owns it. A reminder belonging
// to someone else reads as not found rather than forbidden, so ids cannot be
// probed.
func (s *ReminderService) owned(userID, id string) (*model.StudyReminder, error) {
	reminder, err := s.ReminderRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrReminderNotFound
	}
	if err != nil {
		return nil, err
	}
	if reminder.UserID != userID {
		return nil, util.ErrReminderNotFound
	}
	return reminder, nil
}

func (s *ReminderService) Update(userID, id string, input *ReminderInput) (*model.StudyReminder, error) {
	reminder, err := s.owned(userID, id)
	if err != nil {
		return nil, err
	}
	if err := validateRecurrence(input); err != nil {
		return nil, err
	}
	reminder.Title = input.Title
	reminder.Time = input.Time
	reminder.Days = input.Days
	reminder.Date = input.Date
	if input.Enabled != nil {
		reminder.Enabled = *input.Enabled
	}
	if err := s.ReminderRepo.Update(reminder); err != nil {
		return nil, err
	}
	return reminder, nil
}

// SetEnabled flips delivery on or off without touching the schedule.
func (s *ReminderService) SetEnabled(userID, id string, enabled bool) (*model.StudyReminder, error) {
	reminder, err := s.owned(userID, id)
	if err != nil {
		return nil, err
	}
	reminder.Enabled = enabled
	if err := s.ReminderRepo.Update(reminder); err != nil {
		return nil, err
	}
	return reminder, nil
}

func (s *ReminderService) Delete(userID, id string) error {
	if _, err := s.owned(userID, id); err != nil {
		return err
	}
	return s.ReminderRepo.Delete(id)
}
