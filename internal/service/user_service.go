package service

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"

	"careerready_backend/internal/model"
	"careerready_backend/internal/repository"
	"careerready_backend/internal/util"
	"careerready_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type UserService struct {
	UserRepo     *repository.UserRepository
	InterestRepo *repository.InterestRepository
	Storage      *StorageService
}

func NewUserService(userRepo *repository.UserRepository, interestRepo *repository.InterestRepository, storage *StorageService) *UserService {
	return &UserService{UserRepo: userRepo, InterestRepo: interestRepo, Storage: storage}
}

// ProfileInput carries the self-editable profile fields. Email and password
// are not editable here.
type ProfileInput struct {
	Name      string           `json:"name" binding:"required"`
	LinkedIn  string           `json:"linkedin"`
	LeetCode  string           `json:"leetcode"`
	GitHub    string           `json:"github"`
	Interests model.StringList `json:"interests"`
}

func (s *UserService) GetByID(id string) (*model.User, error) {
	user, err := s.UserRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrUserNotFound
	}
	return user, err
}

// UpdateProfile saves the editable fields and folds any new interest tags
// into the shared vocabulary. A vocabulary write failure does not fail the
// profile save.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, input *ProfileInput) (*model.User, error) {
	user, err := s.GetByID(userID)
	if err != nil {
		return nil, err
	}

	user.Name = input.Name
	user.LinkedIn = input.LinkedIn
	user.LeetCode = input.LeetCode
	user.GitHub = input.GitHub
	if input.Interests != nil {
		user.Interests = input.Interests
	}

	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}

	if err := s.InterestRepo.AppendMissing(ctx, user.Interests); err != nil {
		logger.Log.Warn("interest vocabulary update failed",
			zap.String("userId", userID), zap.Error(err))
	}
	return user, nil
}

// UploadAvatar stores the image and points the profile at its URL.
func (s *UserService) UploadAvatar(ctx context.Context, userID string, file *multipart.FileHeader) (*model.User, error) {
	user, err := s.GetByID(userID)
	if err != nil {
		return nil, err
	}

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	filename := fmt.Sprintf("avatars/%s%s", userID, filepath.Ext(file.Filename))
	url, err := s.Storage.Upload(ctx, filename, src, file.Size, file.Header.Get("Content-Type"))
	if err != nil {
		return nil, err
	}

	user.Avatar = url
	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}
