package service

import (
	"errors"

	"careerready_backend/internal/config"
	"careerready_backend/internal/model"
	"careerready_backend/internal/repository"
	"careerready_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	UserRepo *repository.UserRepository
	Config   *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{UserRepo: userRepo, Config: cfg}
}

type RegisterInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (s *AuthService) Register(input *RegisterInput) (*model.User, string, error) {
	if _, err := s.UserRepo.FindByEmail(input.Email); err == nil {
		return nil, "", util.ErrEmailRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := &model.User{
		Name:      input.Name,
		Email:     input.Email,
		Password:  string(hashed),
		Interests: model.StringList{},
		Favorites: model.StringList{},
	}
	if err := s.UserRepo.Create(user); err != nil {
		return nil, "", err
	}

	token, err := util.GenerateJWT(user, s.Config.JWT.Secret, s.Config.JWT.ExpireTime)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *AuthService) Login(input *LoginInput) (*model.User, string, error) {
	user, err := s.UserRepo.FindByEmail(input.Email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", util.ErrUserNotFound
	}
	if err != nil {
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return nil, "", util.ErrUserNotFound
	}

	token, err := util.GenerateJWT(user, s.Config.JWT.Secret, s.Config.JWT.ExpireTime)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}
