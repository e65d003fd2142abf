package repository

import (
	"careerready_backend/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id string) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, "id = ?", id).Error
	return &user, err
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("email = ?", email).First(&user).Error
	return &user, err
}

func (r *UserRepository) Update(user *model.User) error {
	return r.DB.Save(user).Error
}

// FindAll returns every user ordered by creation time. The corpus is small
// enough that suggestion filtering happens in memory, mirroring the
// original's read-everything-then-join approach.
func (r *UserRepository) FindAll() ([]model.User, error) {
	var users []model.User
	err := r.DB.Order("created_at ASC").Find(&users).Error
	return users, err
}

func (r *UserRepository) UpdateFavorites(userID string, favorites model.StringList) error {
	return r.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Update("favorites", favorites).
		Error
}
