package repository

import (
	"context"

	"gorm.io/gorm"

	"newshub_backend/internals/features/news/users/model"
	"newshub_backend/internals/helpers/apperror"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) List(ctx context.Context) ([]model.UserModel, error) {
	var users []model.UserModel
	if err := r.DB.WithContext(ctx).Order("username ASC").Find(&users).Error; err != nil {
		return nil, apperror.Internal(err)
	}
	return users, nil
}

// Exists reports whether username belongs to a registered user.
func (r *UserRepository) Exists(ctx context.Context, username string) (bool, error) {
	var n int64
	if err := r.DB.WithContext(ctx).Model(&model.UserModel{}).
		Where("username = ?", username).
		Count(&n).Error; err != nil {
		return false, apperror.Internal(err)
	}
	return n > 0, nil
}
