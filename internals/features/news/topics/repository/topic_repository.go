package repository

import (
	"context"

	"gorm.io/gorm"

	"newshub_backend/internals/features/news/topics/model"
	"newshub_backend/internals/helpers/apperror"
)

type TopicRepository struct {
	DB *gorm.DB
}

func NewTopicRepository(db *gorm.DB) *TopicRepository {
	return &TopicRepository{DB: db}
}

func (r *TopicRepository) List(ctx context.Context) ([]model.TopicModel, error) {
	var topics []model.TopicModel
	if err := r.DB.WithContext(ctx).Order("slug ASC").Find(&topics).Error; err != nil {
		return nil, apperror.Internal(err)
	}
	return topics, nil
}

// Exists reports whether slug names a seeded topic.
func (r *TopicRepository) Exists(ctx context.Context, slug string) (bool, error) {
	var n int64
	if err := r.DB.WithContext(ctx).Model(&model.TopicModel{}).
		Where("slug = ?", slug).
		Count(&n).Error; err != nil {
		return false, apperror.Internal(err)
	}
	return n > 0, nil
}
