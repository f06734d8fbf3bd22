package database

import (
	"gorm.io/gorm"

	articleModel "newshub_backend/internals/features/news/articles/model"
	commentModel "newshub_backend/internals/features/news/comments/model"
	topicModel "newshub_backend/internals/features/news/topics/model"
	userModel "newshub_backend/internals/features/news/users/model"
)

// AutoMigrate declares the schema from the feature models, parents before
// children.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&topicModel.TopicModel{},
		&userModel.UserModel{},
		&articleModel.ArticleModel{},
		&commentModel.CommentModel{},
	)
}
