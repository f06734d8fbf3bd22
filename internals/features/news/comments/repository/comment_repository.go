package repository

import (
	"context"

	"gorm.io/gorm"

	articleRepo "newshub_backend/internals/features/news/articles/repository"
	"newshub_backend/internals/features/news/comments/model"
	userRepo "newshub_backend/internals/features/news/users/repository"
	"newshub_backend/internals/helpers/apperror"
)

type CommentRepository struct {
	DB       *gorm.DB
	Articles *articleRepo.ArticleRepository
	Users    *userRepo.UserRepository
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{
		DB:       db,
		Articles: articleRepo.NewArticleRepository(db),
		Users:    userRepo.NewUserRepository(db),
	}
}

// ListByArticle returns the comments of one article, newest first. The
// article must exist; an article without comments yields an empty slice.
func (r *CommentRepository) ListByArticle(ctx context.Context, articleID int) ([]model.CommentModel, error) {
	if err := r.Articles.EnsureExists(ctx, articleID); err != nil {
		return nil, err
	}

	var comments []model.CommentModel
	if err := r.DB.WithContext(ctx).
		Where("article_id = ?", articleID).
		Order("created_at DESC").
		Find(&comments).Error; err != nil {
		return nil, apperror.Internal(err)
	}
	return comments, nil
}

// Create inserts a comment authored by username. The caller has already
// confirmed the article and validated the body shape; the author lookup
// happens here, last in the pipeline.
func (r *CommentRepository) Create(ctx context.Context, articleID int, username, body string) (*model.CommentModel, error) {
	ok, err := r.Users.Exists(ctx, username)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperror.UserNotFound()
	}

	comment := model.CommentModel{
		Body:      body,
		Author:    username,
		ArticleID: articleID,
		// Votes defaults to 0, CreatedAt is set by the store on insert.
	}
	if err := r.DB.WithContext(ctx).Create(&comment).Error; err != nil {
		return nil, apperror.Internal(err)
	}
	return &comment, nil
}

// Delete removes one comment. The explicit existence probe makes the second
// delete on the same id a kind-specific 404 rather than a silent no-op.
func (r *CommentRepository) Delete(ctx context.Context, commentID int) error {
	var n int64
	if err := r.DB.WithContext(ctx).Model(&model.CommentModel{}).
		Where("comment_id = ?", commentID).
		Count(&n).Error; err != nil {
		return apperror.Internal(err)
	}
	if n == 0 {
		return apperror.CommentNotFound()
	}

	if err := r.DB.WithContext(ctx).
		Delete(&model.CommentModel{}, "comment_id = ?", commentID).Error; err != nil {
		return apperror.Internal(err)
	}
	return nil
}
