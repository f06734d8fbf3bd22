package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"newshub_backend/internals/features/news/articles/model"
	topicModel "newshub_backend/internals/features/news/topics/model"
	"newshub_backend/internals/helpers/apperror"
)

// sortableColumns is the allow-list for dynamic ORDER BY. The resolved SQL
// fragment comes from this map only; the raw query parameter is never
// interpolated.
var sortableColumns = map[string]string{
	"created_at":    "articles.created_at",
	"votes":         "articles.votes",
	"title":         "articles.title",
	"topic":         "articles.topic",
	"author":        "articles.author",
	"article_id":    "articles.article_id",
	"comment_count": "comment_count",
}

const articleWithCountSelect = "articles.article_id, articles.title, articles.topic, articles.author, " +
	"articles.body, articles.created_at, articles.votes, articles.article_img_url, " +
	"COUNT(comments.comment_id) AS comment_count"

// ListQuery carries the raw, still-unvalidated listing parameters.
type ListQuery struct {
	Topic  string
	SortBy string
	Order  string
}

// ResolveSort validates sort_by/order against the whitelist and returns the
// ORDER BY fragment. Empty values fall back to created_at DESC.
func ResolveSort(sortBy, order string) (string, error) {
	if sortBy == "" {
		sortBy = "created_at"
	}
	col, ok := sortableColumns[sortBy]
	if !ok {
		return "", apperror.BadRequest()
	}

	dir := "DESC"
	switch strings.ToLower(order) {
	case "", "desc":
	case "asc":
		dir = "ASC"
	default:
		return "", apperror.BadRequest()
	}

	return col + " " + dir, nil
}

type ArticleRepository struct {
	DB *gorm.DB
}

func NewArticleRepository(db *gorm.DB) *ArticleRepository {
	return &ArticleRepository{DB: db}
}

// List returns articles joined with their comment counts, filtered and
// ordered per q. An unknown topic is a validation failure, not an empty
// result; an existing topic with no articles returns an empty slice.
func (r *ArticleRepository) List(ctx context.Context, q ListQuery) ([]model.ArticleWithCountModel, error) {
	orderBy, err := ResolveSort(q.SortBy, q.Order)
	if err != nil {
		return nil, err
	}

	tx := r.DB.WithContext(ctx).
		Table("articles").
		Select(articleWithCountSelect).
		Joins("LEFT JOIN comments ON comments.article_id = articles.article_id").
		Group("articles.article_id")

	if q.Topic != "" {
		var n int64
		if err := r.DB.WithContext(ctx).Model(&topicModel.TopicModel{}).
			Where("slug = ?", q.Topic).
			Count(&n).Error; err != nil {
			return nil, apperror.Internal(err)
		}
		if n == 0 {
			return nil, apperror.BadRequest()
		}
		tx = tx.Where("articles.topic = ?", q.Topic)
	}

	var rows []model.ArticleWithCountModel
	if err := tx.Order(orderBy).Find(&rows).Error; err != nil {
		return nil, apperror.Internal(err)
	}
	return rows, nil
}

// GetByID returns one article with its comment count.
func (r *ArticleRepository) GetByID(ctx context.Context, id int) (*model.ArticleWithCountModel, error) {
	var row model.ArticleWithCountModel
	err := r.DB.WithContext(ctx).
		Table("articles").
		Select(articleWithCountSelect).
		Joins("LEFT JOIN comments ON comments.article_id = articles.article_id").
		Where("articles.article_id = ?", id).
		Group("articles.article_id").
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ArticleNotFound()
		}
		return nil, apperror.Internal(err)
	}
	return &row, nil
}

// EnsureExists short-circuits with a typed not-found when id has no row.
func (r *ArticleRepository) EnsureExists(ctx context.Context, id int) error {
	var n int64
	if err := r.DB.WithContext(ctx).Model(&model.ArticleModel{}).
		Where("article_id = ?", id).
		Count(&n).Error; err != nil {
		return apperror.Internal(err)
	}
	if n == 0 {
		return apperror.ArticleNotFound()
	}
	return nil
}

// IncrementVotes applies votes += inc as a single UPDATE statement (no
// read-modify-write) and returns the updated row. Votes have no floor, the
// result may go negative.
func (r *ArticleRepository) IncrementVotes(ctx context.Context, id, inc int) (*model.ArticleModel, error) {
	res := r.DB.WithContext(ctx).Model(&model.ArticleModel{}).
		Where("article_id = ?", id).
		UpdateColumn("votes", gorm.Expr("votes + ?", inc))
	if res.Error != nil {
		return nil, apperror.Internal(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperror.ArticleNotFound()
	}

	var article model.ArticleModel
	if err := r.DB.WithContext(ctx).First(&article, "article_id = ?", id).Error; err != nil {
		return nil, apperror.Internal(err)
	}
	return &article, nil
}
