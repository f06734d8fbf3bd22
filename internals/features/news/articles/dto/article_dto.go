package dto

import (
	"time"

	"newshub_backend/internals/features/news/articles/model"
)

// ============================
// Response DTOs
// ============================

// ArticleListItemDTO is one row of the article listing. The listing never
// exposes body but always carries the derived comment_count.
type ArticleListItemDTO struct {
	ArticleID     int       `json:"article_id"`
	Title         string    `json:"title"`
	Topic         string    `json:"topic"`
	Author        string    `json:"author"`
	CreatedAt     time.Time `json:"created_at"`
	Votes         int       `json:"votes"`
	ArticleImgURL string    `json:"article_img_url"`
	CommentCount  int       `json:"comment_count"`
}

// ArticleDetailDTO is a single article fetched by id: full row plus
// comment_count.
type ArticleDetailDTO struct {
	ArticleID     int       `json:"article_id"`
	Title         string    `json:"title"`
	Topic         string    `json:"topic"`
	Author        string    `json:"author"`
	Body          string    `json:"body"`
	CreatedAt     time.Time `json:"created_at"`
	Votes         int       `json:"votes"`
	ArticleImgURL string    `json:"article_img_url"`
	CommentCount  int       `json:"comment_count"`
}

// ArticleDTO is the plain stored row, returned by the vote update (no
// comment_count there).
type ArticleDTO struct {
	ArticleID     int       `json:"article_id"`
	Title         string    `json:"title"`
	Topic         string    `json:"topic"`
	Author        string    `json:"author"`
	Body          string    `json:"body"`
	CreatedAt     time.Time `json:"created_at"`
	Votes         int       `json:"votes"`
	ArticleImgURL string    `json:"article_img_url"`
}

// ============================
// Request DTO
// ============================

// UpdateArticleVotesRequest is the PATCH body. IncVotes is a pointer so a
// missing field fails required instead of silently reading as zero; a
// non-integer value already fails at decode time.
type UpdateArticleVotesRequest struct {
	IncVotes *int `json:"inc_votes" validate:"required"`
}

// ============================
// Converters
// ============================

func ToArticleListItemDTO(m model.ArticleWithCountModel) ArticleListItemDTO {
	return ArticleListItemDTO{
		ArticleID:     m.ArticleID,
		Title:         m.Title,
		Topic:         m.Topic,
		Author:        m.Author,
		CreatedAt:     m.CreatedAt,
		Votes:         m.Votes,
		ArticleImgURL: m.ArticleImgURL,
		CommentCount:  m.CommentCount,
	}
}

func ToArticleListItemDTOs(ms []model.ArticleWithCountModel) []ArticleListItemDTO {
	out := make([]ArticleListItemDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToArticleListItemDTO(m))
	}
	return out
}

func ToArticleDetailDTO(m model.ArticleWithCountModel) ArticleDetailDTO {
	return ArticleDetailDTO{
		ArticleID:     m.ArticleID,
		Title:         m.Title,
		Topic:         m.Topic,
		Author:        m.Author,
		Body:          m.Body,
		CreatedAt:     m.CreatedAt,
		Votes:         m.Votes,
		ArticleImgURL: m.ArticleImgURL,
		CommentCount:  m.CommentCount,
	}
}

func ToArticleDTO(m model.ArticleModel) ArticleDTO {
	return ArticleDTO{
		ArticleID:     m.ArticleID,
		Title:         m.Title,
		Topic:         m.Topic,
		Author:        m.Author,
		Body:          m.Body,
		CreatedAt:     m.CreatedAt,
		Votes:         m.Votes,
		ArticleImgURL: m.ArticleImgURL,
	}
}
