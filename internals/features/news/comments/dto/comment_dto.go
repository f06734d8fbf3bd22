package dto

import (
	"time"

	"newshub_backend/internals/features/news/comments/model"
)

// ============================
// Response DTO
// ============================

type CommentDTO struct {
	CommentID int       `json:"comment_id"`
	Body      string    `json:"body"`
	Votes     int       `json:"votes"`
	Author    string    `json:"author"`
	ArticleID int       `json:"article_id"`
	CreatedAt time.Time `json:"created_at"`
}

// ============================
// Create Request DTO
// ============================

type CreateCommentRequest struct {
	Username string `json:"username" validate:"required"`
	Body     string `json:"body" validate:"required"`
}

// ============================
// Converter
// ============================

func ToCommentDTO(m model.CommentModel) CommentDTO {
	return CommentDTO{
		CommentID: m.CommentID,
		Body:      m.Body,
		Votes:     m.Votes,
		Author:    m.Author,
		ArticleID: m.ArticleID,
		CreatedAt: m.CreatedAt,
	}
}

func ToCommentDTOs(ms []model.CommentModel) []CommentDTO {
	out := make([]CommentDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToCommentDTO(m))
	}
	return out
}
