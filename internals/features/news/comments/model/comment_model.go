package model

import "time"

// CommentModel is the comments table. A comment lives and dies independently
// of its article row; deletion of a comment never touches the article.
type CommentModel struct {
	CommentID int       `gorm:"column:comment_id;primaryKey;autoIncrement" json:"comment_id"`
	Body      string    `gorm:"column:body;type:text;not null" json:"body"`
	Votes     int       `gorm:"column:votes;not null;default:0" json:"votes"`
	Author    string    `gorm:"column:author;not null" json:"author"`
	ArticleID int       `gorm:"column:article_id;not null;index" json:"article_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (CommentModel) TableName() string {
	return "comments"
}
