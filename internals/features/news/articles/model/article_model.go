package model

import "time"

// ArticleModel is the articles table. Topic and Author are plain FK columns;
// referential integrity at write time is enforced by the repositories through
// explicit existence checks before any insert or update.
type ArticleModel struct {
	ArticleID     int       `gorm:"column:article_id;primaryKey;autoIncrement" json:"article_id"`
	Title         string    `gorm:"column:title;not null" json:"title"`
	Topic         string    `gorm:"column:topic;not null;index" json:"topic"`
	Author        string    `gorm:"column:author;not null" json:"author"`
	Body          string    `gorm:"column:body;type:text;not null" json:"body"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	Votes         int       `gorm:"column:votes;not null;default:0" json:"votes"`
	ArticleImgURL string    `gorm:"column:article_img_url;type:text" json:"article_img_url"`
}

func (ArticleModel) TableName() string {
	return "articles"
}

// ArticleWithCountModel is the scan target for article reads joined with the
// derived per-article comment count. Never stored.
type ArticleWithCountModel struct {
	ArticleID     int       `gorm:"column:article_id"`
	Title         string    `gorm:"column:title"`
	Topic         string    `gorm:"column:topic"`
	Author        string    `gorm:"column:author"`
	Body          string    `gorm:"column:body"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	Votes         int       `gorm:"column:votes"`
	ArticleImgURL string    `gorm:"column:article_img_url"`
	CommentCount  int       `gorm:"column:comment_count"`
}
