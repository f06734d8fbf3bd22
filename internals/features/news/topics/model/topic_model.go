package model

// TopicModel is the topics table: a slug-keyed section of the platform that
// articles hang off.
type TopicModel struct {
	Slug        string `gorm:"column:slug;primaryKey" json:"slug"`
	Description string `gorm:"column:description;type:text;not null" json:"description"`
}

func (TopicModel) TableName() string {
	return "topics"
}
