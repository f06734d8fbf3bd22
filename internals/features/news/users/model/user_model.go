package model

// UserModel is the users table. Usernames are the natural key; articles and
// comments reference them as author.
type UserModel struct {
	Username  string `gorm:"column:username;primaryKey" json:"username"`
	Name      string `gorm:"column:name;not null" json:"name"`
	AvatarURL string `gorm:"column:avatar_url;type:text" json:"avatar_url"`
}

func (UserModel) TableName() string {
	return "users"
}
