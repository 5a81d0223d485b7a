package model

import "time"

// User 结构体表示用户模型
type User struct {
	ID           int       `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"size:64;uniqueIndex;not null" json:"username"`
	DisplayName  string    `gorm:"size:64" json:"display_name"`
	PasswordHash string    `gorm:"size:128;not null" json:"-"` // 密码哈希不应在JSON中暴露
	Bio          string    `gorm:"type:text" json:"bio"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// 删除用户时级联删除其帖子
	Posts []Post `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// UserRef 是用户的简要引用，用于关注者/被关注者列表
type UserRef struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}

// Profile 是对外展示的用户主页数据
type Profile struct {
	ID          int       `json:"id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name"`
	Bio         string    `json:"bio"`
	Posts       []*Post   `json:"posts"`
	Followers   []UserRef `json:"followers"`
	Following   []UserRef `json:"following"`
}
