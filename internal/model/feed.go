package model

import "time"

type Post struct {
	ID        int       `gorm:"primaryKey" json:"id"`
	UserID    int       `gorm:"index;not null" json:"user_id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User *User `json:"user,omitempty"`
	// 删除帖子时级联删除其评论
	Comments []*Comment `gorm:"constraint:OnDelete:CASCADE" json:"comments"`

	LikeCount int  `gorm:"-" json:"like_count"`
	IsLiked   bool `gorm:"-" json:"is_liked"`
}

type Comment struct {
	ID        int       `gorm:"primaryKey" json:"id"`
	PostID    int       `gorm:"index;not null" json:"post_id"`
	UserID    int       `gorm:"index;not null" json:"user_id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`

	User *User `json:"user,omitempty"`
}

// Like 是用户与帖子之间的点赞关联行，(user_id, post_id) 全局唯一
type Like struct {
	ID        int       `gorm:"primaryKey" json:"id"`
	UserID    int       `gorm:"not null;uniqueIndex:uk_like_user_post" json:"user_id"`
	PostID    int       `gorm:"not null;uniqueIndex:uk_like_user_post" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Follow 是关注关联行，(follower_id, followed_id) 全局唯一
type Follow struct {
	ID         int       `gorm:"primaryKey" json:"id"`
	FollowerID int       `gorm:"not null;uniqueIndex:uk_follow_pair" json:"follower_id"`
	FollowedID int       `gorm:"not null;uniqueIndex:uk_follow_pair" json:"followed_id"`
	CreatedAt  time.Time `json:"created_at"`
}
