package interfaces

import "github.com/sridharvanitha686gov-bot/CodeAlpha-ProjectName-minisocial-media/internal/model"

// FeedRepository 定义了信息流相关的数据库操作接口
type FeedRepository interface {
	CreatePost(post *model.Post) error
	GetPostByID(id int) (*model.Post, error)
	ListPosts(limit int) ([]*model.Post, error)
	GetUserPosts(userID, limit int) ([]*model.Post, error)

	CreateComment(comment *model.Comment) error

	CreateLike(like *model.Like) error
	DeleteLike(userID, postID int) error
	IsPostLikedByUser(postID, userID int) (bool, error)
	GetLikeCount(postID int) (int, error)

	CreateFollow(follow *model.Follow) error
	DeleteFollow(followerID, followedID int) error
	IsFollowing(followerID, followedID int) (bool, error)
	GetFollowers(userID int) ([]model.UserRef, error)
	GetFollowing(userID int) ([]model.UserRef, error)

	GetUserByID(id int) (*model.User, error)
}
