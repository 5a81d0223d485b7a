package gormdb

import (
	"errors"

	"github.com/sridharvanitha686gov-bot/CodeAlpha-ProjectName-minisocial-media/internal/model"
	"github.com/sridharvanitha686gov-bot/CodeAlpha-ProjectName-minisocial-media/internal/util"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type feedRepository struct {
	db *gorm.DB
}

func NewFeedRepository(db *gorm.DB) *feedRepository {
	return &feedRepository{db: db}
}

func (r *feedRepository) CreatePost(post *model.Post) error {
	if err := r.db.Create(post).Error; err != nil {
		util.Logger.Error("创建帖子失败", zap.Error(err))
		return err
	}
	util.Logger.Info("帖子创建成功", zap.Int("post_id", post.ID))
	return nil
}

func (r *feedRepository) GetPostByID(id int) (*model.Post, error) {
	var post model.Post
	err := r.db.Preload("User").First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// ListPosts 返回最新的帖子，按创建时间倒序，预加载作者与评论（含评论作者）
func (r *feedRepository) ListPosts(limit int) ([]*model.Post, error) {
	var posts []*model.Post
	err := r.db.
		Preload("User").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at ASC")
		}).
		Preload("Comments.User").
		Order("created_at DESC").
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		util.Logger.Error("获取帖子列表失败", zap.Error(err))
		return nil, err
	}

	// 填充每个帖子的点赞数
	for _, post := range posts {
		count, err := r.GetLikeCount(post.ID)
		if err != nil {
			return nil, err
		}
		post.LikeCount = count
	}
	return posts, nil
}

func (r *feedRepository) GetUserPosts(userID, limit int) ([]*model.Post, error) {
	var posts []*model.Post
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	for _, post := range posts {
		count, err := r.GetLikeCount(post.ID)
		if err != nil {
			return nil, err
		}
		post.LikeCount = count
	}
	return posts, nil
}

func (r *feedRepository) CreateComment(comment *model.Comment) error {
	if err := r.db.Create(comment).Error; err != nil {
		util.Logger.Error("创建评论失败", zap.Error(err))
		return err
	}
	return nil
}

func (r *feedRepository) CreateLike(like *model.Like) error {
	return r.db.Create(like).Error
}

func (r *feedRepository) DeleteLike(userID, postID int) error {
	return r.db.
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&model.Like{}).Error
}

func (r *feedRepository) IsPostLikedByUser(postID, userID int) (bool, error) {
	var count int64
	err := r.db.Model(&model.Like{}).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *feedRepository) GetLikeCount(postID int) (int, error) {
	var count int64
	err := r.db.Model(&model.Like{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return int(count), nil
}

func (r *feedRepository) CreateFollow(follow *model.Follow) error {
	return r.db.Create(follow).Error
}

func (r *feedRepository) DeleteFollow(followerID, followedID int) error {
	return r.db.
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Delete(&model.Follow{}).Error
}

func (r *feedRepository) IsFollowing(followerID, followedID int) (bool, error) {
	var count int64
	err := r.db.Model(&model.Follow{}).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *feedRepository) GetFollowers(userID int) ([]model.UserRef, error) {
	var refs []model.UserRef
	err := r.db.Model(&model.User{}).
		Select("users.id, users.username").
		Joins("JOIN follows ON follows.follower_id = users.id").
		Where("follows.followed_id = ?", userID).
		Scan(&refs).Error
	if err != nil {
		util.Logger.Error("获取关注者列表失败", zap.Error(err), zap.Int("user_id", userID))
		return nil, err
	}
	return refs, nil
}

func (r *feedRepository) GetFollowing(userID int) ([]model.UserRef, error) {
	var refs []model.UserRef
	err := r.db.Model(&model.User{}).
		Select("users.id, users.username").
		Joins("JOIN follows ON follows.followed_id = users.id").
		Where("follows.follower_id = ?", userID).
		Scan(&refs).Error
	if err != nil {
		util.Logger.Error("获取关注列表失败", zap.Error(err), zap.Int("user_id", userID))
		return nil, err
	}
	return refs, nil
}

func (r *feedRepository) GetUserByID(id int) (*model.User, error) {
	var user model.User
	err := r.db.First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}
