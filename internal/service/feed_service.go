package service

import (
	"strings"

	"github.com/sridharvanitha686gov-bot/CodeAlpha-ProjectName-minisocial-media/internal/errors"
	"github.com/sridharvanitha686gov-bot/CodeAlpha-ProjectName-minisocial-media/internal/model"
	"github.com/sridharvanitha686gov-bot/CodeAlpha-ProjectName-minisocial-media/internal/repository/interfaces"
	"github.com/sridharvanitha686gov-bot/CodeAlpha-ProjectName-minisocial-media/internal/util"

	"go.uber.org/zap"
)

const maxFeedLimit = 100

// FeedServiceInterface 定义信息流服务的对外接口
type FeedServiceInterface interface {
	CreatePost(userID int, content string) (*model.Post, error)
	ListFeed(limit, viewerID int) ([]*model.Post, error)
	AddComment(userID, postID int, content string) (*model.Comment, error)
	ToggleLike(userID, postID int) (bool, error)
	ToggleFollow(followerID, followedID int) (bool, error)
}

// FeedService 处理帖子、评论、点赞与关注的业务逻辑
type FeedService struct {
	repo interfaces.FeedRepository
}

func NewFeedService(repo interfaces.FeedRepository) *FeedService {
	return &FeedService{repo}
}

// CreatePost 发布新帖子
func (s *FeedService) CreatePost(userID int, content string) (*model.Post, error) {
	if strings.TrimSpace(content) == "" {
		return nil, errors.New(errors.ErrValidation, "内容不能为空")
	}

	post := &model.Post{
		UserID:  userID,
		Content: content,
	}
	if err := s.repo.CreatePost(post); err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "创建帖子失败", err)
	}

	// 返回时带上作者信息，便于客户端直接渲染
	created, err := s.repo.GetPostByID(post.ID)
	if err != nil || created == nil {
		return post, nil
	}
	return created, nil
}

// ListFeed 返回最新的帖子列表。viewerID 大于 0 时填充点赞状态。
func (s *FeedService) ListFeed(limit, viewerID int) ([]*model.Post, error) {
	if limit <= 0 || limit > maxFeedLimit {
		limit = maxFeedLimit / 2
	}

	posts, err := s.repo.ListPosts(limit)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "获取帖子列表失败", err)
	}
	if posts == nil {
		posts = []*model.Post{}
	}

	if viewerID > 0 {
		for _, post := range posts {
			liked, err := s.repo.IsPostLikedByUser(post.ID, viewerID)
			if err != nil {
				return nil, errors.Wrap(errors.ErrDatabase, "检查点赞状态失败", err)
			}
			post.IsLiked = liked
		}
	}
	return posts, nil
}

// AddComment 在帖子下发表评论
func (s *FeedService) AddComment(userID, postID int, content string) (*model.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, errors.New(errors.ErrValidation, "内容不能为空")
	}

	post, err := s.repo.GetPostByID(postID)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "查询帖子失败", err)
	}
	if post == nil {
		return nil, errors.New(errors.ErrPostNotFound, "帖子不存在")
	}

	comment := &model.Comment{
		PostID:  postID,
		UserID:  userID,
		Content: content,
	}
	if err := s.repo.CreateComment(comment); err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "创建评论失败", err)
	}

	user, err := s.repo.GetUserByID(userID)
	if err == nil && user != nil {
		comment.User = user
	}
	return comment, nil
}

// ToggleLike 切换点赞状态：已点赞则取消，未点赞则点赞，返回最新状态
func (s *FeedService) ToggleLike(userID, postID int) (bool, error) {
	post, err := s.repo.GetPostByID(postID)
	if err != nil {
		return false, errors.Wrap(errors.ErrDatabase, "查询帖子失败", err)
	}
	if post == nil {
		return false, errors.New(errors.ErrPostNotFound, "帖子不存在")
	}

	liked, err := s.repo.IsPostLikedByUser(postID, userID)
	if err != nil {
		return false, errors.Wrap(errors.ErrDatabase, "检查点赞状态失败", err)
	}

	if liked {
		if err := s.repo.DeleteLike(userID, postID); err != nil {
			return false, errors.Wrap(errors.ErrDatabase, "取消点赞失败", err)
		}
		return false, nil
	}

	if err := s.repo.CreateLike(&model.Like{UserID: userID, PostID: postID}); err != nil {
		return false, errors.Wrap(errors.ErrDatabase, "点赞失败", err)
	}
	util.Logger.Info("帖子获得点赞",
		zap.Int("post_id", postID),
		zap.Int("user_id", userID))
	return true, nil
}

// ToggleFollow 切换关注状态，不允许关注自己
func (s *FeedService) ToggleFollow(followerID, followedID int) (bool, error) {
	if followerID == followedID {
		return false, errors.New(errors.ErrSelfFollow, "不能关注自己")
	}

	target, err := s.repo.GetUserByID(followedID)
	if err != nil {
		return false, errors.Wrap(errors.ErrDatabase, "查询用户失败", err)
	}
	if target == nil {
		return false, errors.New(errors.ErrUserNotFound, "用户不存在")
	}

	following, err := s.repo.IsFollowing(followerID, followedID)
	if err != nil {
		return false, errors.Wrap(errors.ErrDatabase, "检查关注状态失败", err)
	}

	if following {
		if err := s.repo.DeleteFollow(followerID, followedID); err != nil {
			return false, errors.Wrap(errors.ErrDatabase, "取消关注失败", err)
		}
		return false, nil
	}

	if err := s.repo.CreateFollow(&model.Follow{FollowerID: followerID, FollowedID: followedID}); err != nil {
		return false, errors.Wrap(errors.ErrDatabase, "关注失败", err)
	}
	return true, nil
}
