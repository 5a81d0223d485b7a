package feed

import (
	"net/http"
	"strconv"

	"github.com/sridharvanitha686gov-bot/CodeAlpha-ProjectName-minisocial-media/config"
	"github.com/sridharvanitha686gov-bot/CodeAlpha-ProjectName-minisocial-media/internal/errors"
	"github.com/sridharvanitha686gov-bot/CodeAlpha-ProjectName-minisocial-media/internal/service"
	"github.com/sridharvanitha686gov-bot/CodeAlpha-ProjectName-minisocial-media/internal/util"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FeedHandler 处理帖子、评论、点赞、关注与用户主页相关的HTTP请求
type FeedHandler struct {
	feedService service.FeedServiceInterface
	userService service.UserServiceInterface
}

func NewFeedHandler(feedService service.FeedServiceInterface, userService service.UserServiceInterface) *FeedHandler {
	return &FeedHandler{
		feedService: feedService,
		userService: userService,
	}
}

// ListPosts 返回信息流，未登录用户也可访问
func (h *FeedHandler) ListPosts(c *gin.Context) {
	viewerID := 0
	if userID, exists := c.Get("user_id"); exists {
		viewerID = userID.(int)
	}

	posts, err := h.feedService.ListFeed(config.AppConfig.FeedLimit, viewerID)
	if err != nil {
		util.Logger.Error("获取帖子列表失败", zap.Error(err))
		errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

// CreatePost 发布新帖子
func (h *FeedHandler) CreatePost(c *gin.Context) {
	var postData struct {
		Content string `json:"content" binding:"required"`
	}

	if err := c.ShouldBindJSON(&postData); err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, "内容不能为空", err))
		return
	}

	userID := c.GetInt("user_id")
	post, err := h.feedService.CreatePost(userID, postData.Content)
	if err != nil {
		util.Logger.Error("创建帖子失败", zap.Error(err), zap.Int("user_id", userID))
		errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

// CreateComment 在帖子下发表评论
func (h *FeedHandler) CreateComment(c *gin.Context) {
	postID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		errors.HandleError(c, errors.New(errors.ErrValidation, "无效的帖子ID"))
		return
	}

	var commentData struct {
		Content string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&commentData); err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, "内容不能为空", err))
		return
	}

	userID := c.GetInt("user_id")
	comment, err := h.feedService.AddComment(userID, postID, commentData.Content)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, comment)
}

// ToggleLike 切换当前用户对帖子的点赞状态
func (h *FeedHandler) ToggleLike(c *gin.Context) {
	postID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		errors.HandleError(c, errors.New(errors.ErrValidation, "无效的帖子ID"))
		return
	}

	userID := c.GetInt("user_id")
	liked, err := h.feedService.ToggleLike(userID, postID)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"liked": liked})
}

// ToggleFollow 切换当前用户对目标用户的关注状态
func (h *FeedHandler) ToggleFollow(c *gin.Context) {
	followedID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		errors.HandleError(c, errors.New(errors.ErrValidation, "无效的用户ID"))
		return
	}

	followerID := c.GetInt("user_id")
	following, err := h.feedService.ToggleFollow(followerID, followedID)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"following": following})
}

// GetProfile 返回用户主页
func (h *FeedHandler) GetProfile(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		errors.HandleError(c, errors.New(errors.ErrValidation, "无效的用户ID"))
		return
	}

	profile, err := h.userService.GetProfile(userID)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}
