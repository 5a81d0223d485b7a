package user

import (
	"net/http"

	"github.com/sridharvanitha686gov-bot/CodeAlpha-ProjectName-minisocial-media/internal/errors"
	"github.com/sridharvanitha686gov-bot/CodeAlpha-ProjectName-minisocial-media/internal/model"
	"github.com/sridharvanitha686gov-bot/CodeAlpha-ProjectName-minisocial-media/internal/service"
	"github.com/sridharvanitha686gov-bot/CodeAlpha-ProjectName-minisocial-media/internal/util"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler 处理与认证相关的HTTP请求
type AuthHandler struct {
	userService service.UserServiceInterface
}

// NewAuthHandler 创建一个新的 AuthHandler 实例
func NewAuthHandler(userService service.UserServiceInterface) *AuthHandler {
	return &AuthHandler{userService}
}

// Register 处理用户注册请求
func (h *AuthHandler) Register(c *gin.Context) {
	var registerData struct {
		Username    string `json:"username" binding:"required,username_format"`
		Password    string `json:"password" binding:"required"`
		DisplayName string `json:"display_name"`
	}

	if err := c.ShouldBindJSON(&registerData); err != nil {
		util.Logger.Warn("注册失败，无效的请求数据", zap.Error(err))
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, "用户名和密码为必填项", err))
		return
	}

	user := &model.User{
		Username:     registerData.Username,
		DisplayName:  registerData.DisplayName,
		PasswordHash: registerData.Password,
	}

	if err := h.userService.Register(user); err != nil {
		if appErr, ok := err.(*errors.AppError); ok && appErr.Code == errors.ErrUserExists {
			util.Logger.Warn("注册失败，用户名已存在",
				zap.String("username", user.Username))
			errors.HandleError(c, err)
			return
		}
		util.Logger.Error("注册失败", zap.Error(err))
		errors.HandleError(c, err)
		return
	}

	token, err := util.GenerateToken(user.ID)
	if err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrInternal, "生成令牌失败", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  user,
	})
}

// Login 处理用户登录请求
func (h *AuthHandler) Login(c *gin.Context) {
	var loginData struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&loginData); err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, "用户名和密码为必填项", err))
		return
	}

	user, err := h.userService.Login(loginData.Username, loginData.Password)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	token, err := util.GenerateToken(user.ID)
	if err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrInternal, "生成令牌失败", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  user,
	})
}

// Me 返回当前登录用户的信息
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetInt("user_id")

	user, err := h.userService.GetUserByID(userID)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
