package middleware

import (
	"strings"

	"github.com/sridharvanitha686gov-bot/CodeAlpha-ProjectName-minisocial-media/internal/errors"
	"github.com/sridharvanitha686gov-bot/CodeAlpha-ProjectName-minisocial-media/internal/util"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware 校验 Bearer 令牌，将用户ID写入上下文
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := userIDFromHeader(c)
		if err != nil {
			errors.HandleError(c, err)
			c.Abort()
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}

// OptionalAuthMiddleware 与 AuthMiddleware 相同，但令牌缺失或无效时不拦截请求，
// 用于公开接口按需识别当前用户（例如信息流中的点赞状态）
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, err := userIDFromHeader(c); err == nil {
			c.Set("user_id", userID)
		}
		c.Next()
	}
}

func userIDFromHeader(c *gin.Context) (int, *errors.AppError) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return 0, errors.New(errors.ErrUnauthorized, "缺少令牌")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if !(len(parts) == 2 && parts[0] == "Bearer") {
		return 0, errors.New(errors.ErrUnauthorized, "无效的认证格式")
	}

	userID, err := util.ValidateToken(parts[1])
	if err != nil {
		return 0, errors.Wrap(errors.ErrInvalidToken, "无效的令牌", err)
	}
	return userID, nil
}
