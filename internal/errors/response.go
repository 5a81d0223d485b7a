package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse 定义错误响应结构，所有错误统一以 {"error": 信息} 返回
type ErrorResponse struct {
	Error string `json:"error"`
}

// 错误码与HTTP状态码映射
var errorStatusMap = map[ErrorCode]int{
	// 系统错误 (1000-1999)
	ErrInternal: http.StatusInternalServerError,
	ErrDatabase: http.StatusInternalServerError,
	ErrTimeout:  http.StatusRequestTimeout,

	// 认证错误 (2000-2999)
	ErrUnauthorized: http.StatusUnauthorized,
	ErrInvalidToken: http.StatusUnauthorized,
	// 登录失败按照对外接口约定返回 400
	ErrInvalidCredentials: http.StatusBadRequest,

	// 请求错误 (3000-3999)
	ErrBadRequest:       http.StatusBadRequest,
	ErrValidation:       http.StatusBadRequest,
	ErrResourceNotFound: http.StatusNotFound,

	// 业务错误 (4000-4999)
	ErrUserNotFound: http.StatusNotFound,
	// 用户名重复同样返回 400
	ErrUserExists:   http.StatusBadRequest,
	ErrPostNotFound: http.StatusNotFound,
	ErrSelfFollow:   http.StatusBadRequest,
}

// HandleError 统一处理错误响应
func HandleError(c *gin.Context, err error) {
	if appErr, ok := err.(*AppError); ok {
		status := errorStatusMap[appErr.Code]
		if status == 0 {
			status = http.StatusInternalServerError
		}

		c.JSON(status, ErrorResponse{Error: appErr.Message})
		return
	}

	// 处理非 AppError 类型的错误
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "服务器内部错误"})
}
