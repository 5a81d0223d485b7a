package util

import (
	"errors"

	"github.com/sridharvanitha686gov-bot/CodeAlpha-ProjectName-minisocial-media/config"

	"github.com/dgrijalva/jwt-go"
)

// GenerateToken 为指定用户签发令牌。令牌不携带过期时间，
// 一经签发长期有效（与原有行为保持一致）。
func GenerateToken(userID int) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
	})

	return token.SignedString([]byte(config.AppConfig.JWTSecret))
}

// ValidateToken 校验令牌并返回其中携带的用户ID
func ValidateToken(tokenString string) (int, error) {
	if tokenString == "" {
		return 0, errors.New("令牌为空")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("非预期的签名方法")
		}
		return []byte(config.AppConfig.JWTSecret), nil
	})

	if err != nil {
		return 0, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		userID, ok := claims["user_id"].(float64)
		if !ok {
			return 0, errors.New("无效的用户ID")
		}
		return int(userID), nil
	}

	return 0, errors.New("无效的令牌")
}
