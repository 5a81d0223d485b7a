package util

import (
	"testing"

	"github.com/sridharvanitha686gov-bot/CodeAlpha-ProjectName-minisocial-media/config"

	"github.com/stretchr/testify/assert"
)

// TestTokenRoundtrip 测试签发的令牌总能被校验通过
func TestTokenRoundtrip(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	token, err := GenerateToken(42)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	userID, err := ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, 42, userID)
}

// TestValidateTokenInvalid 测试非法令牌被拒绝
func TestValidateTokenInvalid(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	_, err := ValidateToken("")
	assert.Error(t, err)

	_, err = ValidateToken("not-a-token")
	assert.Error(t, err)
}

// TestValidateTokenWrongSecret 测试密钥不匹配时校验失败
func TestValidateTokenWrongSecret(t *testing.T) {
	config.AppConfig.JWTSecret = "secret-a"
	token, err := GenerateToken(1)
	assert.NoError(t, err)

	config.AppConfig.JWTSecret = "secret-b"
	_, err = ValidateToken(token)
	assert.Error(t, err)
}
