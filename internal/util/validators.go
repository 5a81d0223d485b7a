package util

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]{2,32}$`)

// ValidateUsername 验证用户名格式（字母、数字、下划线，2-32位）
func ValidateUsername(fl validator.FieldLevel) bool {
	username, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return usernamePattern.MatchString(username)
}
