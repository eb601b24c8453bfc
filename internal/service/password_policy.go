package service

import (
	"unicode"
	"unicode/utf8"

	"github.com/fanxi-showcase/internal/config"
)

// PasswordPolicyError 密码策略校验失败，携带文案 key 与参数
type PasswordPolicyError struct {
	key  string
	args []interface{}
}

func (e PasswordPolicyError) Error() string {
	return e.key
}

// Is 使 errors.Is(err, ErrWeakPassword) 成立
func (e PasswordPolicyError) Is(target error) bool {
	return target == ErrWeakPassword
}

// Key 文案 key
func (e PasswordPolicyError) Key() string {
	return e.key
}

// Args 文案参数
func (e PasswordPolicyError) Args() []interface{} {
	return e.args
}

type passwordClasses struct {
	upper, lower, number, special bool
}

func classifyPassword(password string) passwordClasses {
	var classes passwordClasses
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			classes.upper = true
		case unicode.IsLower(r):
			classes.lower = true
		case unicode.IsDigit(r):
			classes.number = true
		default:
			classes.special = true
		}
	}
	return classes
}

func validatePassword(policy config.PasswordPolicyConfig, password string) error {
	if policy.MinLength > 0 && utf8.RuneCountInString(password) < policy.MinLength {
		return PasswordPolicyError{key: "error.password_min_length", args: []interface{}{policy.MinLength}}
	}

	classes := classifyPassword(password)
	rules := []struct {
		required bool
		present  bool
		key      string
	}{
		{policy.RequireUpper, classes.upper, "error.password_upper_required"},
		{policy.RequireLower, classes.lower, "error.password_lower_required"},
		{policy.RequireNumber, classes.number, "error.password_number_required"},
		{policy.RequireSpecial, classes.special, "error.password_special_required"},
	}
	for _, rule := range rules {
		if rule.required && !rule.present {
			return PasswordPolicyError{key: rule.key}
		}
	}
	return nil
}
