package service

import "github.com/telecom-portal/internal/config"

// validatePassword 校验密码是否满足最小长度策略
func validatePassword(policy config.PasswordPolicyConfig, password string) error {
	if policy.MinLength <= 0 {
		return nil
	}
	if len([]rune(password)) < policy.MinLength {
		return ErrWeakPassword
	}
	return nil
}
