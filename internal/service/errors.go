package service

import "errors"

// 业务错误哨兵，供 handler 层用 errors.Is 映射响应码
var (
	ErrInvalidCredentials        = errors.New("invalid credentials")
	ErrEmailExists               = errors.New("email already registered")
	ErrInvalidEmail              = errors.New("invalid email")
	ErrWeakPassword              = errors.New("password too weak")
	ErrInvalidResetToken         = errors.New("invalid reset token")
	ErrResetTokenExpired         = errors.New("reset token expired")
	ErrNotFound                  = errors.New("record not found")
	ErrPlanNotFound              = errors.New("plan not found")
	ErrBillNotPayable            = errors.New("bill not payable")
	ErrEmailServiceDisabled      = errors.New("email service disabled")
	ErrEmailServiceNotConfigured = errors.New("email service not configured")
)
