package public

import (
	"github.com/telecom-portal/internal/http/response"

	"github.com/gin-gonic/gin"
)

// 无论邮箱是否注册都返回同一提示，避免探测账号存在性
const forgotPasswordMessage = "If an account exists for this email, a reset link has been sent."

// ForgotPasswordRequest 找回密码请求
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required"`
}

// ForgotPassword 发起找回密码
func (h *Handler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "email is required", err)
		return
	}

	resetURL, err := h.CustomerAuthService.RequestPasswordReset(req.Email)
	if err != nil {
		respondError(c, response.CodeInternal, "request failed", err)
		return
	}

	data := gin.H{"message": forgotPasswordMessage}
	if resetURL != "" && h.Config.DebugLinkEnabled() {
		data["debug_link"] = resetURL
	}
	response.Success(c, data)
}

// ResetPasswordRequest 重置密码请求
type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// ResetPassword 使用令牌重置密码
func (h *Handler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "token and new_password are required", err)
		return
	}

	if err := h.CustomerAuthService.CompletePasswordReset(req.Token, req.NewPassword); err != nil {
		respondWithMappedError(c, err, resetPasswordErrorRules, response.CodeInternal, "reset failed")
		return
	}

	response.SuccessWithMsg(c, "password updated", nil)
}
