package public

import (
	"errors"

	"github.com/telecom-portal/internal/http/handlers/shared"
	"github.com/telecom-portal/internal/http/response"
	"github.com/telecom-portal/internal/service"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, code int, msg string, err error) {
	shared.RespondError(c, code, msg, err)
}

// mappedHandlerError 定义业务错误到接口错误响应的映射关系。
type mappedHandlerError struct {
	target error
	code   int
	msg    string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackMsg string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.msg, nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackMsg, err)
}

var signupErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidEmail, code: response.CodeBadRequest, msg: "invalid email address"},
	{target: service.ErrEmailExists, code: response.CodeConflict, msg: "email already registered"},
}

var resetPasswordErrorRules = []mappedHandlerError{
	{target: service.ErrWeakPassword, code: response.CodeBadRequest, msg: "password must be at least 6 characters"},
	{target: service.ErrInvalidResetToken, code: response.CodeBadRequest, msg: "invalid or expired reset token"},
	{target: service.ErrResetTokenExpired, code: response.CodeBadRequest, msg: "invalid or expired reset token"},
}

var changePlanErrorRules = []mappedHandlerError{
	{target: service.ErrPlanNotFound, code: response.CodeNotFound, msg: "plan not found"},
	{target: service.ErrNotFound, code: response.CodeNotFound, msg: "customer not found"},
}

var payBillErrorRules = []mappedHandlerError{
	{target: service.ErrBillNotPayable, code: response.CodeNotFound, msg: "bill not found or already paid"},
}
