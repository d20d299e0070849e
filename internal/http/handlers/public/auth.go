package public

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/telecom-portal/internal/constants"
	"github.com/telecom-portal/internal/http/response"
	"github.com/telecom-portal/internal/service"

	"github.com/gin-gonic/gin"
)

// 会话沿用源系统的弱 Cookie 方案：未签名、无服务端状态。
// 管理员写入固定哨兵值，客户直接写入数字 ID，浏览器会话内有效。
func setSessionCookie(c *gin.Context, name, value string) {
	c.SetCookie(name, value, 0, "/", "", false, true)
}

func clearSessionCookie(c *gin.Context, name string) {
	c.SetCookie(name, "", -1, "/", "", false, true)
}

// AdminLoginRequest 管理员登录请求
type AdminLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AdminLogin 管理员登录
func (h *Handler) AdminLogin(c *gin.Context) {
	var req AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "username and password are required", err)
		return
	}

	admin, err := h.AuthService.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondError(c, response.CodeUnauthorized, "invalid username or password", nil)
			return
		}
		respondError(c, response.CodeInternal, "login failed", err)
		return
	}

	setSessionCookie(c, constants.CookieAdminSession, constants.AdminSessionValue)
	clearSessionCookie(c, constants.CookieCustomerSession)

	response.SuccessWithMsg(c, "login successful", gin.H{
		"username": admin.Username,
		"role":     "admin",
	})
}

// CustomerLoginRequest 客户登录请求
type CustomerLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// CustomerLogin 客户登录
func (h *Handler) CustomerLogin(c *gin.Context) {
	var req CustomerLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "username and password are required", err)
		return
	}

	login, err := h.CustomerAuthService.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondError(c, response.CodeUnauthorized, "invalid username or password", nil)
			return
		}
		respondError(c, response.CodeInternal, "login failed", err)
		return
	}

	setSessionCookie(c, constants.CookieCustomerSession, strconv.FormatUint(uint64(login.CustomerID), 10))
	clearSessionCookie(c, constants.CookieAdminSession)

	response.SuccessWithMsg(c, "login successful", gin.H{
		"customer_id": login.CustomerID,
		"username":    login.Username,
		"role":        "customer",
	})
}

// CustomerSignupRequest 客户注册请求
type CustomerSignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	DOB      string `json:"dob" binding:"required"`
}

// CustomerSignup 客户自助注册
func (h *Handler) CustomerSignup(c *gin.Context) {
	var req CustomerSignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "name, phone, dob, email and password are required", err)
		return
	}

	dob, err := time.Parse("2006-01-02", req.DOB)
	if err != nil {
		respondError(c, response.CodeBadRequest, "dob must be in YYYY-MM-DD format", nil)
		return
	}

	result, err := h.CustomerAuthService.Signup(service.SignupInput{
		Name:     req.Name,
		Phone:    req.Phone,
		Email:    req.Email,
		Password: req.Password,
		DOB:      dob,
	})
	if err != nil {
		respondWithMappedError(c, err, signupErrorRules, response.CodeInternal, "signup failed")
		return
	}

	response.SuccessWithMsg(c, "account created", gin.H{
		"customer_id": result.CustomerID,
		"username":    result.Username,
		"message":     fmt.Sprintf("Account created! Your username is: %s", result.Username),
	})
}

// Logout 退出登录，同时清除两类会话 Cookie
func (h *Handler) Logout(c *gin.Context) {
	clearSessionCookie(c, constants.CookieAdminSession)
	clearSessionCookie(c, constants.CookieCustomerSession)
	response.SuccessWithMsg(c, "logged out", nil)
}

// AuthCheck 校验管理员会话，未认证返回 401
func (h *Handler) AuthCheck(c *gin.Context) {
	value, err := c.Cookie(constants.CookieAdminSession)
	if err != nil || value != constants.AdminSessionValue {
		response.ErrorWithData(c, response.CodeUnauthorized, "not authenticated", gin.H{"authenticated": false})
		return
	}
	response.Success(c, gin.H{"authenticated": true})
}
