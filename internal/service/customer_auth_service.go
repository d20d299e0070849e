package service

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode"

	"github.com/telecom-portal/internal/config"
	"github.com/telecom-portal/internal/constants"
	"github.com/telecom-portal/internal/logger"
	"github.com/telecom-portal/internal/models"
	"github.com/telecom-portal/internal/queue"
	"github.com/telecom-portal/internal/repository"
)

// CustomerAuthService 客户认证服务（登录、注册、找回密码）
type CustomerAuthService struct {
	cfg          *config.Config
	customerRepo repository.CustomerRepository
	loginRepo    repository.CustomerLoginRepository
	emailService *EmailService
	queueClient  *queue.Client
}

// NewCustomerAuthService 创建客户认证服务
func NewCustomerAuthService(cfg *config.Config, customerRepo repository.CustomerRepository, loginRepo repository.CustomerLoginRepository, emailService *EmailService, queueClient *queue.Client) *CustomerAuthService {
	return &CustomerAuthService{
		cfg:          cfg,
		customerRepo: customerRepo,
		loginRepo:    loginRepo,
		emailService: emailService,
		queueClient:  queueClient,
	}
}

// Login 客户登录
// 密码按源系统约定存明文并做精确匹配。
func (s *CustomerAuthService) Login(username, password string) (*models.CustomerLogin, error) {
	login, err := s.loginRepo.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if login == nil {
		return nil, ErrInvalidCredentials
	}
	if login.Password != password {
		return nil, ErrInvalidCredentials
	}
	return login, nil
}

// SignupInput 客户自助注册输入
type SignupInput struct {
	Name     string
	Phone    string
	Email    string
	Password string
	DOB      time.Time
}

// SignupResult 注册结果（派生用户名需回传给前端展示）
type SignupResult struct {
	CustomerID uint
	Username   string
}

// Signup 客户自助注册
// 先建客户档案拿到 ID，再派生用户名（姓名去空白 + 客户 ID）写入登录凭据。
func (s *CustomerAuthService) Signup(input SignupInput) (*SignupResult, error) {
	normalized, err := normalizeEmail(input.Email)
	if err != nil {
		return nil, err
	}

	exist, err := s.loginRepo.GetByEmail(normalized)
	if err != nil {
		return nil, err
	}
	if exist != nil {
		return nil, ErrEmailExists
	}

	now := time.Now()
	customer := &models.Customer{
		Name:      strings.TrimSpace(input.Name),
		Phone:     strings.TrimSpace(input.Phone),
		Email:     normalized,
		DOB:       input.DOB,
		Status:    constants.CustomerStatusActive,
		StartDate: now,
	}
	if err := s.customerRepo.Create(customer); err != nil {
		return nil, err
	}

	username := deriveUsername(customer.Name, customer.ID)
	login := &models.CustomerLogin{
		CustomerID: customer.ID,
		Username:   username,
		Password:   input.Password,
		Email:      normalized,
	}
	if err := s.loginRepo.Create(login); err != nil {
		return nil, err
	}

	return &SignupResult{CustomerID: customer.ID, Username: username}, nil
}

// RequestPasswordReset 发起找回密码
// 无论邮箱是否存在都正常返回，避免暴露账号存在性；存在时生成
// 一次性令牌覆盖旧值并异步发送重置邮件。返回的链接仅用于调试模式回显。
func (s *CustomerAuthService) RequestPasswordReset(email string) (string, error) {
	// 格式非法的邮箱按"无此账号"处理，与未注册邮箱走同一条成功分支
	normalized, err := normalizeEmail(email)
	if err != nil {
		return "", nil
	}

	login, err := s.loginRepo.GetByEmail(normalized)
	if err != nil {
		return "", err
	}
	if login == nil {
		return "", nil
	}

	token, err := randomResetToken()
	if err != nil {
		return "", err
	}

	expiry := time.Now().Add(time.Duration(s.resetExpireMinutes()) * time.Minute)
	login.ResetToken = &token
	login.ResetTokenExpiry = &expiry
	if err := s.loginRepo.Update(login); err != nil {
		return "", err
	}

	resetURL := s.buildResetURL(token)
	s.dispatchResetEmail(login, resetURL)
	return resetURL, nil
}

// CompletePasswordReset 使用令牌重置密码
// 先校验新密码强度，令牌一次有效，成功后立即作废。
func (s *CustomerAuthService) CompletePasswordReset(token, newPassword string) error {
	if err := validatePassword(s.cfg.Security.PasswordPolicy, newPassword); err != nil {
		return err
	}

	login, err := s.loginRepo.GetByResetToken(strings.TrimSpace(token))
	if err != nil {
		return err
	}
	if login == nil {
		return ErrInvalidResetToken
	}
	if login.ResetTokenExpiry == nil || login.ResetTokenExpiry.Before(time.Now()) {
		return ErrResetTokenExpired
	}

	login.Password = newPassword
	login.ResetToken = nil
	login.ResetTokenExpiry = nil
	return s.loginRepo.Update(login)
}

// GetLoginByCustomerID 获取客户登录凭据
func (s *CustomerAuthService) GetLoginByCustomerID(customerID uint) (*models.CustomerLogin, error) {
	if customerID == 0 {
		return nil, ErrNotFound
	}
	return s.loginRepo.GetByCustomerID(customerID)
}

// dispatchResetEmail 优先走异步队列，队列不可用时降级为进程内异步发送
func (s *CustomerAuthService) dispatchResetEmail(login *models.CustomerLogin, resetURL string) {
	if s.queueClient.Enabled() {
		err := s.queueClient.EnqueuePasswordResetEmail(queue.PasswordResetEmailPayload{
			Email:    login.Email,
			Username: login.Username,
			ResetURL: resetURL,
		})
		if err == nil {
			return
		}
		logger.Warnw("password_reset_email_enqueue_failed", "error", err)
	}

	if s.emailService == nil {
		logger.Warnw("password_reset_email_skipped", "reason", "email_service_unavailable")
		return
	}
	go func(toEmail, username, url string) {
		if err := s.emailService.SendPasswordResetEmail(toEmail, username, url); err != nil {
			logger.Warnw("password_reset_email_send_failed", "error", err)
		}
	}(login.Email, login.Username, resetURL)
}

func (s *CustomerAuthService) buildResetURL(token string) string {
	base := strings.TrimRight(strings.TrimSpace(s.cfg.Reset.BaseURL), "/")
	return fmt.Sprintf("%s/reset-password?token=%s", base, token)
}

func (s *CustomerAuthService) resetExpireMinutes() int {
	if s.cfg.Reset.ExpireMinutes <= 0 {
		return 60
	}
	return s.cfg.Reset.ExpireMinutes
}

// deriveUsername 姓名去除所有空白字符后拼接客户 ID
func deriveUsername(name string, customerID uint) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return fmt.Sprintf("%s%d", b.String(), customerID)
}

// randomResetToken 生成 32 字节随机令牌的十六进制表示
func randomResetToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func normalizeEmail(email string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if normalized == "" {
		return "", ErrInvalidEmail
	}
	if _, err := mail.ParseAddress(normalized); err != nil {
		return "", ErrInvalidEmail
	}
	return normalized, nil
}
