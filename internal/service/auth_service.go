package service

import (
	"time"

	"github.com/telecom-portal/internal/config"
	"github.com/telecom-portal/internal/models"
	"github.com/telecom-portal/internal/repository"
)

// AuthService 管理员认证服务
type AuthService struct {
	cfg       *config.Config
	adminRepo repository.AdminRepository
}

// NewAuthService 创建认证服务实例
func NewAuthService(cfg *config.Config, adminRepo repository.AdminRepository) *AuthService {
	return &AuthService{
		cfg:       cfg,
		adminRepo: adminRepo,
	}
}

// Login 管理员登录
// 密码按源系统约定存明文并做精确匹配。
func (s *AuthService) Login(username, password string) (*models.Admin, error) {
	admin, err := s.adminRepo.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, ErrInvalidCredentials
	}

	if admin.Password != password {
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	admin.LastLoginAt = &now
	if err := s.adminRepo.Update(admin); err != nil {
		return nil, err
	}

	return admin, nil
}
