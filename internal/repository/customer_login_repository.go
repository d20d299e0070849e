package repository

import (
	"errors"

	"github.com/telecom-portal/internal/models"

	"gorm.io/gorm"
)

// CustomerLoginRepository 客户登录凭据数据访问接口
type CustomerLoginRepository interface {
	GetByUsername(username string) (*models.CustomerLogin, error)
	GetByEmail(email string) (*models.CustomerLogin, error)
	GetByCustomerID(customerID uint) (*models.CustomerLogin, error)
	GetByResetToken(token string) (*models.CustomerLogin, error)
	Create(login *models.CustomerLogin) error
	Update(login *models.CustomerLogin) error
}

// GormCustomerLoginRepository GORM 实现
type GormCustomerLoginRepository struct {
	db *gorm.DB
}

// NewCustomerLoginRepository 创建客户登录凭据仓库
func NewCustomerLoginRepository(db *gorm.DB) *GormCustomerLoginRepository {
	return &GormCustomerLoginRepository{db: db}
}

// GetByUsername 根据用户名获取登录凭据
func (r *GormCustomerLoginRepository) GetByUsername(username string) (*models.CustomerLogin, error) {
	return r.getByField("username = ?", username)
}

// GetByEmail 根据邮箱获取登录凭据
func (r *GormCustomerLoginRepository) GetByEmail(email string) (*models.CustomerLogin, error) {
	return r.getByField("email = ?", email)
}

// GetByCustomerID 根据客户 ID 获取登录凭据
func (r *GormCustomerLoginRepository) GetByCustomerID(customerID uint) (*models.CustomerLogin, error) {
	return r.getByField("customer_id = ?", customerID)
}

// GetByResetToken 根据重置令牌获取登录凭据
func (r *GormCustomerLoginRepository) GetByResetToken(token string) (*models.CustomerLogin, error) {
	if token == "" {
		return nil, nil
	}
	return r.getByField("reset_token = ?", token)
}

func (r *GormCustomerLoginRepository) getByField(cond string, value interface{}) (*models.CustomerLogin, error) {
	var login models.CustomerLogin
	if err := r.db.Where(cond, value).First(&login).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &login, nil
}

// Create 创建登录凭据
func (r *GormCustomerLoginRepository) Create(login *models.CustomerLogin) error {
	return r.db.Create(login).Error
}

// Update 更新登录凭据（Save 全量写入，含置空的令牌字段）
func (r *GormCustomerLoginRepository) Update(login *models.CustomerLogin) error {
	return r.db.Save(login).Error
}
