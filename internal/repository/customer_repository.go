package repository

import (
	"errors"
	"strconv"

	"github.com/telecom-portal/internal/models"

	"gorm.io/gorm"
)

// CustomerListFilter 客户列表过滤条件
type CustomerListFilter struct {
	Keyword  string // 匹配姓名（模糊）或客户 ID（精确）
	Status   string
	Page     int
	PageSize int
}

// CustomerRepository 客户数据访问接口
type CustomerRepository interface {
	GetByID(id uint) (*models.Customer, error)
	GetByEmail(email string) (*models.Customer, error)
	Create(customer *models.Customer) error
	Update(customer *models.Customer) error
	List(filter CustomerListFilter) ([]models.Customer, int64, error)
}

// GormCustomerRepository GORM 实现
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository 创建客户仓库
func NewCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// GetByID 根据 ID 获取客户
func (r *GormCustomerRepository) GetByID(id uint) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &customer, nil
}

// GetByEmail 根据邮箱获取客户
func (r *GormCustomerRepository) GetByEmail(email string) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.Where("email = ?", email).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &customer, nil
}

// Create 创建客户
func (r *GormCustomerRepository) Create(customer *models.Customer) error {
	return r.db.Create(customer).Error
}

// Update 更新客户
func (r *GormCustomerRepository) Update(customer *models.Customer) error {
	return r.db.Save(customer).Error
}

// List 客户列表（按 ID 倒序）
func (r *GormCustomerRepository) List(filter CustomerListFilter) ([]models.Customer, int64, error) {
	query := r.db.Model(&models.Customer{})

	if filter.Keyword != "" {
		like := "%" + filter.Keyword + "%"
		if id, err := strconv.ParseUint(filter.Keyword, 10, 64); err == nil {
			query = query.Where("name LIKE ? OR id = ?", like, id)
		} else {
			query = query.Where("name LIKE ?", like)
		}
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	var customers []models.Customer
	if err := query.Order("id DESC").Find(&customers).Error; err != nil {
		return nil, 0, err
	}
	return customers, total, nil
}
