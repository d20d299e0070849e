package repository

import (
	"errors"

	"github.com/telecom-portal/internal/models"

	"gorm.io/gorm"
)

// PlanRepository 套餐数据访问接口
type PlanRepository interface {
	List() ([]models.Plan, error)
	GetByID(id uint) (*models.Plan, error)
	Create(plan *models.Plan) error
	Update(plan *models.Plan) error
	Delete(id uint) error
}

// GormPlanRepository GORM 实现
type GormPlanRepository struct {
	db *gorm.DB
}

// NewPlanRepository 创建套餐仓库
func NewPlanRepository(db *gorm.DB) *GormPlanRepository {
	return &GormPlanRepository{db: db}
}

// List 套餐列表（按 ID 升序）
func (r *GormPlanRepository) List() ([]models.Plan, error) {
	var plans []models.Plan
	if err := r.db.Order("id ASC").Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

// GetByID 根据 ID 获取套餐
func (r *GormPlanRepository) GetByID(id uint) (*models.Plan, error) {
	var plan models.Plan
	if err := r.db.First(&plan, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &plan, nil
}

// Create 创建套餐
func (r *GormPlanRepository) Create(plan *models.Plan) error {
	return r.db.Create(plan).Error
}

// Update 更新套餐
func (r *GormPlanRepository) Update(plan *models.Plan) error {
	return r.db.Save(plan).Error
}

// Delete 删除套餐
func (r *GormPlanRepository) Delete(id uint) error {
	return r.db.Delete(&models.Plan{}, id).Error
}
