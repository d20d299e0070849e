package repository

import (
	"errors"
	"time"

	"github.com/telecom-portal/internal/models"

	"gorm.io/gorm"
)

// CustomerPlanRepository 客户套餐订购关系数据访问接口
type CustomerPlanRepository interface {
	GetCurrent(customerID uint) (*models.CustomerPlan, error)
	Assign(customerID, planID uint, startDate time.Time) error
}

// GormCustomerPlanRepository GORM 实现
type GormCustomerPlanRepository struct {
	db *gorm.DB
}

// NewCustomerPlanRepository 创建客户套餐仓库
func NewCustomerPlanRepository(db *gorm.DB) *GormCustomerPlanRepository {
	return &GormCustomerPlanRepository{db: db}
}

// GetCurrent 获取客户当前套餐订购记录（StartDate 最新的一条）
func (r *GormCustomerPlanRepository) GetCurrent(customerID uint) (*models.CustomerPlan, error) {
	var cp models.CustomerPlan
	err := r.db.Where("customer_id = ?", customerID).
		Order("start_date DESC, id DESC").
		First(&cp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cp, nil
}

// Assign 变更客户套餐：已有记录则覆盖，否则新建
func (r *GormCustomerPlanRepository) Assign(customerID, planID uint, startDate time.Time) error {
	current, err := r.GetCurrent(customerID)
	if err != nil {
		return err
	}
	if current == nil {
		return r.db.Create(&models.CustomerPlan{
			CustomerID: customerID,
			PlanID:     planID,
			StartDate:  startDate,
		}).Error
	}
	current.PlanID = planID
	current.StartDate = startDate
	return r.db.Save(current).Error
}
