package repository

import (
	"github.com/telecom-portal/internal/constants"
	"github.com/telecom-portal/internal/models"

	"gorm.io/gorm"
)

// DashboardRepository 运营看板统计数据访问接口
type DashboardRepository interface {
	CustomerCount() (int64, error)
	PlanCount() (int64, error)
	PendingBillCount() (int64, error)
}

// GormDashboardRepository GORM 实现
type GormDashboardRepository struct {
	db *gorm.DB
}

// NewDashboardRepository 创建看板仓库
func NewDashboardRepository(db *gorm.DB) *GormDashboardRepository {
	return &GormDashboardRepository{db: db}
}

// CustomerCount 客户总数
func (r *GormDashboardRepository) CustomerCount() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Customer{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// PlanCount 套餐总数
func (r *GormDashboardRepository) PlanCount() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Plan{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// PendingBillCount 待缴账单总数
func (r *GormDashboardRepository) PendingBillCount() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Bill{}).
		Where("status = ?", constants.BillStatusPending).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
