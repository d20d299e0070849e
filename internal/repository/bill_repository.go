package repository

import (
	"github.com/telecom-portal/internal/constants"
	"github.com/telecom-portal/internal/models"

	"gorm.io/gorm"
)

// BillRepository 账单数据访问接口
type BillRepository interface {
	ListByCustomer(customerID uint) ([]models.Bill, error)
	PayPending(billID, customerID uint) (int64, error)
	Create(bill *models.Bill) error
}

// GormBillRepository GORM 实现
type GormBillRepository struct {
	db *gorm.DB
}

// NewBillRepository 创建账单仓库
func NewBillRepository(db *gorm.DB) *GormBillRepository {
	return &GormBillRepository{db: db}
}

// ListByCustomer 客户账单列表（按账期倒序）
func (r *GormBillRepository) ListByCustomer(customerID uint) ([]models.Bill, error) {
	var bills []models.Bill
	err := r.db.Where("customer_id = ?", customerID).
		Order("bill_date DESC, id DESC").
		Find(&bills).Error
	if err != nil {
		return nil, err
	}
	return bills, nil
}

// PayPending 将待缴账单标记为已缴，返回受影响行数。
// 条件同时约束账单归属与 Pending 状态，天然防止跨客户代缴与重复缴费。
func (r *GormBillRepository) PayPending(billID, customerID uint) (int64, error) {
	result := r.db.Model(&models.Bill{}).
		Where("id = ? AND customer_id = ? AND status = ?", billID, customerID, constants.BillStatusPending).
		Update("status", constants.BillStatusPaid)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// Create 创建账单
func (r *GormBillRepository) Create(bill *models.Bill) error {
	return r.db.Create(bill).Error
}
