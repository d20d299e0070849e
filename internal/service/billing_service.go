package service

import (
	"github.com/telecom-portal/internal/models"
	"github.com/telecom-portal/internal/repository"
)

// BillingService 账单服务
type BillingService struct {
	billRepo repository.BillRepository
}

// NewBillingService 创建账单服务
func NewBillingService(billRepo repository.BillRepository) *BillingService {
	return &BillingService{billRepo: billRepo}
}

// ListBills 客户账单列表
func (s *BillingService) ListBills(customerID uint) ([]models.Bill, error) {
	return s.billRepo.ListByCustomer(customerID)
}

// PayBill 缴费
// 仅允许缴纳归属本客户且处于待缴状态的账单，否则视为不可缴。
func (s *BillingService) PayBill(billID, customerID uint) error {
	affected, err := s.billRepo.PayPending(billID, customerID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrBillNotPayable
	}
	return nil
}
