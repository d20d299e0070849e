package service

import (
	"strings"
	"time"

	"github.com/telecom-portal/internal/constants"
	"github.com/telecom-portal/internal/models"
	"github.com/telecom-portal/internal/repository"
)

// CustomerService 客户档案管理服务
type CustomerService struct {
	customerRepo     repository.CustomerRepository
	customerPlanRepo repository.CustomerPlanRepository
	planRepo         repository.PlanRepository
}

// NewCustomerService 创建客户服务
func NewCustomerService(customerRepo repository.CustomerRepository, customerPlanRepo repository.CustomerPlanRepository, planRepo repository.PlanRepository) *CustomerService {
	return &CustomerService{
		customerRepo:     customerRepo,
		customerPlanRepo: customerPlanRepo,
		planRepo:         planRepo,
	}
}

// List 客户列表
func (s *CustomerService) List(filter repository.CustomerListFilter) ([]models.Customer, int64, error) {
	return s.customerRepo.List(filter)
}

// CustomerInput 管理端录入客户的输入
type CustomerInput struct {
	Name      string
	Phone     string
	Email     string
	DOB       time.Time
	Status    string
	PlanID    uint
	StartDate time.Time
}

// Create 管理端创建客户，可同时指定初始套餐
func (s *CustomerService) Create(input CustomerInput) (*models.Customer, error) {
	status := strings.TrimSpace(input.Status)
	if status == "" {
		status = constants.CustomerStatusActive
	}
	startDate := input.StartDate
	if startDate.IsZero() {
		startDate = time.Now()
	}

	customer := &models.Customer{
		Name:      strings.TrimSpace(input.Name),
		Phone:     strings.TrimSpace(input.Phone),
		Email:     strings.ToLower(strings.TrimSpace(input.Email)),
		DOB:       input.DOB,
		Status:    status,
		StartDate: startDate,
	}
	if err := s.customerRepo.Create(customer); err != nil {
		return nil, err
	}

	if input.PlanID != 0 {
		plan, err := s.planRepo.GetByID(input.PlanID)
		if err != nil {
			return nil, err
		}
		if plan == nil {
			return nil, ErrPlanNotFound
		}
		if err := s.customerPlanRepo.Assign(customer.ID, plan.ID, startDate); err != nil {
			return nil, err
		}
	}

	return customer, nil
}

// Update 管理端更新客户资料
func (s *CustomerService) Update(id uint, input CustomerInput) (*models.Customer, error) {
	customer, err := s.customerRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrNotFound
	}

	if name := strings.TrimSpace(input.Name); name != "" {
		customer.Name = name
	}
	if phone := strings.TrimSpace(input.Phone); phone != "" {
		customer.Phone = phone
	}
	if email := strings.ToLower(strings.TrimSpace(input.Email)); email != "" {
		customer.Email = email
	}
	if !input.DOB.IsZero() {
		customer.DOB = input.DOB
	}
	if status := strings.TrimSpace(input.Status); status != "" {
		customer.Status = status
	}

	if err := s.customerRepo.Update(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// CustomerDetail 客户详情（含当前套餐）
type CustomerDetail struct {
	Customer      models.Customer `json:"customer"`
	Age           int             `json:"age"`
	Plan          *models.Plan    `json:"plan"`
	PlanStartDate *time.Time      `json:"plan_start_date"`
}

// GetDetail 获取客户详情与当前套餐
func (s *CustomerService) GetDetail(id uint) (*CustomerDetail, error) {
	customer, err := s.customerRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrNotFound
	}

	detail := &CustomerDetail{
		Customer: *customer,
		Age:      customer.Age(time.Now()),
	}

	current, err := s.customerPlanRepo.GetCurrent(id)
	if err != nil {
		return nil, err
	}
	if current != nil {
		plan, err := s.planRepo.GetByID(current.PlanID)
		if err != nil {
			return nil, err
		}
		if plan != nil {
			detail.Plan = plan
			startDate := current.StartDate
			detail.PlanStartDate = &startDate
		}
	}

	return detail, nil
}
