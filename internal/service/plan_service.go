package service

import (
	"context"
	"strings"
	"time"

	"github.com/telecom-portal/internal/cache"
	"github.com/telecom-portal/internal/models"
	"github.com/telecom-portal/internal/repository"
)

const (
	planListCacheKey = "plans:list"
	planListCacheTTL = time.Minute
)

// PlanService 套餐目录与套餐变更服务
type PlanService struct {
	planRepo         repository.PlanRepository
	customerPlanRepo repository.CustomerPlanRepository
	customerRepo     repository.CustomerRepository
}

// NewPlanService 创建套餐服务
func NewPlanService(planRepo repository.PlanRepository, customerPlanRepo repository.CustomerPlanRepository, customerRepo repository.CustomerRepository) *PlanService {
	return &PlanService{
		planRepo:         planRepo,
		customerPlanRepo: customerPlanRepo,
		customerRepo:     customerRepo,
	}
}

// List 套餐列表（公开目录，短缓存）
func (s *PlanService) List() ([]models.Plan, error) {
	ctx := context.Background()
	var cached []models.Plan
	if hit, err := cache.GetJSON(ctx, planListCacheKey, &cached); err == nil && hit {
		return cached, nil
	}

	plans, err := s.planRepo.List()
	if err != nil {
		return nil, err
	}
	_ = cache.SetJSON(ctx, planListCacheKey, plans, planListCacheTTL)
	return plans, nil
}

// PlanInput 套餐录入
type PlanInput struct {
	Name        string
	DataLimit   int
	Description string
	Type        string
}

// Create 创建套餐
func (s *PlanService) Create(input PlanInput) (*models.Plan, error) {
	plan := &models.Plan{
		Name:        strings.TrimSpace(input.Name),
		DataLimit:   input.DataLimit,
		Description: strings.TrimSpace(input.Description),
		Type:        strings.TrimSpace(input.Type),
	}
	if err := s.planRepo.Create(plan); err != nil {
		return nil, err
	}
	_ = cache.Del(context.Background(), planListCacheKey)
	return plan, nil
}

// Update 更新套餐
func (s *PlanService) Update(id uint, input PlanInput) (*models.Plan, error) {
	plan, err := s.planRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, ErrPlanNotFound
	}

	if name := strings.TrimSpace(input.Name); name != "" {
		plan.Name = name
	}
	if input.DataLimit > 0 {
		plan.DataLimit = input.DataLimit
	}
	if desc := strings.TrimSpace(input.Description); desc != "" {
		plan.Description = desc
	}
	if typ := strings.TrimSpace(input.Type); typ != "" {
		plan.Type = typ
	}

	if err := s.planRepo.Update(plan); err != nil {
		return nil, err
	}
	_ = cache.Del(context.Background(), planListCacheKey)
	return plan, nil
}

// Delete 删除套餐
func (s *PlanService) Delete(id uint) error {
	plan, err := s.planRepo.GetByID(id)
	if err != nil {
		return err
	}
	if plan == nil {
		return ErrPlanNotFound
	}
	if err := s.planRepo.Delete(id); err != nil {
		return err
	}
	_ = cache.Del(context.Background(), planListCacheKey)
	return nil
}

// ChangePlan 客户变更套餐，生效日期为当天
func (s *PlanService) ChangePlan(customerID, planID uint) (*models.Plan, error) {
	customer, err := s.customerRepo.GetByID(customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrNotFound
	}

	plan, err := s.planRepo.GetByID(planID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, ErrPlanNotFound
	}

	if err := s.customerPlanRepo.Assign(customerID, planID, time.Now()); err != nil {
		return nil, err
	}
	return plan, nil
}
