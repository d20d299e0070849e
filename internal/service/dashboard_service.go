package service

import (
	"context"
	"time"

	"github.com/telecom-portal/internal/cache"
	"github.com/telecom-portal/internal/repository"
)

const (
	overviewCacheKey = "dashboard:overview"
	overviewCacheTTL = 30 * time.Second
)

// DashboardService 运营看板服务
type DashboardService struct {
	dashboardRepo repository.DashboardRepository
}

// NewDashboardService 创建看板服务
func NewDashboardService(dashboardRepo repository.DashboardRepository) *DashboardService {
	return &DashboardService{dashboardRepo: dashboardRepo}
}

// DashboardOverview 看板统计
type DashboardOverview struct {
	TotalCustomers int64 `json:"total_customers"`
	ActivePlans    int64 `json:"active_plans"`
	PendingBills   int64 `json:"pending_bills"`
}

// Overview 汇总客户数、套餐数与待缴账单数（短缓存）
func (s *DashboardService) Overview() (*DashboardOverview, error) {
	ctx := context.Background()
	var cached DashboardOverview
	if hit, err := cache.GetJSON(ctx, overviewCacheKey, &cached); err == nil && hit {
		return &cached, nil
	}

	customers, err := s.dashboardRepo.CustomerCount()
	if err != nil {
		return nil, err
	}
	plans, err := s.dashboardRepo.PlanCount()
	if err != nil {
		return nil, err
	}
	pending, err := s.dashboardRepo.PendingBillCount()
	if err != nil {
		return nil, err
	}
	overview := &DashboardOverview{
		TotalCustomers: customers,
		ActivePlans:    plans,
		PendingBills:   pending,
	}
	_ = cache.SetJSON(ctx, overviewCacheKey, overview, overviewCacheTTL)
	return overview, nil
}
