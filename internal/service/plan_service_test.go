package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/telecom-portal/internal/constants"
	"github.com/telecom-portal/internal/models"
	"github.com/telecom-portal/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupPlanServiceTest(t *testing.T) (*PlanService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:plan_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Customer{}, &models.Plan{}, &models.CustomerPlan{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	models.DB = db

	svc := NewPlanService(
		repository.NewPlanRepository(db),
		repository.NewCustomerPlanRepository(db),
		repository.NewCustomerRepository(db),
	)
	return svc, db
}

func createPlanTestFixtures(t *testing.T, db *gorm.DB) (*models.Customer, []models.Plan) {
	t.Helper()
	customer := models.Customer{
		Name:      "Jane Doe",
		Phone:     "555-0142",
		Email:     "jane.doe@example.com",
		Status:    constants.CustomerStatusActive,
		StartDate: time.Now(),
	}
	if err := db.Create(&customer).Error; err != nil {
		t.Fatalf("create customer failed: %v", err)
	}
	plans := []models.Plan{
		{Name: "Basic 5GB", DataLimit: 5, Type: constants.PlanTypePrepaid},
		{Name: "Standard 20GB", DataLimit: 20, Type: constants.PlanTypePrepaid},
	}
	for i := range plans {
		if err := db.Create(&plans[i]).Error; err != nil {
			t.Fatalf("create plan failed: %v", err)
		}
	}
	return &customer, plans
}

func TestPlanCRUD(t *testing.T) {
	svc, _ := setupPlanServiceTest(t)

	plan, err := svc.Create(PlanInput{Name: "Basic 5GB", DataLimit: 5, Description: "Entry plan", Type: constants.PlanTypePrepaid})
	if err != nil {
		t.Fatalf("create plan failed: %v", err)
	}
	if plan.ID == 0 {
		t.Fatalf("expected plan id, got: %+v", plan)
	}

	updated, err := svc.Update(plan.ID, PlanInput{Name: "Basic 8GB", DataLimit: 8, Description: "Entry plan", Type: constants.PlanTypePrepaid})
	if err != nil {
		t.Fatalf("update plan failed: %v", err)
	}
	if updated.Name != "Basic 8GB" || updated.DataLimit != 8 {
		t.Fatalf("unexpected updated plan: %+v", updated)
	}

	if _, err := svc.Update(99999, PlanInput{Name: "Ghost", DataLimit: 1}); !errors.Is(err, ErrPlanNotFound) {
		t.Fatalf("expected ErrPlanNotFound, got: %v", err)
	}

	if err := svc.Delete(plan.ID); err != nil {
		t.Fatalf("delete plan failed: %v", err)
	}
	if err := svc.Delete(plan.ID); !errors.Is(err, ErrPlanNotFound) {
		t.Fatalf("expected ErrPlanNotFound on second delete, got: %v", err)
	}

	plansAfter, err := svc.List()
	if err != nil {
		t.Fatalf("list plans failed: %v", err)
	}
	if len(plansAfter) != 0 {
		t.Fatalf("expected empty plan list, got: %d", len(plansAfter))
	}
}

func TestChangePlanAssignsAndOverwrites(t *testing.T) {
	svc, db := setupPlanServiceTest(t)
	customer, plans := createPlanTestFixtures(t, db)

	got, err := svc.ChangePlan(customer.ID, plans[0].ID)
	if err != nil {
		t.Fatalf("change plan failed: %v", err)
	}
	if got.ID != plans[0].ID {
		t.Fatalf("expected plan %d, got: %d", plans[0].ID, got.ID)
	}

	// 再次换套餐覆盖当前订购，而不是新增一条
	if _, err := svc.ChangePlan(customer.ID, plans[1].ID); err != nil {
		t.Fatalf("second change plan failed: %v", err)
	}
	var count int64
	if err := db.Model(&models.CustomerPlan{}).Where("customer_id = ?", customer.ID).Count(&count).Error; err != nil {
		t.Fatalf("count customer plans failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected a single customer plan row, got: %d", count)
	}
	var cp models.CustomerPlan
	if err := db.Where("customer_id = ?", customer.ID).First(&cp).Error; err != nil {
		t.Fatalf("load customer plan failed: %v", err)
	}
	if cp.PlanID != plans[1].ID {
		t.Fatalf("expected current plan %d, got: %d", plans[1].ID, cp.PlanID)
	}
}

func TestChangePlanNotFoundErrors(t *testing.T) {
	svc, db := setupPlanServiceTest(t)
	customer, plans := createPlanTestFixtures(t, db)

	if _, err := svc.ChangePlan(customer.ID, 99999); !errors.Is(err, ErrPlanNotFound) {
		t.Fatalf("expected ErrPlanNotFound, got: %v", err)
	}
	if _, err := svc.ChangePlan(99999, plans[0].ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown customer, got: %v", err)
	}
}
