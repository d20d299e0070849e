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

func setupCustomerServiceTest(t *testing.T) (*CustomerService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:customer_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Customer{}, &models.Plan{}, &models.CustomerPlan{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	models.DB = db

	svc := NewCustomerService(
		repository.NewCustomerRepository(db),
		repository.NewCustomerPlanRepository(db),
		repository.NewPlanRepository(db),
	)
	return svc, db
}

func TestCustomerCreateWithInitialPlan(t *testing.T) {
	svc, db := setupCustomerServiceTest(t)

	plan := models.Plan{Name: "Basic 5GB", DataLimit: 5, Type: constants.PlanTypePrepaid}
	if err := db.Create(&plan).Error; err != nil {
		t.Fatalf("create plan failed: %v", err)
	}

	customer, err := svc.Create(CustomerInput{
		Name:   "Jane Doe",
		Phone:  "555-0142",
		Email:  "Jane.Doe@Example.com",
		PlanID: plan.ID,
	})
	if err != nil {
		t.Fatalf("create customer failed: %v", err)
	}
	if customer.Status != constants.CustomerStatusActive {
		t.Fatalf("expected default Active status, got: %s", customer.Status)
	}
	if customer.Email != "jane.doe@example.com" {
		t.Fatalf("expected normalized email, got: %s", customer.Email)
	}

	var cp models.CustomerPlan
	if err := db.Where("customer_id = ?", customer.ID).First(&cp).Error; err != nil {
		t.Fatalf("load customer plan failed: %v", err)
	}
	if cp.PlanID != plan.ID {
		t.Fatalf("expected initial plan %d, got: %d", plan.ID, cp.PlanID)
	}
}

func TestCustomerCreateUnknownPlan(t *testing.T) {
	svc, _ := setupCustomerServiceTest(t)

	_, err := svc.Create(CustomerInput{
		Name:   "Jane Doe",
		Phone:  "555-0142",
		Email:  "jane.doe@example.com",
		PlanID: 99999,
	})
	if !errors.Is(err, ErrPlanNotFound) {
		t.Fatalf("expected ErrPlanNotFound, got: %v", err)
	}
}

func TestCustomerUpdatePartialFields(t *testing.T) {
	svc, _ := setupCustomerServiceTest(t)

	customer, err := svc.Create(CustomerInput{Name: "Jane Doe", Phone: "555-0142", Email: "jane.doe@example.com"})
	if err != nil {
		t.Fatalf("create customer failed: %v", err)
	}

	updated, err := svc.Update(customer.ID, CustomerInput{Phone: "555-0199", Status: constants.CustomerStatusInactive})
	if err != nil {
		t.Fatalf("update customer failed: %v", err)
	}
	if updated.Phone != "555-0199" || updated.Status != constants.CustomerStatusInactive {
		t.Fatalf("unexpected updated customer: %+v", updated)
	}
	// 未提供的字段保持原值
	if updated.Name != "Jane Doe" || updated.Email != "jane.doe@example.com" {
		t.Fatalf("expected untouched fields to survive, got: %+v", updated)
	}

	if _, err := svc.Update(99999, CustomerInput{Name: "Ghost"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestCustomerGetDetail(t *testing.T) {
	svc, db := setupCustomerServiceTest(t)

	plans := []models.Plan{
		{Name: "Basic 5GB", DataLimit: 5, Type: constants.PlanTypePrepaid},
		{Name: "Standard 20GB", DataLimit: 20, Type: constants.PlanTypePrepaid},
	}
	for i := range plans {
		if err := db.Create(&plans[i]).Error; err != nil {
			t.Fatalf("create plan failed: %v", err)
		}
	}

	dob := time.Now().AddDate(-30, 0, -1)
	customer, err := svc.Create(CustomerInput{
		Name:  "Jane Doe",
		Phone: "555-0142",
		Email: "jane.doe@example.com",
		DOB:   dob,
	})
	if err != nil {
		t.Fatalf("create customer failed: %v", err)
	}

	// 无套餐时 Plan 为空
	detail, err := svc.GetDetail(customer.ID)
	if err != nil {
		t.Fatalf("get detail failed: %v", err)
	}
	if detail.Plan != nil {
		t.Fatalf("expected no current plan, got: %+v", detail.Plan)
	}
	if detail.Age != 30 {
		t.Fatalf("expected age 30, got: %d", detail.Age)
	}

	// 先订旧套餐再换新套餐，详情应返回最新一档
	if err := db.Create(&models.CustomerPlan{CustomerID: customer.ID, PlanID: plans[0].ID, StartDate: time.Now().AddDate(0, -3, 0)}).Error; err != nil {
		t.Fatalf("create customer plan failed: %v", err)
	}
	if err := db.Create(&models.CustomerPlan{CustomerID: customer.ID, PlanID: plans[1].ID, StartDate: time.Now()}).Error; err != nil {
		t.Fatalf("create customer plan failed: %v", err)
	}

	detail, err = svc.GetDetail(customer.ID)
	if err != nil {
		t.Fatalf("get detail failed: %v", err)
	}
	if detail.Plan == nil || detail.Plan.ID != plans[1].ID {
		t.Fatalf("expected current plan %d, got: %+v", plans[1].ID, detail.Plan)
	}
	if detail.PlanStartDate == nil {
		t.Fatalf("expected plan start date to be set")
	}

	if _, err := svc.GetDetail(99999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}
