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
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupBillingServiceTest(t *testing.T) (*BillingService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:billing_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Customer{}, &models.Bill{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	models.DB = db

	svc := NewBillingService(repository.NewBillRepository(db))
	return svc, db
}

func createBillingTestCustomer(t *testing.T, db *gorm.DB, email string) *models.Customer {
	t.Helper()
	customer := models.Customer{
		Name:      "Jane Doe",
		Phone:     "555-0142",
		Email:     email,
		Status:    constants.CustomerStatusActive,
		StartDate: time.Now(),
	}
	if err := db.Create(&customer).Error; err != nil {
		t.Fatalf("create customer failed: %v", err)
	}
	return &customer
}

func createTestBill(t *testing.T, db *gorm.DB, customerID uint, status string, amount float64, billDate time.Time) *models.Bill {
	t.Helper()
	bill := models.Bill{
		CustomerID: customerID,
		Amount:     models.NewMoneyFromDecimal(decimal.NewFromFloat(amount)),
		BillDate:   billDate,
		DueDate:    billDate.AddDate(0, 0, 14),
		Status:     status,
	}
	if err := db.Create(&bill).Error; err != nil {
		t.Fatalf("create bill failed: %v", err)
	}
	return &bill
}

func TestListBillsNewestFirst(t *testing.T) {
	svc, db := setupBillingServiceTest(t)
	customer := createBillingTestCustomer(t, db, "jane.doe@example.com")
	other := createBillingTestCustomer(t, db, "other@example.com")

	now := time.Now()
	older := createTestBill(t, db, customer.ID, constants.BillStatusPaid, 29.99, now.AddDate(0, -2, 0))
	newer := createTestBill(t, db, customer.ID, constants.BillStatusPending, 34.50, now.AddDate(0, -1, 0))
	createTestBill(t, db, other.ID, constants.BillStatusPending, 10.00, now)

	bills, err := svc.ListBills(customer.ID)
	if err != nil {
		t.Fatalf("list bills failed: %v", err)
	}
	if len(bills) != 2 {
		t.Fatalf("expected 2 bills, got: %d", len(bills))
	}
	if bills[0].ID != newer.ID || bills[1].ID != older.ID {
		t.Fatalf("expected newest-first order, got: %d, %d", bills[0].ID, bills[1].ID)
	}
}

func TestPayBillPendingOnly(t *testing.T) {
	svc, db := setupBillingServiceTest(t)
	customer := createBillingTestCustomer(t, db, "jane.doe@example.com")
	bill := createTestBill(t, db, customer.ID, constants.BillStatusPending, 34.50, time.Now())

	if err := svc.PayBill(bill.ID, customer.ID); err != nil {
		t.Fatalf("pay bill failed: %v", err)
	}

	var reloaded models.Bill
	if err := db.First(&reloaded, bill.ID).Error; err != nil {
		t.Fatalf("reload bill failed: %v", err)
	}
	if reloaded.Status != constants.BillStatusPaid {
		t.Fatalf("expected status Paid, got: %s", reloaded.Status)
	}

	// 重复支付与支付他人账单都按不可支付处理
	if err := svc.PayBill(bill.ID, customer.ID); !errors.Is(err, ErrBillNotPayable) {
		t.Fatalf("expected ErrBillNotPayable on repay, got: %v", err)
	}
}

func TestPayBillOwnershipEnforced(t *testing.T) {
	svc, db := setupBillingServiceTest(t)
	customer := createBillingTestCustomer(t, db, "jane.doe@example.com")
	other := createBillingTestCustomer(t, db, "other@example.com")
	bill := createTestBill(t, db, customer.ID, constants.BillStatusPending, 34.50, time.Now())

	if err := svc.PayBill(bill.ID, other.ID); !errors.Is(err, ErrBillNotPayable) {
		t.Fatalf("expected ErrBillNotPayable for foreign bill, got: %v", err)
	}

	var reloaded models.Bill
	if err := db.First(&reloaded, bill.ID).Error; err != nil {
		t.Fatalf("reload bill failed: %v", err)
	}
	if reloaded.Status != constants.BillStatusPending {
		t.Fatalf("expected bill to stay Pending, got: %s", reloaded.Status)
	}

	if err := svc.PayBill(99999, customer.ID); !errors.Is(err, ErrBillNotPayable) {
		t.Fatalf("expected ErrBillNotPayable for unknown bill, got: %v", err)
	}
}
