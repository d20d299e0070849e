package main

import (
	"time"

	"github.com/telecom-portal/internal/config"
	"github.com/telecom-portal/internal/constants"
	"github.com/telecom-portal/internal/logger"
	"github.com/telecom-portal/internal/models"

	"github.com/shopspring/decimal"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 默认管理员
	if err := models.InitDefaultAdmin("", ""); err != nil {
		stdLog.Printf("Failed to init default admin: %v", err)
	}

	// 套餐目录
	plans := []models.Plan{
		{Name: "Basic 5GB", DataLimit: 5, Description: "Entry plan with 5GB monthly data", Type: constants.PlanTypePrepaid},
		{Name: "Standard 20GB", DataLimit: 20, Description: "Standard plan with 20GB monthly data", Type: constants.PlanTypePrepaid},
		{Name: "Unlimited Pro", DataLimit: 999, Description: "Postpaid plan with effectively unlimited data", Type: constants.PlanTypePostpaid},
	}
	for i := range plans {
		var existing models.Plan
		if err := models.DB.Where("name = ?", plans[i].Name).First(&existing).Error; err != nil {
			if err := models.DB.Create(&plans[i]).Error; err != nil {
				stdLog.Printf("Failed to create plan %s: %v", plans[i].Name, err)
			} else {
				stdLog.Printf("Created plan: %s", plans[i].Name)
			}
		} else {
			plans[i] = existing
			stdLog.Printf("Plan already exists: %s", existing.Name)
		}
	}

	// 演示客户与登录凭据
	dob := time.Date(1992, 4, 18, 0, 0, 0, 0, time.UTC)
	customer := models.Customer{
		Name:      "Jane Doe",
		Phone:     "555-0142",
		Email:     "jane.doe@example.com",
		DOB:       dob,
		Status:    constants.CustomerStatusActive,
		StartDate: time.Now().AddDate(0, -6, 0),
	}
	var existingCustomer models.Customer
	if err := models.DB.Where("email = ?", customer.Email).First(&existingCustomer).Error; err != nil {
		if err := models.DB.Create(&customer).Error; err != nil {
			stdLog.Fatalf("Failed to create demo customer: %v", err)
		}
		stdLog.Printf("Created customer: %s (id=%d)", customer.Name, customer.ID)
	} else {
		customer = existingCustomer
		stdLog.Printf("Customer already exists: %s (id=%d)", customer.Name, customer.ID)
	}

	login := models.CustomerLogin{
		CustomerID: customer.ID,
		Username:   "JaneDoe1",
		Password:   "password123",
		Email:      customer.Email,
	}
	var existingLogin models.CustomerLogin
	if err := models.DB.Where("customer_id = ?", customer.ID).First(&existingLogin).Error; err != nil {
		if err := models.DB.Create(&login).Error; err != nil {
			stdLog.Printf("Failed to create demo login: %v", err)
		} else {
			stdLog.Printf("Created login: %s", login.Username)
		}
	} else {
		stdLog.Printf("Login already exists: %s", existingLogin.Username)
	}

	// 套餐订购与演示账单
	if len(plans) > 0 && plans[0].ID != 0 {
		var existingCP models.CustomerPlan
		if err := models.DB.Where("customer_id = ?", customer.ID).First(&existingCP).Error; err != nil {
			cp := models.CustomerPlan{
				CustomerID: customer.ID,
				PlanID:     plans[0].ID,
				StartDate:  time.Now().AddDate(0, -6, 0),
			}
			if err := models.DB.Create(&cp).Error; err != nil {
				stdLog.Printf("Failed to assign plan: %v", err)
			} else {
				stdLog.Printf("Assigned plan %d to customer %d", plans[0].ID, customer.ID)
			}
		}
	}

	var billCount int64
	models.DB.Model(&models.Bill{}).Where("customer_id = ?", customer.ID).Count(&billCount)
	if billCount == 0 {
		now := time.Now()
		bills := []models.Bill{
			{
				CustomerID: customer.ID,
				Amount:     models.NewMoneyFromDecimal(decimal.NewFromFloat(29.99)),
				BillDate:   now.AddDate(0, -2, 0),
				DueDate:    now.AddDate(0, -2, 14),
				Status:     constants.BillStatusPaid,
			},
			{
				CustomerID: customer.ID,
				Amount:     models.NewMoneyFromDecimal(decimal.NewFromFloat(34.50)),
				BillDate:   now.AddDate(0, -1, 0),
				DueDate:    now.AddDate(0, -1, 14),
				Status:     constants.BillStatusPending,
			},
		}
		for i := range bills {
			if err := models.DB.Create(&bills[i]).Error; err != nil {
				stdLog.Printf("Failed to create bill: %v", err)
			}
		}
		stdLog.Printf("Created %d demo bills", len(bills))
	}

	stdLog.Printf("Seed completed")
}
