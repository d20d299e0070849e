package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/telecom-portal/internal/models"
	"github.com/telecom-portal/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupAuthServiceTest(t *testing.T) (*AuthService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:auth_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Admin{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	models.DB = db

	svc := NewAuthService(newAuthTestConfig(), repository.NewAdminRepository(db))
	return svc, db
}

func TestAdminLoginSuccess(t *testing.T) {
	svc, db := setupAuthServiceTest(t)

	admin := models.Admin{Username: "admin", Password: "admin123"}
	if err := db.Create(&admin).Error; err != nil {
		t.Fatalf("create admin failed: %v", err)
	}

	got, err := svc.Login("admin", "admin123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if got.ID != admin.ID {
		t.Fatalf("expected admin id %d, got: %d", admin.ID, got.ID)
	}

	var reloaded models.Admin
	if err := db.First(&reloaded, admin.ID).Error; err != nil {
		t.Fatalf("reload admin failed: %v", err)
	}
	if reloaded.LastLoginAt == nil {
		t.Fatalf("expected last_login_at to be set")
	}
}

func TestAdminLoginInvalidCredentials(t *testing.T) {
	svc, db := setupAuthServiceTest(t)

	if err := db.Create(&models.Admin{Username: "admin", Password: "admin123"}).Error; err != nil {
		t.Fatalf("create admin failed: %v", err)
	}

	if _, err := svc.Login("admin", "wrongpass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got: %v", err)
	}
	if _, err := svc.Login("nobody", "admin123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown admin, got: %v", err)
	}
}
