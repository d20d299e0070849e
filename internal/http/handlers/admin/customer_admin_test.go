package admin

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/telecom-portal/internal/constants"
	"github.com/telecom-portal/internal/models"
	"github.com/telecom-portal/internal/provider"
	"github.com/telecom-portal/internal/repository"
	"github.com/telecom-portal/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupCustomerAdminTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:customer_admin_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Customer{}, &models.Plan{}, &models.CustomerPlan{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	models.DB = db

	container := &provider.Container{
		CustomerService: service.NewCustomerService(
			repository.NewCustomerRepository(db),
			repository.NewCustomerPlanRepository(db),
			repository.NewPlanRepository(db),
		),
	}
	handler := New(container)

	engine := gin.New()
	engine.GET("/api/admin/customers", handler.ListCustomers)
	return engine, db
}

func TestListCustomersSearchParam(t *testing.T) {
	engine, db := setupCustomerAdminTest(t)

	customers := []models.Customer{
		{Name: "Jane Doe", Phone: "555-0142", Status: constants.CustomerStatusActive, StartDate: time.Now()},
		{Name: "John Smith", Phone: "555-0143", Status: constants.CustomerStatusActive, StartDate: time.Now()},
	}
	for i := range customers {
		if err := db.Create(&customers[i]).Error; err != nil {
			t.Fatalf("create customer failed: %v", err)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/admin/customers?search=Jane", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got: %d (body: %s)", w.Code, w.Body.String())
	}

	var envelope struct {
		Data []models.Customer `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response failed: %v", err)
	}
	if len(envelope.Data) != 1 || envelope.Data[0].Name != "Jane Doe" {
		t.Fatalf("expected search to match Jane Doe only, got: %+v", envelope.Data)
	}
}
