package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/telecom-portal/internal/constants"
	"github.com/telecom-portal/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupCustomerRepositoryTest(t *testing.T) (*GormCustomerRepository, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:customer_repository_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Customer{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	models.DB = db
	return NewCustomerRepository(db), db
}

func seedListCustomers(t *testing.T, repo *GormCustomerRepository) []models.Customer {
	t.Helper()
	customers := []models.Customer{
		{Name: "Jane Doe", Phone: "555-0142", Email: "jane@example.com", Status: constants.CustomerStatusActive, StartDate: time.Now()},
		{Name: "John Smith", Phone: "555-0143", Email: "john@example.com", Status: constants.CustomerStatusActive, StartDate: time.Now()},
		{Name: "Janet Miller", Phone: "555-0144", Email: "janet@example.com", Status: constants.CustomerStatusInactive, StartDate: time.Now()},
	}
	for i := range customers {
		if err := repo.Create(&customers[i]); err != nil {
			t.Fatalf("create customer failed: %v", err)
		}
	}
	return customers
}

func TestCustomerListKeywordByName(t *testing.T) {
	repo, _ := setupCustomerRepositoryTest(t)
	seedListCustomers(t, repo)

	got, total, err := repo.List(CustomerListFilter{Keyword: "Jan"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 2 || len(got) != 2 {
		t.Fatalf("expected 2 matches for 'Jan', got total=%d len=%d", total, len(got))
	}
	// ID 倒序
	if got[0].ID < got[1].ID {
		t.Fatalf("expected id desc order, got: %d before %d", got[0].ID, got[1].ID)
	}
}

func TestCustomerListKeywordByID(t *testing.T) {
	repo, _ := setupCustomerRepositoryTest(t)
	customers := seedListCustomers(t, repo)

	keyword := fmt.Sprintf("%d", customers[1].ID)
	got, total, err := repo.List(CustomerListFilter{Keyword: keyword})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 1 || len(got) != 1 || got[0].ID != customers[1].ID {
		t.Fatalf("expected exact id match, got total=%d result=%+v", total, got)
	}
}

func TestCustomerListStatusFilterAndPaging(t *testing.T) {
	repo, _ := setupCustomerRepositoryTest(t)
	seedListCustomers(t, repo)

	got, total, err := repo.List(CustomerListFilter{Status: constants.CustomerStatusActive})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 2 || len(got) != 2 {
		t.Fatalf("expected 2 active customers, got total=%d len=%d", total, len(got))
	}

	paged, total, err := repo.List(CustomerListFilter{Page: 2, PageSize: 2})
	if err != nil {
		t.Fatalf("paged list failed: %v", err)
	}
	if total != 3 || len(paged) != 1 {
		t.Fatalf("expected page 2 with 1 row of 3 total, got total=%d len=%d", total, len(paged))
	}
}
