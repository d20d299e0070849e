package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/telecom-portal/internal/constants"

	"github.com/gin-gonic/gin"
)

func newAdminProtectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.GET("/api/admin/dashboard", AdminSessionMiddleware(), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return engine
}

func newCustomerProtectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.GET("/api/customers/:id", CustomerSessionMiddleware(), func(c *gin.Context) {
		id := c.GetUint("customer_id")
		c.JSON(http.StatusOK, gin.H{"customer_id": id})
	})
	return engine
}

func performRequest(engine *gin.Engine, method, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, req)
	return recorder
}

func TestAdminSessionMiddleware(t *testing.T) {
	engine := newAdminProtectedRouter()

	if w := performRequest(engine, http.MethodGet, "/api/admin/dashboard"); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without cookie, got: %d", w.Code)
	}

	wrong := &http.Cookie{Name: constants.CookieAdminSession, Value: "false"}
	if w := performRequest(engine, http.MethodGet, "/api/admin/dashboard", wrong); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 with wrong cookie, got: %d", w.Code)
	}

	valid := &http.Cookie{Name: constants.CookieAdminSession, Value: constants.AdminSessionValue}
	if w := performRequest(engine, http.MethodGet, "/api/admin/dashboard", valid); w.Code != http.StatusOK {
		t.Fatalf("expected 200 with admin cookie, got: %d", w.Code)
	}
}

func TestCustomerSessionMiddleware(t *testing.T) {
	engine := newCustomerProtectedRouter()

	if w := performRequest(engine, http.MethodGet, "/api/customers/7"); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without cookie, got: %d", w.Code)
	}

	junk := &http.Cookie{Name: constants.CookieCustomerSession, Value: "not-a-number"}
	if w := performRequest(engine, http.MethodGet, "/api/customers/7", junk); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 with malformed cookie, got: %d", w.Code)
	}

	session := &http.Cookie{Name: constants.CookieCustomerSession, Value: "7"}

	// Cookie 身份与路径 ID 不一致时拒绝访问
	if w := performRequest(engine, http.MethodGet, "/api/customers/8", session); w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for foreign customer id, got: %d", w.Code)
	}

	w := performRequest(engine, http.MethodGet, "/api/customers/7", session)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for own customer id, got: %d", w.Code)
	}
	if body := w.Body.String(); body != `{"customer_id":7}` {
		t.Fatalf("expected injected customer_id in context, got: %s", body)
	}
}
