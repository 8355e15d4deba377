package router

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/craftpine/storefront/internal/domain/model"
	"github.com/craftpine/storefront/internal/server/http/handlers"
	testhelpers "github.com/craftpine/storefront/internal/test"
)

func newEngine(role model.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	facade := testhelpers.StorefrontFacadeStub{
		AuthFacadeStub: testhelpers.AuthFacadeStub{
			ParseFn: func(string) (uuid.UUID, model.Role, error) {
				return uuid.New(), role, nil
			},
		},
	}
	return Setup(facade, logger)
}

func TestSetupRoutes(t *testing.T) {
	engine := newEngine(model.RoleCustomer)

	body, _ := json.Marshal(map[string]string{"email": "user@example.com", "password": "pass"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for login, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for orders, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401 without token, got %d", resp.Code)
	}
}

func TestSetupAdminRoutes(t *testing.T) {
	customer := newEngine(model.RoleCustomer)
	admin := newEngine(model.RoleAdmin)

	adminPaths := []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodGet, "/api/orders/all-users", ""},
		{http.MethodPut, "/api/orders/" + uuid.New().String() + "/complete", ""},
		{http.MethodPut, "/api/orders/" + uuid.New().String() + "/cancel", ""},
		{http.MethodGet, "/api/stocks/" + uuid.New().String(), ""},
		{http.MethodPut, "/api/stocks/" + uuid.New().String(), `{"quantity":5}`},
	}

	newRequest := func(method, path, body string) *http.Request {
		var reader io.Reader
		if body != "" {
			reader = strings.NewReader(body)
		}
		req := httptest.NewRequest(method, path, reader)
		req.Header.Set("Authorization", "Bearer token")
		if body != "" {
			req.Header.Set("Content-Type", "application/json")
		}
		return req
	}

	for _, tt := range adminPaths {
		resp := httptest.NewRecorder()
		customer.ServeHTTP(resp, newRequest(tt.method, tt.path, tt.body))
		if resp.Code != http.StatusForbidden {
			t.Fatalf("expected 403 for customer on %s %s, got %d", tt.method, tt.path, resp.Code)
		}

		resp = httptest.NewRecorder()
		admin.ServeHTTP(resp, newRequest(tt.method, tt.path, tt.body))
		if resp.Code != http.StatusOK {
			t.Fatalf("expected 200 for admin on %s %s, got %d", tt.method, tt.path, resp.Code)
		}
	}
}

var _ handlers.StorefrontFacade = (*testhelpers.StorefrontFacadeStub)(nil)
