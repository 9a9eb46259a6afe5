package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-room-booking/internal/config"
	"github.com/iliyamo/hotel-room-booking/internal/model"
	"github.com/iliyamo/hotel-room-booking/internal/utils"
)

const testSecret = "router-test-secret"

func newTestRouter(t *testing.T) *echo.Echo {
	t.Helper()
	e := echo.New()
	cfg := config.Config{JWTSecret: testSecret}
	// Handlers stay zero-valued: these tests only exercise the
	// middleware chain, which must reject before any handler runs.
	Register(e, cfg, config.CacheConfig{}, nil, Handlers{})
	return e
}

func bearerFor(t *testing.T, role string) string {
	t.Helper()
	tok, err := utils.NewAccessToken(testSecret, 1, role, 5)
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}
	return "Bearer " + tok.Token
}

func TestPaymentStatusRequiresManager(t *testing.T) {
	e := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPatch, "/v1/payments/1", nil)
	req.Header.Set(echo.HeaderAuthorization, bearerFor(t, model.RoleCustomer))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("customer PATCH /v1/payments/1 = %d, want %d", rec.Code, http.StatusForbidden)
	}
}

func TestPaymentStatusRequiresToken(t *testing.T) {
	e := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPatch, "/v1/payments/1", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous PATCH /v1/payments/1 = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestManagerRoutesRejectCustomer(t *testing.T) {
	e := newTestRouter(t)
	routes := []struct {
		method, path string
	}{
		{http.MethodPost, "/v1/hotels/1/rooms"},
		{http.MethodPatch, "/v1/rooms/1/status"},
	}
	for _, r := range routes {
		req := httptest.NewRequest(r.method, r.path, nil)
		req.Header.Set(echo.HeaderAuthorization, bearerFor(t, model.RoleCustomer))
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		if rec.Code != http.StatusForbidden {
			t.Errorf("customer %s %s = %d, want %d", r.method, r.path, rec.Code, http.StatusForbidden)
		}
	}
}
