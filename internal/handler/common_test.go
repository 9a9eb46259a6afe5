package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func testContext(t *testing.T) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestGetUserID(t *testing.T) {
	cases := []struct {
		name    string
		value   interface{}
		want    uint64
		wantErr bool
	}{
		{"float64 jwt claim", float64(42), 42, false},
		{"uint64", uint64(7), 7, false},
		{"int", 9, 9, false},
		{"int64", int64(11), 11, false},
		{"numeric string", "13", 13, false},
		{"non-numeric string", "abc", 0, true},
		{"missing", nil, 0, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := testContext(t)
			if tc.value != nil {
				c.Set("user_id", tc.value)
			}
			got, err := getUserID(c)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("getUserID = %d, want error", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("getUserID: %v", err)
			}
			if got != tc.want {
				t.Fatalf("getUserID = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestIsManager(t *testing.T) {
	c := testContext(t)
	if isManager(c) {
		t.Fatal("no role set reported manager")
	}
	c.Set("role", "CUSTOMER")
	if isManager(c) {
		t.Fatal("CUSTOMER reported manager")
	}
	c.Set("role", "MANAGER")
	if !isManager(c) {
		t.Fatal("MANAGER not reported manager")
	}
}
