package handler

import (
	"errors"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
)

// getUserID extracts the authenticated user's id stored in the context
// by the JWT middleware.  JWT numeric claims decode as float64; the
// other integer shapes are accepted for callers that set the key
// directly.
func getUserID(c echo.Context) (uint64, error) {
	switch t := c.Get("user_id").(type) {
	case uint64:
		return t, nil
	case int:
		return uint64(t), nil
	case int64:
		return uint64(t), nil
	case float64:
		return uint64(t), nil
	case string:
		if n, err := strconv.ParseUint(t, 10, 64); err == nil {
			return n, nil
		}
	}
	return 0, errors.New("invalid user_id in context")
}

// isManager reports whether the caller holds the MANAGER role.
func isManager(c echo.Context) bool {
	role, _ := c.Get("role").(string)
	return role == "MANAGER"
}

// parseID parses a positive uint64 path parameter.
func parseID(c echo.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}

// parseDate parses a YYYY-MM-DD value as a UTC midnight.
func parseDate(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, time.UTC)
}
