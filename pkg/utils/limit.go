package utils

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 100
)

// GetLimitParam reads the "limit" query parameter, falling back to
// DefaultListLimit when it is missing or out of range.
func GetLimitParam(c echo.Context) int {
	limit, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil || limit <= 0 || limit > MaxListLimit {
		return DefaultListLimit
	}
	return limit
}
