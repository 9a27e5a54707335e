package pagination

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
	MaxMonths    = 60
)

// PositiveInt reads the named query parameter. Missing, malformed or
// non-positive values yield def; values above max are capped.
func PositiveInt(c echo.Context, name string, def, max int) int {
	n, err := strconv.Atoi(c.QueryParam(name))
	if err != nil || n <= 0 {
		n = def
	}
	if max > 0 && n > max {
		n = max
	}
	return n
}

// Limit reads the "limit" query parameter with the given default.
func Limit(c echo.Context, def int) int {
	return PositiveInt(c, "limit", def, MaxLimit)
}

// OptionalLimit returns nil when no usable "limit" was supplied, meaning
// "no limit".
func OptionalLimit(c echo.Context) *int {
	n, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil || n <= 0 {
		return nil
	}
	if n > MaxLimit {
		n = MaxLimit
	}
	return &n
}

// Months reads the "months" query parameter for trailing-window charts.
func Months(c echo.Context, def int) int {
	return PositiveInt(c, "months", def, MaxMonths)
}
