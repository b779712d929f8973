package httputil

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ParsePagination safely parses and validates offset and limit query parameters.
// It uses default values of 0 for offset and 50 for limit.
// The limit cannot exceed 100.
func ParsePagination(c *gin.Context) (offset, limit int, err error) {
	// Parse offset query parameter (default: 0)
	offsetStr := c.DefaultQuery("offset", "0")
	offset, err = strconv.Atoi(offsetStr)
	if err != nil || offset < 0 {
		return 0, 0, fmt.Errorf("invalid offset parameter: must be a non-negative integer")
	}

	// Parse limit query parameter (default: 50, max: 100)
	limitStr := c.DefaultQuery("limit", "50")
	limit, err = strconv.Atoi(limitStr)
	if err != nil || limit < 1 || limit > 100 {
		return 0, 0, fmt.Errorf("invalid limit parameter: must be between 1 and 100")
	}

	return offset, limit, nil
}

// ParseIDParam parses a numeric id from a path parameter.
// Returns an error suitable for a 400 response when the value is missing or
// not an integer.
func ParseIDParam(c *gin.Context, name string) (int64, error) {
	raw := c.Param(name)
	if raw == "" {
		return 0, fmt.Errorf("missing %s parameter", name)
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s parameter: must be an integer", name)
	}

	return id, nil
}

// ParseAccountIDQuery parses the accountId query parameter.
// Parameter validation runs before any ownership check, so a request that is
// both malformed and mis-owned reports 400, not 403.
func ParseAccountIDQuery(c *gin.Context) (int64, error) {
	raw := c.Query("accountId")
	if raw == "" {
		return 0, fmt.Errorf("missing accountId parameter")
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid accountId parameter: must be an integer")
	}

	return id, nil
}
