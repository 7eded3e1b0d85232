package web

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UUIDParam parses a path parameter as a UUID. On failure it answers 422 and
// returns false.
func UUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	raw := c.Param(name)
	id, err := uuid.Parse(raw)
	if err != nil {
		Unprocessable(c, fmt.Errorf("%s: invalid uuid %q", name, raw))
		return uuid.Nil, false
	}
	return id, true
}

// IntParam parses a path parameter as an integer key.
func IntParam(c *gin.Context, name string) (int64, bool) {
	raw := c.Param(name)
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		Unprocessable(c, fmt.Errorf("%s: invalid integer %q", name, raw))
		return 0, false
	}
	return n, true
}

// StringParam returns a non-blank path parameter.
func StringParam(c *gin.Context, name string) (string, bool) {
	raw := strings.TrimSpace(c.Param(name))
	if raw == "" {
		Unprocessable(c, fmt.Errorf("%s: empty", name))
		return "", false
	}
	return raw, true
}
