// Package web holds the HTTP helpers shared by the generated routers.
package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ErrorBody is the fixed shape of every error response.
type ErrorBody struct {
	Detail string `json:"detail"`
}

func abort(c *gin.Context, status int, detail string) {
	c.AbortWithStatusJSON(status, ErrorBody{Detail: detail})
}

// NotFound answers 404 for a missing entity row.
func NotFound(c *gin.Context, entity string) {
	abort(c, http.StatusNotFound, entity+" not found")
}

// Unprocessable answers 422 for a body or parameter that failed to bind.
func Unprocessable(c *gin.Context, err error) {
	abort(c, http.StatusUnprocessableEntity, err.Error())
}

// Conflict answers 409 when a unique constraint rejects a write.
func Conflict(c *gin.Context, err error) {
	_ = c.Error(err)
	abort(c, http.StatusConflict, "resource already exists")
}

// ServerError answers 500 and attaches err to the context for the logger.
// The error text is not sent to the client.
func ServerError(c *gin.Context, err error) {
	_ = c.Error(err)
	abort(c, http.StatusInternalServerError, "internal server error")
}

// StorageError maps a failed database write: unique violations become 409,
// everything else 500. Requires gorm's TranslateError option.
func StorageError(c *gin.Context, err error) {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		Conflict(c, err)
		return
	}
	ServerError(c, err)
}
