package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func init() { gin.SetMode(gin.TestMode) }

func serve(t *testing.T, path, target string, h gin.HandlerFunc) (*httptest.ResponseRecorder, ErrorBody) {
	t.Helper()
	r := gin.New()
	r.GET(path, h)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	var body ErrorBody
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	}
	return w, body
}

func TestNotFound(t *testing.T) {
	w, body := serve(t, "/x", "/x", func(c *gin.Context) { NotFound(c, "Family") })
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Family not found", body.Detail)
}

func TestStorageError(t *testing.T) {
	w, body := serve(t, "/x", "/x", func(c *gin.Context) {
		StorageError(c, fmt.Errorf("insert: %w", gorm.ErrDuplicatedKey))
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "resource already exists", body.Detail)

	w, body = serve(t, "/x", "/x", func(c *gin.Context) { StorageError(c, errors.New("disk full")) })
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "internal server error", body.Detail)
}

func TestUUIDParam(t *testing.T) {
	id := uuid.New()
	var got uuid.UUID
	w, _ := serve(t, "/f/:uuid", "/f/"+id.String(), func(c *gin.Context) {
		var ok bool
		if got, ok = UUIDParam(c, "uuid"); ok {
			c.Status(http.StatusNoContent)
		}
	})
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, id, got)

	w, body := serve(t, "/f/:uuid", "/f/not-a-uuid", func(c *gin.Context) { UUIDParam(c, "uuid") })
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, body.Detail, "invalid uuid")
}

func TestIntParam(t *testing.T) {
	var got int64
	w, _ := serve(t, "/f/:id", "/f/42", func(c *gin.Context) {
		var ok bool
		if got, ok = IntParam(c, "id"); ok {
			c.Status(http.StatusNoContent)
		}
	})
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, int64(42), got)

	w, _ = serve(t, "/f/:id", "/f/4x", func(c *gin.Context) { IntParam(c, "id") })
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}
