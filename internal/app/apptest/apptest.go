// Package apptest drives the assembled API against a private in-memory
// database. Generated router tests are written against it.
package apptest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/spf13/cast"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"caramello/internal/app/database"
	"caramello/internal/app/server"
)

type Client struct {
	t      testing.TB
	DB     *gorm.DB
	Engine *gin.Engine
}

// NewClient migrates a fresh in-memory database and serves the API over it.
// The database is closed when the test ends.
func NewClient(t testing.TB) *Client {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.OpenSQLite(database.Memory, logger.Silent)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	require.NoError(t, database.Migrate(db))

	return &Client{t: t, DB: db, Engine: server.New(db, gin.Recovery())}
}

// Do sends body as JSON (nil for none) and records the response.
func (c *Client) Do(method, path string, body any) *httptest.ResponseRecorder {
	c.t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(c.t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	c.Engine.ServeHTTP(w, req)
	return w
}

func (c *Client) Get(path string) *httptest.ResponseRecorder {
	return c.Do(http.MethodGet, path, nil)
}

func (c *Client) Post(path string, body any) *httptest.ResponseRecorder {
	return c.Do(http.MethodPost, path, body)
}

func (c *Client) Patch(path string, body any) *httptest.ResponseRecorder {
	return c.Do(http.MethodPatch, path, body)
}

func (c *Client) Delete(path string) *httptest.ResponseRecorder {
	return c.Do(http.MethodDelete, path, nil)
}

// Decode parses a JSON object response.
func Decode(t testing.TB, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	DecodeInto(t, w, &out)
	return out
}

func DecodeInto(t testing.TB, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

// Key renders a decoded identifier as a path segment.
func Key(v any) string { return cast.ToString(v) }

func token() string { return strings.ReplaceAll(uuid.NewString(), "-", "")[:12] }

// Unique returns prefix plus a random suffix, keeping the random tail when
// maxLen (if positive) forces a cut.
func Unique(prefix string, maxLen int) string {
	s := prefix + "_" + token()
	if maxLen > 0 && len(s) > maxLen {
		s = s[len(s)-maxLen:]
	}
	return s
}

// UniqueEmail returns an address no other call returns.
func UniqueEmail() string { return "user_" + token() + "@example.com" }
