package server_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"caramello/internal/app/apptest"
	"caramello/internal/app/models"
)

func createFamily(t *testing.T, c *apptest.Client, body map[string]any) map[string]any {
	t.Helper()
	w := c.Post("/families/", body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return apptest.Decode(t, w)
}

func TestWelcome(t *testing.T) {
	w := apptest.NewClient(t).Get("/")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Welcome to Caramello API"}`, w.Body.String())
}

func TestCreateUserThenReadByUUID(t *testing.T) {
	c := apptest.NewClient(t)
	w := c.Post("/users/", map[string]any{"full_name": "A", "email": "a@example.com", "password": "x"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	created := apptest.Decode(t, w)

	require.NotNil(t, created["uuid"])
	assert.NotContains(t, created, "hashed_password")
	assert.NotContains(t, created, "password")
	assert.NotContains(t, created, "id")
	assert.Equal(t, true, created["is_active"], "literal default applied")

	w = c.Get("/users/" + apptest.Key(created["uuid"]))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, created["uuid"], apptest.Decode(t, w)["uuid"])

	var row models.User
	require.NoError(t, c.DB.First(&row, "email = ?", "a@example.com").Error)
	require.NotNil(t, row.HashedPassword)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*row.HashedPassword), []byte("x")))
}

func TestCreateRejectsInvalidBody(t *testing.T) {
	c := apptest.NewClient(t)

	w := c.Post("/users/", map[string]any{"full_name": "A", "email": "not-an-email", "password": "x"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = c.Post("/users/", map[string]any{"email": "a@example.com", "password": "x"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.NotEmpty(t, apptest.Decode(t, w)["detail"])
}

func TestCreateDuplicateEmailConflicts(t *testing.T) {
	c := apptest.NewClient(t)
	body := map[string]any{"full_name": "A", "email": "dup@example.com", "password": "x"}
	require.Equal(t, http.StatusOK, c.Post("/users/", body).Code)

	w := c.Post("/users/", body)
	assert.Equal(t, http.StatusConflict, w.Code, w.Body.String())
}

func TestPatchFamilyUpdatesOnlyGivenFields(t *testing.T) {
	c := apptest.NewClient(t)
	created := createFamily(t, c, map[string]any{"name": "Lovelace", "description": "math"})
	assert.Equal(t, "active", created["status"])

	path := "/families/" + apptest.Key(created["uuid"])
	w := c.Patch(path, map[string]any{"status": "archived"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	patched := apptest.Decode(t, w)

	assert.Equal(t, "archived", patched["status"])
	for _, k := range []string{"uuid", "name", "description", "created_at"} {
		assert.Equal(t, created[k], patched[k], k)
	}

	got := apptest.Decode(t, c.Get(path))
	assert.Equal(t, "archived", got["status"])
	assert.Equal(t, "Lovelace", got["name"])
}

func TestMissingFamily(t *testing.T) {
	c := apptest.NewClient(t)
	path := "/families/" + uuid.NewString()

	for _, w := range []*httptest.ResponseRecorder{
		c.Get(path),
		c.Patch(path, map[string]any{"status": "archived"}),
		c.Delete(path),
	} {
		assert.Equal(t, http.StatusNotFound, w.Code)
	}
	assert.Equal(t, "Family not found", apptest.Decode(t, c.Get(path))["detail"])

	w := c.Get("/families/not-a-uuid")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestDeleteFamily(t *testing.T) {
	c := apptest.NewClient(t)
	created := createFamily(t, c, map[string]any{"name": "Curie"})
	path := "/families/" + apptest.Key(created["uuid"])

	w := c.Delete(path)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
	assert.Equal(t, http.StatusNotFound, c.Get(path).Code)
}

func TestListFamiliesPaging(t *testing.T) {
	c := apptest.NewClient(t)
	for i := range 3 {
		createFamily(t, c, map[string]any{"name": fmt.Sprintf("f%d", i)})
	}

	var rows []map[string]any
	apptest.DecodeInto(t, c.Get("/families/?offset=1&limit=1"), &rows)
	require.Len(t, rows, 1)
	assert.Equal(t, "f1", rows[0]["name"])

	apptest.DecodeInto(t, c.Get("/families/?sort=-name"), &rows)
	require.Len(t, rows, 3)
	assert.Equal(t, "f2", rows[0]["name"])
}

func TestMetricsUseRouteTemplates(t *testing.T) {
	c := apptest.NewClient(t)
	id := uuid.NewString()
	c.Get("/users/" + id)

	w := c.Get("/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `caramello_http_requests_total{method="GET",route="/users/:uuid",status="404"}`)
	assert.NotContains(t, body, id)
}
