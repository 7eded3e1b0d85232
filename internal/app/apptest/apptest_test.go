package apptest

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnique(t *testing.T) {
	a, b := Unique("google_id", 0), Unique("google_id", 0)
	assert.NotEqual(t, a, b)
	assert.True(t, strings.HasPrefix(a, "google_id_"))

	short := Unique("google_id", 8)
	assert.Len(t, short, 8)

	e := UniqueEmail()
	assert.True(t, strings.HasSuffix(e, "@example.com"))
	assert.NotEqual(t, e, UniqueEmail())
}

func TestKey(t *testing.T) {
	assert.Equal(t, "7", Key(float64(7)))
	assert.Equal(t, "0b7c", Key("0b7c"))
}

func TestWelcome(t *testing.T) {
	c := NewClient(t)
	w := c.Get("/")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]any{"message": "Welcome to Caramello API"}, Decode(t, w))
}
