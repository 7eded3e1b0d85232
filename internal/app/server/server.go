// Package server assembles the HTTP surface of the generated API.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"caramello/internal/app/api/generated"
)

// WelcomeMessage is the body of GET /.
const WelcomeMessage = "Welcome to Caramello API"

// New builds the engine with the welcome route, the metrics endpoint and
// every generated router. Without middleware it uses gin's logger and recovery.
func New(db *gorm.DB, mw ...gin.HandlerFunc) *gin.Engine {
	if len(mw) == 0 {
		mw = []gin.HandlerFunc{gin.Logger(), gin.Recovery()}
	}
	r := gin.New()
	r.Use(mw...)
	r.Use(Metrics())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": WelcomeMessage})
	})
	r.GET("/metrics", metricsHandler())
	generated.RegisterAll(r, db)
	return r
}

// Run serves on addr until the listener fails.
func Run(addr string, db *gorm.DB) error {
	return New(db).Run(addr)
}
