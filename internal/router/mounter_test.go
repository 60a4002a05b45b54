package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/joefazee/qrmenu/internal/deps"
	"github.com/stretchr/testify/assert"
)

func TestMounter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	container := deps.NewContainer(nil, nil, nil, nil, nil, nil, nil)
	m := NewMounter(container)

	var seen *deps.Container
	m.Public(engine).Mount(func(r *gin.RouterGroup, c *deps.Container) {
		seen = c
		r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	})

	deny := func(c *gin.Context) { c.AbortWithStatus(http.StatusUnauthorized) }
	m.Admin(engine, deny).Group("/things").Mount(func(r *gin.RouterGroup, _ *deps.Container) {
		r.GET("", func(c *gin.Context) { c.String(http.StatusOK, "secret") })
	})

	assert.Same(t, container, seen)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/ping", http.NoBody))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())

	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/admin/things", http.NoBody))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
