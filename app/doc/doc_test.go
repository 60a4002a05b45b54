package doc

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/joefazee/qrmenu/docs"
)

func TestServers(t *testing.T) {
	assert.Len(t, Servers("development", "https://menu.example.com"), 1)

	prod := Servers("production", "https://menu.example.com")
	require.Len(t, prod, 2)
	assert.Equal(t, "https://menu.example.com", prod[1]["url"])
}

func TestInit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	Init(r, "production", "https://menu.example.com")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", http.NoBody))
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body["servers"], 2)
	assert.Contains(t, body["paths"], "/api/v1/menu")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/docs/index.html", http.NoBody))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/swagger/doc.json")
}
