package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newCORSRouter(environment, allowedOrigins string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(CORS(environment, allowedOrigins))
	router.POST("/submit", func(c *gin.Context) { c.Status(http.StatusOK) })
	return router
}

func TestCORS_PreflightReturnsEmptyOK(t *testing.T) {
	router := newCORSRouter("development", "")

	req := httptest.NewRequest(http.MethodOptions, "/submit", nil)
	req.Header.Set("Origin", "https://janedoe.foliolink.app")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
	assert.Equal(t, "https://janedoe.foliolink.app", w.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, w.Header().Get("Access-Control-Allow-Methods"))
	assert.NotEmpty(t, w.Header().Get("Access-Control-Allow-Headers"))
}

func TestCORS_ProductionAllowsConfiguredOrigin(t *testing.T) {
	router := newCORSRouter("production", "https://foliolink.app, https://www.foliolink.app")

	req := httptest.NewRequest(http.MethodPost, "/submit", nil)
	req.Header.Set("Origin", "https://foliolink.app")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://foliolink.app", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_ProductionRejectsUnknownOrigin(t *testing.T) {
	router := newCORSRouter("production", "https://foliolink.app")

	req := httptest.NewRequest(http.MethodPost, "/submit", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
