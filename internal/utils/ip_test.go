package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newTestContext(headers map[string]string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.RemoteAddr = "10.0.0.1:1234"
	for k, v := range headers {
		c.Request.Header.Set(k, v)
	}
	return c
}

func TestGetRealIP_PrefersXRealIP(t *testing.T) {
	c := newTestContext(map[string]string{
		"X-Real-IP":       "1.2.3.4",
		"X-Forwarded-For": "5.6.7.8, 9.9.9.9",
	})

	assert.Equal(t, "1.2.3.4", GetRealIP(c))
}

func TestGetRealIP_UsesFirstForwardedFor(t *testing.T) {
	c := newTestContext(map[string]string{
		"X-Forwarded-For": " 5.6.7.8 , 9.9.9.9",
	})

	assert.Equal(t, "5.6.7.8", GetRealIP(c))
}

func TestGetRealIP_FallsBackToRemoteAddr(t *testing.T) {
	c := newTestContext(nil)

	assert.Equal(t, "10.0.0.1", GetRealIP(c))
}
