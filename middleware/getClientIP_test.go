package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func requestContext(remoteAddr string, headers map[string]string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/", nil)
	c.Request.RemoteAddr = remoteAddr
	for k, v := range headers {
		c.Request.Header.Set(k, v)
	}
	return c
}

func TestGetClientIPForwardedForChain(t *testing.T) {
	c := requestContext("10.0.0.1:443", map[string]string{
		"X-Forwarded-For": "203.0.113.7, 198.51.100.1, 10.0.0.1",
	})
	if got := getClientIP(c); got != "203.0.113.7" {
		t.Fatalf("getClientIP = %q, want first forwarded hop", got)
	}
}

func TestGetClientIPRealIPFallback(t *testing.T) {
	c := requestContext("10.0.0.1:443", map[string]string{
		"X-Real-IP": " 203.0.113.7 ",
	})
	if got := getClientIP(c); got != "203.0.113.7" {
		t.Fatalf("getClientIP = %q, want trimmed X-Real-IP", got)
	}
}

func TestGetClientIPRemoteAddr(t *testing.T) {
	c := requestContext("192.0.2.10:51234", nil)
	if got := getClientIP(c); got != "192.0.2.10" {
		t.Fatalf("getClientIP = %q, want host without port", got)
	}

	// No port to strip.
	c = requestContext("192.0.2.10", nil)
	if got := getClientIP(c); got != "192.0.2.10" {
		t.Fatalf("getClientIP = %q, want raw remote addr", got)
	}
}
