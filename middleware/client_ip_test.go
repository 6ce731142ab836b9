package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func contextWithRequest(remoteAddr string, headers map[string]string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/", nil)
	c.Request.RemoteAddr = remoteAddr
	for k, v := range headers {
		c.Request.Header.Set(k, v)
	}
	return c
}

func TestClientAddr(t *testing.T) {
	cases := []struct {
		name       string
		remoteAddr string
		headers    map[string]string
		want       string
	}{
		{
			"forwarded-for takes the first hop",
			"10.0.0.1:443",
			map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.2, 10.0.0.1"},
			"203.0.113.7",
		},
		{
			"forwarded-for beats real-ip",
			"10.0.0.1:443",
			map[string]string{"X-Forwarded-For": "203.0.113.7", "X-Real-IP": "198.51.100.4"},
			"203.0.113.7",
		},
		{
			"real-ip when no forwarded-for",
			"10.0.0.1:443",
			map[string]string{"X-Real-IP": " 198.51.100.4 "},
			"198.51.100.4",
		},
		{
			"socket address with port stripped",
			"192.0.2.9:51234",
			nil,
			"192.0.2.9",
		},
		{
			"socket address without port",
			"192.0.2.9",
			nil,
			"192.0.2.9",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := contextWithRequest(tc.remoteAddr, tc.headers)
			assert.Equal(t, tc.want, clientAddr(c))
		})
	}
}
