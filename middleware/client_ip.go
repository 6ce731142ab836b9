package middleware

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// clientAddr resolves the caller's address for per-user rate limiting. Proxy
// headers win over the socket address so limits bucket end users rather than
// the load balancer in front of them.
func clientAddr(c *gin.Context) string {
	for _, header := range []string{"X-Forwarded-For", "X-Real-IP"} {
		v := c.GetHeader(header)
		if v == "" {
			continue
		}
		// X-Forwarded-For lists every hop; the originating client is first.
		if i := strings.IndexByte(v, ','); i >= 0 {
			v = v[:i]
		}
		if addr := strings.TrimSpace(v); addr != "" {
			return addr
		}
	}

	if host, _, err := net.SplitHostPort(c.Request.RemoteAddr); err == nil {
		return host
	}
	return c.Request.RemoteAddr
}
