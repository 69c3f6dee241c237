package middleware

import (
	"net"

	"github.com/gin-gonic/gin"
)

// AllowPrivateIP bypasses rate limiting for requests arriving from private
// or loopback addresses.
func AllowPrivateIP() AllowFunc {
	return func(c *gin.Context) bool {
		parsed := net.ParseIP(ipFromCtx(c))
		if parsed == nil {
			return false
		}
		return parsed.IsLoopback() || parsed.IsPrivate()
	}
}
