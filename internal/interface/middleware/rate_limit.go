package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/anujyadav2244/cricriser/pkg/response"
)

// ipFromCtx extracts the client IP from Gin context, falling back to "unknown"
func ipFromCtx(c *gin.Context) string {
	if ip := c.GetString("real_ip"); ip != "" {
		return ip
	}
	if ip := c.ClientIP(); ip != "" {
		return ip
	}
	return "unknown"
}

func normalizePath(c *gin.Context) string {
	if fp := c.FullPath(); fp != "" {
		return fp
	}
	return c.Request.URL.Path
}

// KeyFunc builds a rate-limit key from the request.
type KeyFunc func(c *gin.Context) string

// KeyByIP limits by client IP only.
func KeyByIP() KeyFunc {
	return func(c *gin.Context) string {
		return "rl:ip:" + ipFromCtx(c)
	}
}

// KeyByIPAndPath limits by client IP and route path.
func KeyByIPAndPath() KeyFunc {
	return func(c *gin.Context) string {
		return "rl:path:" + normalizePath(c) + ":ip:" + ipFromCtx(c)
	}
}

// KeyByAdminID limits by the authenticated admin, falling back to IP for
// anonymous requests.
func KeyByAdminID() KeyFunc {
	return func(c *gin.Context) string {
		id := c.GetString(CtxAdminIDKey)
		if id == "" {
			return "rl:admin:anon:ip:" + ipFromCtx(c)
		}
		return "rl:admin:" + id
	}
}

// atomic INCR + PEXPIRE on first hit
var incrExpireScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return current
`)

type AllowFunc func(*gin.Context) bool // return true to bypass the limit

// RateLimit enforces max requests per window with an atomic Redis counter.
// Standard X-RateLimit headers are always set; Redis errors fail open.
func RateLimit(rdb *redis.Client, max int, window time.Duration, keyFn KeyFunc, allow AllowFunc) gin.HandlerFunc {
	if rdb == nil || max <= 0 || window <= 0 || keyFn == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		if allow != nil && allow(c) {
			c.Next()
			return
		}
		if strings.EqualFold(c.Request.Method, http.MethodOptions) {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		key := keyFn(c)

		countI, err := incrExpireScript.Run(ctx, rdb, []string{key}, window.Milliseconds()).Result()
		if err != nil {
			c.Next()
			return
		}
		count := toInt(countI)

		ttl, _ := rdb.TTL(ctx, key).Result()
		resetSec := 0
		if ttl > 0 {
			resetSec = int(ttl.Seconds())
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(max))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(max-count))
		c.Header("X-RateLimit-Reset", strconv.Itoa(resetSec))

		if count > max {
			if resetSec > 0 {
				c.Header("Retry-After", strconv.Itoa(resetSec))
			}
			response.Error[any](c, http.StatusTooManyRequests, "rate limit exceeded", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

func toInt(v interface{}) int {
	switch x := v.(type) {
	case int64:
		return int(x)
	case int:
		return x
	case string:
		i, _ := strconv.Atoi(x)
		return i
	}
	return 0
}
