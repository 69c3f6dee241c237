package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/anujyadav2244/cricriser/pkg/helpers"
	"github.com/anujyadav2244/cricriser/pkg/response"
)

// Context keys set by Auth for downstream handlers.
const (
	CtxAdminIDKey    = "adminID"
	CtxAdminEmailKey = "adminEmail"
	CtxClaimsKey     = "authClaims"
)

// TokenBlacklist answers whether a token id was voided by logout.
type TokenBlacklist interface {
	IsBlacklisted(ctx context.Context, jti string) (bool, error)
}

// Auth validates the bearer token and rejects blacklisted ones. An unexpired,
// non-blacklisted token grants access; no session liveness check is added on
// top for plain API calls.
func Auth(jwt *helpers.JWTManager, blacklist TokenBlacklist) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			response.Error[any](c, http.StatusUnauthorized, "missing bearer token", nil)
			c.Abort()
			return
		}
		token := strings.TrimPrefix(header, "Bearer ")

		claims, err := jwt.Parse(token)
		if err != nil {
			response.Error[any](c, http.StatusUnauthorized, "invalid or expired token", err.Error())
			c.Abort()
			return
		}

		if blacklist != nil {
			revoked, bErr := blacklist.IsBlacklisted(c.Request.Context(), claims.ID)
			if bErr == nil && revoked {
				response.Error[any](c, http.StatusUnauthorized, "You are logged out. Please login again.", nil)
				c.Abort()
				return
			}
		}

		c.Set(CtxAdminIDKey, claims.AdminID)
		c.Set(CtxAdminEmailKey, claims.Email)
		c.Set(CtxClaimsKey, claims)
		c.Next()
	}
}
