package middleware

import (
	"net/http"
	"strings"

	"go-dispatch/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// BearerIdentity extracts the caller's identity from the Authorization
// header. The token is opaque and maps 1:1 to a user id; verifying it is an
// upstream concern, not this service's. Tenant scope rides on X-Tenant-ID.
func BearerIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || token == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Token not found", nil)
			c.Abort()
			return
		}

		c.Set("user_id", token)
		c.Set("tenant_id", c.GetHeader("X-Tenant-ID"))

		c.Next()
	}
}

// TenantScope populates tenant context on public routes, where no bearer
// token is required.
func TenantScope() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("tenant_id", c.GetHeader("X-Tenant-ID"))
		c.Next()
	}
}
