package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"jobportal-backend/internal/shared/auth"
	"jobportal-backend/internal/shared/server/respond"
)

const adminUserKey = "adminUser"

// RequireAdmin validates a Bearer token issued at login and stores the
// admin username in context. Attached to admin routes only when the
// ADMIN_AUTH flag is enabled; the default surface leaves them open.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := strings.TrimSpace(c.GetHeader("Authorization"))
		if !strings.HasPrefix(header, "Bearer ") {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token", nil)
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer"))
		claims, err := auth.VerifyJWT(token)
		if err != nil {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token", nil)
			return
		}

		c.Set(adminUserKey, claims.Sub)
		c.Next()
	}
}

// AdminUserFromContext fetches the admin username set by RequireAdmin.
func AdminUserFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(adminUserKey)
	if name, ok := val.(string); ok {
		return name
	}
	return ""
}
