package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	tenantRepo "davi/database/repository/tenant"
	"davi/utils"
)

// TenantAuthMiddleware authenticates dashboard requests. The JWT is validated
// first, then the token hash is resolved to a tenant through the auth cache
// with a database fallback, so a revoked token dies even before its exp.
func TenantAuthMiddleware(tenants tenantRepo.TenantRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := utils.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		tokenHash := utils.HashToken(tokenString)

		tenantID := utils.GetCachedAuthTenant(tokenHash)
		if tenantID == "" {
			tenant, err := tenants.GetByTokenHash(c.Request.Context(), tokenHash)
			if err != nil || tenant == nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch or account not found"})
				return
			}
			tenantID = tenant.ID
			utils.CacheAuthToken(tokenHash, tenantID)
		}

		c.Set("tenantID", tenantID)
		c.Next()
	}
}

// TenantID pulls the authenticated tenant out of the request context.
func TenantID(c *gin.Context) (string, bool) {
	v, exists := c.Get("tenantID")
	if !exists {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}
