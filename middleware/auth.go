package middleware

import (
	"net/http"
	"strings"

	"salonpro/utils"

	"github.com/gin-gonic/gin"
)

// Context keys set by the auth middleware.
const (
	CtxSubjectID = "subjectID"
	CtxEmail     = "email"
	CtxRole      = "role"
)

// JWTAuthMiddleware authenticates requests carrying a Bearer token. When
// requiredRole is non-empty the token's role claim must match; an empty
// requiredRole accepts any authenticated principal. The token hash is
// checked against the Redis auth cache so revoked sessions are rejected
// before expiry.
func JWTAuthMiddleware(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}

		claims, err := utils.ExtractClaims(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		if requiredRole != "" && claims.Role != requiredRole {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": requiredRole + " access required"})
			return
		}

		cached, err := utils.GetCachedAuthToken(utils.GetAuthCacheClient(), claims.Role, claims.Subject)
		if err != nil || cached == "" || cached != utils.HashToken(tokenString) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(CtxSubjectID, claims.Subject)
		c.Set(CtxEmail, claims.Email)
		c.Set(CtxRole, claims.Role)
		c.Next()
	}
}
