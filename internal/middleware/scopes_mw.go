package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireScopes creates a middleware that checks the token grants every scope.
// Must be used after JWTAuthMiddleware.
func RequireScopes(scopes ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		info, ok := GetAuthInfo(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authenticated"})
			return
		}

		if !info.HasScopes(scopes...) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "You do not have permission to access this resource"})
			return
		}

		c.Next()
	}
}
