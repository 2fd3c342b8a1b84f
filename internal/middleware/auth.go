package middleware

import (
	"net/http"
	"strings"

	"studiorental/internal/modules/auth"
	jwtsvc "studiorental/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// RequireAdmin rejects requests without a valid admin bearer token.
func RequireAdmin(jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if !strings.HasPrefix(h, "Bearer ") {
			abortUnauthorized(c, "Missing or invalid Authorization header")
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		claims, err := jwt.ValidateToken(tokenStr)
		if err != nil || claims.Role != auth.RoleAdmin {
			abortUnauthorized(c, "Invalid token")
			return
		}

		c.Set("role", claims.Role)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "UNAUTHORIZED",
			"message": message,
		},
	})
}
