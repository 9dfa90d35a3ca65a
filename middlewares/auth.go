package middlewares

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/brunoquiroz/DEMO-Comida-Rapida/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the bearer token and (if given) enforces roles.
func AuthMiddleware(secret string, requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, role, err := parseBearer(c, secret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": err.Error()})
			c.Abort()
			return
		}

		c.Set("userId", userID)
		c.Set("role", role)

		if len(requiredRoles) > 0 {
			allowed := false
			for _, r := range requiredRoles {
				if role == r {
					allowed = true
					break
				}
			}
			if !allowed {
				c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": "forbidden"})
				c.Abort()
				return
			}
		}

		c.Next()
	}
}

// OptionalAuthMiddleware attaches identity when a valid token is present
// but never rejects the request. Used for anonymous checkout and public
// listings with staff-only extras.
func OptionalAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, role, err := parseBearer(c, secret); err == nil {
			c.Set("userId", userID)
			c.Set("role", role)
		}
		c.Next()
	}
}

func parseBearer(c *gin.Context, secret string) (uint, string, error) {
	h := c.GetHeader("Authorization")
	if h == "" || !strings.HasPrefix(h, "Bearer ") {
		return 0, "", fmt.Errorf("missing or invalid token")
	}
	tokenStr := strings.TrimPrefix(h, "Bearer ")

	claims, err := utils.ParseToken(tokenStr, secret)
	if err != nil {
		return 0, "", fmt.Errorf("invalid token")
	}
	return claims.UserID, claims.Role, nil
}
