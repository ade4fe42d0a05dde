package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"popin/models"
	"popin/utils"
)

// Authenticate verifies the Authorization token and stores the caller's id
// and role in the request context for downstream handlers.
func Authenticate(c *gin.Context) {
	token := c.Request.Header.Get("Authorization")
	if token == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authorized."})
		return
	}

	userID, role, err := utils.VerifyToken(token)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authorized."})
		return
	}

	c.Set("userId", userID)
	c.Set("role", string(role))
	c.Next()
}

// RequireRole gates a route group to the given roles. It assumes
// Authenticate already ran.
func RequireRole(roles ...models.Role) gin.HandlerFunc {
	allowed := make(map[models.Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		role := models.Role(c.GetString("role"))
		if !allowed[role] {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Insufficient permissions."})
			return
		}
		c.Next()
	}
}
