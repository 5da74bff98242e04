package auth

import (
	"net/http"
	"strings"

	"educonnect/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// IdentityKey is the gin context key holding the authenticated caller identity.
const IdentityKey = "identity"

// AuthMiddleware requires a valid bearer token and stores its subject as the
// caller identity.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		identity, err := jwt.ParseToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(IdentityKey, identity)
		c.Next()
	}
}

// Identity returns the caller identity set by AuthMiddleware or
// OptionalAuthMiddleware, or "" for anonymous requests.
func Identity(c *gin.Context) string {
	return c.GetString(IdentityKey)
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
