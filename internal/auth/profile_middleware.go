package auth

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ProfileChecker reports whether an identity has registered a profile.
type ProfileChecker interface {
	HasProfile(ctx context.Context, identity string) (bool, error)
}

// RequireProfile rejects callers without a profile before the handler runs.
// It must be used AFTER AuthMiddleware. The registry checks again inside the
// mutation.
func RequireProfile(profiles ProfileChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := Identity(c)
		if identity == "" {
			// This should not happen if AuthMiddleware is used before it
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
			return
		}

		ok, err := profiles.HasProfile(c.Request.Context(), identity)
		if err != nil {
			log.Printf("[AUTH] Profile lookup failed for %s: %v", identity, err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to check profile"})
			return
		}
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Profile not registered"})
			return
		}

		c.Next()
	}
}
