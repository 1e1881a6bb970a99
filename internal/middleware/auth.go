package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"norms-hub/auth"
	"norms-hub/internal/session"
	"norms-hub/internal/user"
)

// Auth verifies the bearer token, checks the session still exists, loads the
// selected profile, and stores it in the request context.
func Auth(secret string, sessions *session.Store, users user.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization is not found!"})
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		sid, userID, err := auth.ParseToken(secret, token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		storedUserID, ok := sessions.Lookup(c.Request.Context(), sid)
		if !ok || storedUserID != userID {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session expired or not found"})
			return
		}

		current, err := users.Get(c.Request.Context(), userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Profile no longer exists"})
			return
		}

		c.Set("session_id", sid)
		c.Set(user.ContextKey, *current)
		c.Next()
	}
}

// RequireRole aborts with 403 unless the current profile holds one of the
// given roles.
func RequireRole(roles ...user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		current, ok := user.FromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		for _, role := range roles {
			if current.Role == role {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient role"})
	}
}
