package user

import "github.com/gin-gonic/gin"

// ContextKey is the gin context key the auth middleware stores the
// authenticated profile under.
const ContextKey = "current_user"

// FromContext returns the authenticated profile of the request, if any.
func FromContext(c *gin.Context) (User, bool) {
	value, exists := c.Get(ContextKey)
	if !exists {
		return User{}, false
	}
	current, ok := value.(User)
	return current, ok
}
