package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/south-ventures/tikang-front-owner/internal/owner"
	"github.com/south-ventures/tikang-front-owner/internal/session"
)

const userContextKey = "currentUser"

// RequireSession guards a route group behind a validated session. Routes
// that skip this middleware are the public ones (login, register, forgot
// password). Validation is memoized by the manager, so the per-request cost
// after the first call is a mutex and a map lookup.
//
// Pages only ever observe "user present" vs "user absent": session-lifecycle
// failures stop here as a 401 and never reach handlers as errors.
func RequireSession(manager *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := manager.Validate(c.Request.Context())
		if err != nil {
			status := http.StatusUnauthorized
			message := "Invalid or expired token"
			if errors.Is(err, session.ErrNoSession) {
				message = "Authentication required"
			}
			c.JSON(status, gin.H{"message": message, "redirect": "/login"})
			c.Abort()
			return
		}
		c.Set(userContextKey, user)
		c.Next()
	}
}

// CurrentUser returns the backend-confirmed profile RequireSession stored.
func CurrentUser(c *gin.Context) (*owner.UserProfile, bool) {
	value, exists := c.Get(userContextKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*owner.UserProfile)
	return user, ok
}
