package middleware

import (
	"net/http"                    // HTTP status codes
	"recipe_hub/internal/session" // Session manager

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// Context keys set by SessionMiddleware
const (
	SessionKey = "session" // *session.Session of the caller
	UserIDKey  = "userID"  // uint id of the authenticated user
)

// SessionMiddleware loads the caller's session, if any, into the context
func SessionMiddleware(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, err := sessions.Load(c) // Resolve cookie to a live session
		if err != nil {
			if session.IsNotFound(err) {
				c.Next() // Anonymous request
				return
			}
			// The store is down, so the caller's login state is unknown
			logrus.WithFields(logrus.Fields{
				"path":  c.Request.URL.Path, // Request path
				"error": err.Error(),        // Error message
			}).Error("Failed to load session")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		c.Set(SessionKey, sess)       // Store session in context
		c.Set(UserIDKey, sess.UserID) // Store userID in context
		c.Next()                      // Proceed to the next handler
	}
}

// RequireSession aborts requests that carry no live session
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Check if userID exists in context
		if _, exists := c.Get(UserIDKey); !exists {
			// If not, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Next() // Proceed to the next handler
	}
}

// CurrentSession returns the session loaded by SessionMiddleware
func CurrentSession(c *gin.Context) (*session.Session, bool) {
	v, exists := c.Get(SessionKey)
	if !exists {
		return nil, false
	}
	sess, ok := v.(*session.Session)
	return sess, ok
}
