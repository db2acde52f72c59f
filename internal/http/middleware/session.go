package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gharkeseva/vendor-dashboard/internal/session"
)

// SessionRequired blocks dashboard endpoints until a vendor session exists.
// The surface is single-user: whoever holds the local app holds the session.
func SessionRequired(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if store.Token() == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "log in first"})
			return
		}
		c.Next()
	}
}
