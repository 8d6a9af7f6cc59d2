package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionHeader carries the order-taking session identifier. Each
// terminal (browser tab, till) holds one session; the active order and
// stored bill are scoped to it.
const SessionHeader = "X-Order-Session"

// SessionMiddleware extracts the order session ID from the request
// header, issuing a fresh one when absent. The ID is echoed back so
// clients can persist it.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader(SessionHeader)
		if sessionID == "" || len(sessionID) > 64 {
			sessionID = uuid.New().String()
		}
		c.Set("session_id", sessionID)
		c.Header(SessionHeader, sessionID)
		c.Next()
	}
}
