package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/middleware"
	"storefront/internal/session"
)

func handlePanic(c *gin.Context, route string) {
	if r := recover(); r != nil {
		log.Printf("[%s] panic recovered: %v", route, r)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func respondWithError(c *gin.Context, status int, route string, message string) {
	log.Printf("[%s] returning error %d: %s", route, status, message)
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}

// currentSession pulls the session the auth middleware injected. A nil
// return means the route was wired without SessionAuth, which is a
// programming error surfaced as a 500.
func currentSession(c *gin.Context) *session.Session {
	value, ok := c.Get(middleware.SessionKey)
	if !ok {
		return nil
	}
	sess, _ := value.(*session.Session)
	return sess
}

func mustSession(c *gin.Context, route string) *session.Session {
	sess := currentSession(c)
	if sess == nil {
		respondWithError(c, http.StatusInternalServerError, route, "internal server error")
	}
	return sess
}
