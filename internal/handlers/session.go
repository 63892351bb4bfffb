package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"storefront/internal/session"
)

// CreateSession mints a shopper session and the bearer token addressing it.
// Sessions are volatile; the token outliving its state is fine, the
// middleware just recreates an empty session for it.
func CreateSession(store *session.Store, secret string, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /session"
		defer handlePanic(c, route)

		sess := store.New()

		claims := jwt.MapClaims{
			"sid": sess.ID,
			"iat": time.Now().Unix(),
			"exp": time.Now().Add(ttl).Unix(),
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "could not create session")
			return
		}

		log.Printf("[%s] session created", route)
		c.JSON(http.StatusCreated, gin.H{
			"token":     token,
			"expiresIn": int(ttl.Seconds()),
		})
	}
}
