package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

const HeaderAdminKey = "X-Admin-Key"

// RequireAdmin guards the admin API with a static key, verified against the
// bcrypt hash from config. There is no user auth in this service; identity
// lives in the surrounding platform.
func RequireAdmin(keyHash string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(HeaderAdminKey)
		if key == "" || bcrypt.CompareHashAndPassword([]byte(keyHash), []byte(key)) != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":      "admin key required",
				"request_id": GetRequestID(c),
			})
			return
		}

		c.Next()
	}
}
