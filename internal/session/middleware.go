package session

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/agalyaece/e-commerce-website/internal/config"
)

const ContextKey = "session_id"

// Middleware ensures every request carries a session cookie, minting one
// on first contact, and exposes the session ID on the gin context.
func Middleware(cfg config.SessionConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(cfg.CookieName)
		if err != nil || id == "" {
			id = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(cfg.CookieName, id, int(cfg.TTL.Seconds()), "/", "", cfg.Secure, true)
		}
		c.Set(ContextKey, id)
		c.Next()
	}
}

// IDFromContext returns the request's session ID.
func IDFromContext(c *gin.Context) string {
	if v, ok := c.Get(ContextKey); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}
