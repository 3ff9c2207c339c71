package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agalyaece/e-commerce-website/internal/session"
)

// RequireAdmin gates the store-management routes behind an admin login.
func (h *Handlers) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, err := h.sessions.Get(c.Request.Context(), session.IDFromContext(c))
		if err != nil || sess.UserID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "admin login required"})
			return
		}
		c.Next()
	}
}
