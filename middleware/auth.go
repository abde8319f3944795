package middleware

import (
	"net/http"
	"strings"

	"travel-backend/models"
	"travel-backend/services"

	"github.com/gin-gonic/gin"
)

const adminContextKey = "admin"

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	return ""
}

// AuthRequired guards the admin API. A missing or expired session answers
// 401 without touching the handler; otherwise the admin is stored on the
// request context for handlers that need it.
func AuthRequired(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		admin := auth.AdminByToken(bearerToken(c))
		if admin == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set(adminContextKey, admin)
		c.Next()
	}
}

// CurrentAdmin returns the admin the session middleware attached, or nil on
// unauthenticated routes.
func CurrentAdmin(c *gin.Context) *models.Admin {
	if v, ok := c.Get(adminContextKey); ok {
		if admin, ok := v.(*models.Admin); ok {
			return admin
		}
	}
	return nil
}
