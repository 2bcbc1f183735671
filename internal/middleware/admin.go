package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hosteleats/backend/internal/models"
)

// UserLookup resolves an email to its user record. A missing record
// returns (nil, nil).
type UserLookup interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// AdminRequired creates a middleware that allows only admin users
// through. It must run after AuthRequired: it reads the verified email
// from the context. A missing user record is non-admin, not an error.
func AdminRequired(users UserLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString(ContextEmailKey)

		user, err := users.GetByEmail(c.Request.Context(), email)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to verify role"})
			c.Abort()
			return
		}
		if !user.IsAdmin() {
			c.JSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
			c.Abort()
			return
		}

		c.Next()
	}
}
