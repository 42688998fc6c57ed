package middleware

import (
	"github.com/gin-gonic/gin"

	"sharksports/internal/domain"
	"sharksports/internal/scope"
)

// Actor builds the scope actor from the claims RequireAuth stored on the
// context.
func Actor(c *gin.Context) scope.Actor {
	return scope.Actor{
		UserID: c.GetInt64("user_id"),
		Role:   domain.UserRole(c.GetString("role")),
	}
}
