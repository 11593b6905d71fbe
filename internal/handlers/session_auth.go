package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/raja-bazar/makhtab-admin-service/internal/models"
	"github.com/raja-bazar/makhtab-admin-service/internal/services"
	"github.com/raja-bazar/makhtab-admin-service/internal/utils"
)

const sessionContextKey = "session"

// SessionAuthMiddleware gates routes on the stored session record.
type SessionAuthMiddleware struct {
	BaseHandler
	sessions services.SessionService
}

func NewSessionAuthMiddleware(sessions services.SessionService, logger utils.Logger) *SessionAuthMiddleware {
	return &SessionAuthMiddleware{BaseHandler: NewBaseHandler(logger), sessions: sessions}
}

// AuthMiddleware loads the current session and attaches it to the request
// context. Requests without a session get 401.
func (m *SessionAuthMiddleware) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := m.sessions.Get(c.Request.Context())
		if err != nil {
			if errors.Is(err, services.ErrNotAuthenticated) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{
					Message: "Not authenticated",
				})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
				Message: "Internal server error",
			})
			return
		}

		c.Set(sessionContextKey, session)
		c.Set("user_id", session.UserID)
		c.Set("role", session.Role)
		c.Next()
	}
}

// RequireRoleMiddleware rejects sessions whose role is outside the allowed
// set. Must run after AuthMiddleware.
func (m *SessionAuthMiddleware) RequireRoleMiddleware(allowed ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := SessionFromContext(c)
		if session == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{
				Message: "Not authenticated",
			})
			return
		}
		if !session.HasRole(allowed...) {
			m.handleServiceError(c, services.NewPermissionError(
				session.UserID, c.FullPath(), c.Request.Method, "role "+string(session.Role)+" not allowed"))
			c.Abort()
			return
		}
		c.Next()
	}
}

// SessionFromContext returns the session attached by AuthMiddleware, or nil.
func SessionFromContext(c *gin.Context) *models.Session {
	if v, ok := c.Get(sessionContextKey); ok {
		if session, ok := v.(*models.Session); ok {
			return session
		}
	}
	return nil
}
