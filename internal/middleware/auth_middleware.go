package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/app/services"
	"github.com/yigit/coursehub/internal/pkg/auth"
)

// currentUserKey is the gin context key the authenticated principal is
// attached under.
const currentUserKey = "currentUser"

// AuthMiddleware authenticates requests from HTTP Basic credentials
type AuthMiddleware struct {
	authService services.AuthService
	logger      zerolog.Logger
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(authService services.AuthService, logger zerolog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		authService: authService,
		logger:      logger,
	}
}

// BasicAuth resolves the Authorization header into a principal and attaches
// it to the request context. With required=true the request is rejected
// before any handler logic when no principal could be resolved; with
// required=false the request proceeds and handlers branch on presence. Every
// rejection uses the same generic body regardless of cause.
func (m *AuthMiddleware) BasicAuth(required bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, password, err := auth.ParseBasicCredentials(c.GetHeader("Authorization"))
		if err != nil {
			m.deny(c, required, err)
			return
		}

		user, err := m.authService.Authenticate(c.Request.Context(), email, password)
		if err != nil {
			m.deny(c, required, err)
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// deny short-circuits the request when auth is required, otherwise lets it
// proceed without a principal.
func (m *AuthMiddleware) deny(c *gin.Context, required bool, cause error) {
	if !required {
		c.Next()
		return
	}

	m.logger.Debug().Err(cause).Str("path", c.Request.URL.Path).Msg("Authentication failed")
	c.AbortWithStatusJSON(401, dto.AccessDenied)
}

// CurrentUser returns the authenticated principal attached to the request
// context, if any.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(currentUserKey)
	if !exists {
		return nil, false
	}

	user, ok := value.(*models.User)
	return user, ok
}
