package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
	"github.com/yigit/coursehub/internal/pkg/logger"
)

// HandleAPIError maps error values that are common across routes to their
// HTTP status and wire shape. Route-specific outcomes (ownership denials,
// the update route's not-found handling) are translated in the controllers
// before falling through to this function.
func HandleAPIError(c *gin.Context, err error) {
	var ve *apperrors.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(400, dto.NewValidationErrorResponse(ve.Messages))
	case errors.Is(err, apperrors.ErrUserNotFound):
		c.JSON(404, dto.MessageResponse{Msg: "That user was not found."})
	case errors.Is(err, apperrors.ErrCourseNotFound):
		c.JSON(404, dto.MessageResponse{Msg: "That course was not found."})
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(401, dto.AccessDenied)
	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(403, dto.MessageResponse{Msg: "You do not have permission for this action."})
	default:
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled error in handler")
		c.JSON(500, dto.MessageResponse{Msg: "Internal server error"})
	}
}
