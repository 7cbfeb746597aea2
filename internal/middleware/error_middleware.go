package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/kaanb/courseboard/internal/app/models/dto"
	"github.com/kaanb/courseboard/internal/pkg/apperrors"
)

// HandleAPIError translates application errors into HTTP responses. Anything
// not in the taxonomy maps to a generic 500 so internal detail never reaches
// the client.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case isNotFound(err):
		c.JSON(404, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Resource not found"),
		})
	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(403, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeForbidden, "Permission denied"),
		})
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(401, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid credentials"),
		})
	case errors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(401, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired"),
		})
	case errors.Is(err, apperrors.ErrTokenInvalid), errors.Is(err, apperrors.ErrInvalidFormat):
		c.JSON(401, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token"),
		})
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		c.JSON(409, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Email already exists"),
		})
	case errors.Is(err, apperrors.ErrResourceAlreadyExists):
		c.JSON(409, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Resource already exists"),
		})
	case errors.Is(err, apperrors.ErrNoUpdatableFields):
		c.JSON(400, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Request contains no updatable fields"),
		})
	case errors.Is(err, apperrors.ErrInvalidRole):
		c.JSON(400, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid role"),
		})
	case errors.Is(err, apperrors.ErrInvalidInstructor):
		c.JSON(400, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Instructor reference must name an instructor"),
		})
	case errors.Is(err, apperrors.ErrEmptyRoster):
		c.JSON(400, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Course has no enrolled students"),
		})
	case errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(400, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeValidationFailed, validationMessage(err)),
		})
	default:
		c.JSON(500, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"),
		})
	}
}

// isNotFound groups the not-found sentinels; they all surface as 404.
func isNotFound(err error) bool {
	return errors.Is(err, apperrors.ErrResourceNotFound) ||
		errors.Is(err, apperrors.ErrUserNotFound) ||
		errors.Is(err, apperrors.ErrCourseNotFound) ||
		errors.Is(err, apperrors.ErrAssignmentNotFound) ||
		errors.Is(err, apperrors.ErrSubmissionNotFound) ||
		errors.Is(err, apperrors.ErrFileNotFound)
}

// validationMessage surfaces the message carried by a wrapped validation
// error, falling back to a generic one.
func validationMessage(err error) string {
	var customErr *apperrors.CustomError
	if errors.As(err, &customErr) && customErr.Message != "" {
		return customErr.Message
	}
	return "Validation failed"
}
