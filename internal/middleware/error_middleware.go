package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/studentforce/internal/app/models/dto"
	"github.com/yigit/studentforce/internal/pkg/apperrors"
	"github.com/yigit/studentforce/internal/pkg/logger"
)

// --- Central Error Handling Middleware/Function ---

// HandleAPIError maps service errors to status codes and error details
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Resource not found").WithDetails(err.Error()),
		))
	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, conflictMessage(err)),
		))
	case errors.Is(err, apperrors.ErrValidationFailed):
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed")
		if fields := apperrors.DetailsOf(err); len(fields) > 0 {
			detail = detail.WithDetails(fields)
		}
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
	case apperrors.Is(err, apperrors.ErrBadRequest, apperrors.ErrSnapshotInvalid, apperrors.ErrSnapshotVersion):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeBadRequest, err.Error()),
		))
	case errors.Is(err, apperrors.ErrPersistence):
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Storage failure, change rejected")
		c.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodePersistence, "Storage unavailable, the change was not saved").
				WithSeverity(dto.ErrorSeverityCritical),
		))
	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"),
		))
	}
}

func conflictMessage(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrAlreadyEnrolled):
		return "Student is already enrolled in this course"
	case errors.Is(err, apperrors.ErrMarkExists):
		return "Student already has a mark for this course"
	}
	return "Resource already exists"
}
