package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/yigit/studentforce/internal/app/models/dto"
	"github.com/yigit/studentforce/internal/pkg/validation"
)

var registerOnce sync.Once

// RegisterValidators adds the custom binding tags to gin's validator and makes
// field errors report json names. Safe to call more than once.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}

		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return f.Name
			}
			return name
		})

		_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
			return validation.IsISODate(strings.TrimSpace(fl.Field().String()))
		})
		_ = v.RegisterValidation("emailaddr", func(fl validator.FieldLevel) bool {
			return validation.IsEmail(strings.TrimSpace(fl.Field().String()))
		})
	})
}

// BindJSON decodes the request body into obj. On failure it writes a 400
// response and returns false.
func BindJSON(c *gin.Context, obj interface{}) bool {
	err := c.ShouldBindJSON(obj)
	if err == nil {
		return true
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		fields := make(map[string]string, len(fieldErrs))
		for _, fe := range fieldErrs {
			fields[fe.Field()] = formatValidationError(fe)
		}
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed").WithDetails(fields),
		))
		return false
	}

	if RespondTooLarge(c, err) {
		return false
	}

	message := "Invalid request format"
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		message = "Invalid value for field " + typeErr.Field
	}
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
		dto.NewErrorDetail(dto.ErrorCodeBadRequest, message).WithDetails(err.Error()),
	))
	return false
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "emailaddr":
		return e.Field() + " must be a valid email address"
	case "isodate":
		return e.Field() + " must be a date in yyyy-mm-dd format"
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}

// RespondTooLarge writes a 413 response when err comes from an oversized body
func RespondTooLarge(c *gin.Context, err error) bool {
	var tooLarge *http.MaxBytesError
	if !errors.As(err, &tooLarge) {
		return false
	}
	c.JSON(http.StatusRequestEntityTooLarge, dto.NewErrorResponse(
		dto.NewErrorDetail(dto.ErrorCodePayloadTooLarge, "Request body too large").
			WithDetails(map[string]int64{"limit": tooLarge.Limit}),
	))
	return true
}
