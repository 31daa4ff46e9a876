package utils

import (
	"errors"
	"fmt"
	"net/http"

	"islamicdashboard/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Error codes carried in the "error" field of failure envelopes.
const (
	CodeValidation         = "validation_error"
	CodeNotFound           = "not_found"
	CodeInvalidCredentials = "invalid_credentials"
	CodeInternal           = "internal_error"
	CodeRateLimited        = "rate_limited"
	CodeMaintenance        = "maintenance_mode"
)

const genericInternalMessage = "Something went wrong"

// AppError is an error that knows how it should be reported over HTTP.
type AppError struct {
	Status  int
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

func ValidationError(message string) *AppError {
	return &AppError{Status: http.StatusBadRequest, Code: CodeValidation, Message: message}
}

func NotFoundError(message string) *AppError {
	return &AppError{Status: http.StatusNotFound, Code: CodeNotFound, Message: message}
}

// InvalidCredentials never says which check failed.
func InvalidCredentials() *AppError {
	return &AppError{Status: http.StatusUnauthorized, Code: CodeInvalidCredentials, Message: "Invalid credentials"}
}

func RateLimited() *AppError {
	return &AppError{Status: http.StatusTooManyRequests, Code: CodeRateLimited, Message: "Too many requests from this IP, please try again later."}
}

func Maintenance() *AppError {
	return &AppError{Status: http.StatusServiceUnavailable, Code: CodeMaintenance, Message: "The service is under maintenance, please try again later."}
}

func InternalError(message string, err error) *AppError {
	return &AppError{Status: http.StatusInternalServerError, Code: CodeInternal, Message: message, Err: err}
}

// ErrorResponse is the failure half of the response envelope.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				GetLogger().Error("Unhandled panic",
					zap.Any("error", rec),
					zap.String("path", c.Request.URL.Path))

				JSONError(c, InternalError("Internal Server Error", fmt.Errorf("panic: %v", rec)))
				c.Abort()
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error envelope for any error.
func JSONError(c *gin.Context, err error) {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		appErr = InternalError("Internal Server Error", err)
	}

	message := appErr.Message
	if appErr.Code == CodeInternal {
		GetLogger().Error(appErr.Message, zap.Error(appErr.Err), zap.String("path", c.Request.URL.Path))
		if config.IsProduction() {
			message = genericInternalMessage
		} else if appErr.Err != nil {
			message = appErr.Err.Error()
		}
	} else {
		GetLogger().Warn(appErr.Message, zap.Int("status", appErr.Status), zap.String("path", c.Request.URL.Path))
	}

	c.JSON(appErr.Status, ErrorResponse{Success: false, Error: appErr.Code, Message: message})
}
