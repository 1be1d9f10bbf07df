package apierrors

import (
	"fmt"
	"net/http"
)

// Machine-readable error codes
const (
	CodeInvalidInput       = "INVALID_INPUT"
	CodeValidationFailed   = "VALIDATION_FAILED"
	CodeNotFound           = "NOT_FOUND"
	CodeGiveawayNotFound   = "GIVEAWAY_NOT_FOUND"
	CodeAlreadyEntered     = "ALREADY_ENTERED"
	CodeGiveawayEnded      = "GIVEAWAY_ENDED"
	CodeJobNotFound        = "JOB_NOT_FOUND"
	CodeJobRunning         = "JOB_RUNNING"
	CodeInvalidTrigger     = "INVALID_TRIGGER"
	CodeNotConfigured      = "SESSION_NOT_CONFIGURED"
	CodeSessionExpired     = "SESSION_EXPIRED"
	CodeSiteRateLimited    = "SITE_RATE_LIMITED"
	CodeSiteUnavailable    = "SITE_UNAVAILABLE"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeForbidden          = "FORBIDDEN"
	CodeInternalError      = "INTERNAL_ERROR"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
)

// APIError is an error with the HTTP status and code it is reported with
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

func BadRequest(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusBadRequest, Code: code, Message: message}
}

func Unauthorized(message string) *APIError {
	return &APIError{StatusCode: http.StatusUnauthorized, Code: CodeUnauthorized, Message: message}
}

func Forbidden(message string) *APIError {
	return &APIError{StatusCode: http.StatusForbidden, Code: CodeForbidden, Message: message}
}

func NotFound(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusNotFound, Code: code, Message: message}
}

func Conflict(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusConflict, Code: code, Message: message}
}

// TooManyRequests is returned when the upstream site throttles us
func TooManyRequests(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusTooManyRequests, Code: code, Message: message}
}

// BadGateway reports an upstream failure without exposing its details
func BadGateway(code, message string, err error) *APIError {
	return &APIError{StatusCode: http.StatusBadGateway, Code: code, Message: message, Err: err}
}

func ServiceUnavailable(code, message string, err error) *APIError {
	return &APIError{StatusCode: http.StatusServiceUnavailable, Code: code, Message: message, Err: err}
}

// InternalError wraps err behind a sanitized message
func InternalError(err error) *APIError {
	return &APIError{
		StatusCode: http.StatusInternalServerError,
		Code:       CodeInternalError,
		Message:    "An internal error occurred. Please try again later.",
		Err:        err,
	}
}
