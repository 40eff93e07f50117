package apierrors

import (
	"fmt"
	"net/http"
)

// Machine-readable error codes returned to API clients
const (
	CodeInvalidInput         = "INVALID_INPUT"
	CodeNotFound             = "NOT_FOUND"
	CodeUnauthorized         = "UNAUTHORIZED"
	CodeForbidden            = "FORBIDDEN"
	CodeInternalError        = "INTERNAL_ERROR"
	CodeCampaignNotFound     = "CAMPAIGN_NOT_FOUND"
	CodeTargetNotFound       = "TARGET_NOT_FOUND"
	CodeTemplateNotFound     = "TEMPLATE_NOT_FOUND"
	CodeSubscriptionRequired = "SUBSCRIPTION_REQUIRED"
	CodeInvalidFilter        = "INVALID_FILTER"
	CodeInvalidTemplate      = "INVALID_TEMPLATE"
	CodeInvalidSchedule      = "INVALID_SCHEDULE"
	CodeInvalidRunAfter      = "INVALID_RUN_AFTER"
	CodeTooManyTargets       = "TOO_MANY_TARGETS"
	CodeInvalidTransition    = "INVALID_TRANSITION"
	CodeCampaignLocked       = "CAMPAIGN_LOCKED"
	CodeInvalidTargetState   = "INVALID_TARGET_STATE"
	CodeInvalidSettings      = "INVALID_SETTINGS"
	CodeInvalidDay           = "INVALID_DAY"
	CodeInvalidSignature     = "INVALID_SIGNATURE"
	CodeProviderError        = "PROVIDER_ERROR"
)

// APIError is an error carrying the HTTP response it maps to. Err is logged,
// never returned to the client.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
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

func Forbidden(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusForbidden, Code: code, Message: message}
}

func NotFound(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusNotFound, Code: code, Message: message}
}

func Conflict(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusConflict, Code: code, Message: message}
}

func ServiceUnavailable(code, message string, err error) *APIError {
	return &APIError{StatusCode: http.StatusServiceUnavailable, Code: code, Message: message, Err: err}
}

// InternalError hides err behind a generic message
func InternalError(err error) *APIError {
	return &APIError{
		StatusCode: http.StatusInternalServerError,
		Code:       CodeInternalError,
		Message:    "An internal error occurred. Please try again later.",
		Err:        err,
	}
}
