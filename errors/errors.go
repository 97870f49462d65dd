package errors

import (
	"fmt"
	"net/http"

	"github.com/rebirthstudio/portfolio-backend/pkg/contactform"
)

type ErrorType string

const (
	ValidationError    ErrorType = "VALIDATION_ERROR"
	ConfigurationError ErrorType = "CONFIGURATION_ERROR"
	DeliveryError      ErrorType = "DELIVERY_ERROR"
	NotFoundError      ErrorType = "NOT_FOUND"
	ServerError        ErrorType = "SERVER_ERROR"
)

// Failure kinds reported by the contact endpoint. They travel in AppError.Code.
const (
	CodeServiceNotConfigured = "service_not_configured"
	CodeMissingFields        = contactform.KindMissingFields
	CodeInvalidNameLength    = contactform.KindInvalidNameLength
	CodeInvalidEmail         = contactform.KindInvalidEmail
	CodeInvalidMessageLength = contactform.KindInvalidMessageLength
	CodeDeliveryFailed       = "delivery_failed"
	CodeUnexpectedError      = "unexpected_error"
	CodeNotFound             = "not_found"
)

const (
	// MsgServiceNotConfigured is returned when the provider credential is missing.
	MsgServiceNotConfigured = "Email service not configured"
	// MsgSendFailed is the single user-facing text for delivery and internal failures.
	MsgSendFailed = "Failed to send message. Please try again later."
)

// AppError represents a structured application error
type AppError struct {
	Type       ErrorType         `json:"type"`
	Code       string            `json:"code"`
	Message    string            `json:"message"`
	Detail     string            `json:"detail,omitempty"`
	Fields     map[string]string `json:"fields,omitempty"`
	HTTPStatus int               `json:"-"`
	Raw        error             `json:"-"`
}

func (e *AppError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Raw
}

// GetHTTPStatus returns the status to answer with, falling back to the type's default.
func (e *AppError) GetHTTPStatus() int {
	if e.HTTPStatus != 0 {
		return e.HTTPStatus
	}
	return getHTTPStatus(e.Type)
}

// Wrap wraps a raw error with AppError context
func Wrap(err error, errType ErrorType, message string) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Type:       errType,
		Code:       defaultCode(errType),
		Message:    message,
		Detail:     err.Error(),
		HTTPStatus: getHTTPStatus(errType),
		Raw:        err,
	}
}

// ValidationFailed reports a user input error. fields maps each offending
// form field to the message the client should show next to it.
func ValidationFailed(code, message string, fields map[string]string) *AppError {
	return &AppError{
		Type:       ValidationError,
		Code:       code,
		Message:    message,
		Fields:     fields,
		HTTPStatus: http.StatusBadRequest,
	}
}

func ServiceNotConfigured(detail string) *AppError {
	return &AppError{
		Type:       ConfigurationError,
		Code:       CodeServiceNotConfigured,
		Message:    MsgServiceNotConfigured,
		Detail:     detail,
		HTTPStatus: http.StatusInternalServerError,
	}
}

// DeliveryFailed hides the provider error behind the generic message; the
// original is kept in Raw for logging.
func DeliveryFailed(err error) *AppError {
	if err == nil {
		return &AppError{Type: DeliveryError, Code: CodeDeliveryFailed, Message: MsgSendFailed, HTTPStatus: http.StatusInternalServerError}
	}
	return Wrap(err, DeliveryError, MsgSendFailed)
}

func Unexpected(err error) *AppError {
	if err == nil {
		return &AppError{Type: ServerError, Code: CodeUnexpectedError, Message: MsgSendFailed, HTTPStatus: http.StatusInternalServerError}
	}
	return Wrap(err, ServerError, MsgSendFailed)
}

func NotFound(entity string, id interface{}) *AppError {
	return &AppError{
		Type:       NotFoundError,
		Code:       CodeNotFound,
		Message:    fmt.Sprintf("%s not found", entity),
		Detail:     fmt.Sprintf("ID: %v", id),
		HTTPStatus: http.StatusNotFound,
	}
}

func getHTTPStatus(errType ErrorType) int {
	switch errType {
	case ValidationError:
		return http.StatusBadRequest
	case NotFoundError:
		return http.StatusNotFound
	case ConfigurationError, DeliveryError, ServerError:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

func defaultCode(errType ErrorType) string {
	switch errType {
	case ConfigurationError:
		return CodeServiceNotConfigured
	case DeliveryError:
		return CodeDeliveryFailed
	case NotFoundError:
		return CodeNotFound
	case ServerError:
		return CodeUnexpectedError
	default:
		return ""
	}
}
