package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// AppError represents a structured application error
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError
func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error with additional context, keeping the code of a wrapped AppError
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return &AppError{
			Code:    appErr.Code,
			Message: message,
			Cause:   err,
		}
	}
	return &AppError{
		Code:    CodeInternalError,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted additional context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WithCode adds an error code to an existing error
func WithCode(code string, err error) error {
	if err == nil {
		return nil
	}
	if appErr, ok := err.(*AppError); ok {
		return &AppError{
			Code:    code,
			Message: appErr.Message,
			Cause:   appErr.Cause,
		}
	}
	return &AppError{
		Code:    code,
		Message: err.Error(),
		Cause:   err,
	}
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr)
}

// GetCode returns the code of the outermost AppError, otherwise "UNKNOWN"
func GetCode(err error) string {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code
	}
	return "UNKNOWN"
}

// Predefined error codes
const (
	CodeConfigInvalid = "CONFIG_INVALID"
	CodeDatabaseError = "DATABASE_ERROR"
	CodeLoadError     = "LOAD_ERROR"
	CodeNotFound      = "NOT_FOUND"
	CodeInternalError = "INTERNAL_ERROR"
	CodeInvalidInput  = "INVALID_INPUT"
	CodeUnavailable   = "UNAVAILABLE"
)

// Common error constructors
func ConfigInvalid(message string) *AppError {
	return New(CodeConfigInvalid, message)
}

func DatabaseError(message string, cause error) *AppError {
	return &AppError{Code: CodeDatabaseError, Message: message, Cause: cause}
}

// LoadError reports a dataset that could not be read or failed schema checks.
func LoadError(source string, cause error) *AppError {
	return &AppError{
		Code:    CodeLoadError,
		Message: fmt.Sprintf("failed to load launch data from %s", source),
		Cause:   cause,
	}
}

func NotFound(resource string) *AppError {
	return New(CodeNotFound, fmt.Sprintf("%s not found", resource))
}

func InternalError(message string) *AppError {
	return New(CodeInternalError, message)
}

func InvalidInput(message string) *AppError {
	return New(CodeInvalidInput, message)
}

// IsLoadError reports whether err carries CodeLoadError anywhere in its chain.
func IsLoadError(err error) bool {
	return hasCode(err, CodeLoadError)
}

// IsInvalidInput reports whether err carries CodeInvalidInput anywhere in its chain.
func IsInvalidInput(err error) bool {
	return hasCode(err, CodeInvalidInput)
}

func hasCode(err error, code string) bool {
	for err != nil {
		if appErr, ok := err.(*AppError); ok && appErr.Code == code {
			return true
		}
		err = stderrors.Unwrap(err)
	}
	return false
}

// HTTPStatus maps an error to the status code the API responds with.
func HTTPStatus(err error) int {
	switch GetCode(err) {
	case CodeInvalidInput:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeUnavailable, CodeLoadError:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
