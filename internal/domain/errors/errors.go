package errors

import (
	"errors"
	"net/http"
)

// Domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrKycNotVerified     = errors.New("kyc not verified")
	ErrAlreadyDecided     = errors.New("already decided")
	ErrInvalidTarget      = errors.New("invalid target")
	ErrStoreUnavailable   = errors.New("store unavailable")
	ErrRenderFailed       = errors.New("render failed")
)

// Error codes surfaced in the response envelope
const (
	CodeUnauthenticated    = "UNAUTHENTICATED"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeValidationFailed   = "VALIDATION_FAILED"
	CodeDuplicateEmail     = "DUPLICATE_EMAIL"
	CodeKycNotVerified     = "KYC_NOT_VERIFIED"
	CodeAlreadyDecided     = "ALREADY_DECIDED"
	CodeInvalidTarget      = "INVALID_TARGET"
	CodeNotFound           = "NOT_FOUND"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeRenderError        = "RENDER_ERROR"
	CodeStoreUnavailable   = "STORE_UNAVAILABLE"
	CodeInternal           = "INTERNAL"
)

// AppError represents an application error with HTTP status and stable code
type AppError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new app error
func NewAppError(status int, code, message string, err error) *AppError {
	return &AppError{
		Status:  status,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common error constructors

func NotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, CodeNotFound, message, ErrNotFound)
}

func BadRequest(message string) *AppError {
	return NewAppError(http.StatusBadRequest, CodeValidationFailed, message, ErrInvalidInput)
}

func Unauthenticated(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, CodeUnauthenticated, message, ErrUnauthenticated)
}

func Unauthorized(message string) *AppError {
	return NewAppError(http.StatusForbidden, CodeUnauthorized, message, ErrUnauthorized)
}

func InvalidCredentials() *AppError {
	return NewAppError(http.StatusUnauthorized, CodeInvalidCredentials, "invalid email or password", ErrInvalidCredentials)
}

func DuplicateEmail(message string) *AppError {
	return NewAppError(http.StatusConflict, CodeDuplicateEmail, message, ErrDuplicateEmail)
}

func KycNotVerified(message string) *AppError {
	return NewAppError(http.StatusForbidden, CodeKycNotVerified, message, ErrKycNotVerified)
}

func AlreadyDecided(message string) *AppError {
	return NewAppError(http.StatusConflict, CodeAlreadyDecided, message, ErrAlreadyDecided)
}

func InvalidTarget(message string) *AppError {
	return NewAppError(http.StatusBadRequest, CodeInvalidTarget, message, ErrInvalidTarget)
}

func RenderError(err error) *AppError {
	return NewAppError(http.StatusInternalServerError, CodeRenderError, "failed to render document", err)
}

func InternalError(err error) *AppError {
	return NewAppError(http.StatusInternalServerError, CodeInternal, "internal server error", err)
}
