package errors

import (
	"errors"
	"net/http"
)

// Domain errors
var (
	ErrNotFound            = errors.New("resource not found")
	ErrAlreadyExists       = errors.New("resource already exists")
	ErrInvalidInput        = errors.New("invalid input")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrAccountBlocked      = errors.New("account is blocked")
	ErrTaskAlreadyDone     = errors.New("task already completed today")
	ErrKYCNotApproved      = errors.New("kyc not approved")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrWithdrawalsDisabled = errors.New("withdrawals are disabled")
	ErrNoReferralBalance   = errors.New("no referral balance")
	ErrAlreadyProcessed    = errors.New("request already processed")
	ErrConflict            = errors.New("concurrent update conflict")
)

// AppError represents an application error with an HTTP status
type AppError struct {
	Code    int    `json:"code"`
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
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common error constructors
func NotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, message, ErrNotFound)
}

func BadRequest(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, ErrInvalidInput)
}

func Unauthorized(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, message, ErrUnauthorized)
}

func Forbidden(message string) *AppError {
	return NewAppError(http.StatusForbidden, message, ErrForbidden)
}

func InternalError(err error) *AppError {
	return NewAppError(http.StatusInternalServerError, "internal server error", err)
}

// StatusOf maps a domain error to its HTTP status. Unknown errors are
// treated as internal.
func StatusOf(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}

	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrAlreadyExists), errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrUnauthorized), errors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden), errors.Is(err, ErrAccountBlocked), errors.Is(err, ErrKYCNotApproved):
		return http.StatusForbidden
	case errors.Is(err, ErrInvalidInput),
		errors.Is(err, ErrTaskAlreadyDone),
		errors.Is(err, ErrInsufficientBalance),
		errors.Is(err, ErrWithdrawalsDisabled),
		errors.Is(err, ErrNoReferralBalance),
		errors.Is(err, ErrAlreadyProcessed):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
