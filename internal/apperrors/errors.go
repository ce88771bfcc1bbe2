package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInsufficientFunds indicates a debit would drive an account balance negative.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrConflict indicates the resource is not in a state that permits the operation.
var ErrConflict = errors.New("resource state conflict")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the authenticated user may not perform the operation.
var ErrForbidden = errors.New("forbidden")

// ErrInvariantViolation indicates the stored balance diverged from the balance
// recomputed from transaction history. It is surfaced for manual
// reconciliation and must never be silently corrected.
var ErrInvariantViolation = errors.New("ledger invariant violation")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")

// ErrRefreshTokenExpired indicates the stored refresh token is past its expiry.
var ErrRefreshTokenExpired = errors.New("refresh token expired")

// AppError carries an HTTP status code alongside a message and an optional
// wrapped cause, for handlers that map service errors onto responses.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError wrapping an underlying cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func NewBadRequestError(message string) *AppError {
	return &AppError{Code: 400, Message: message, Err: ErrValidation}
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{Code: 401, Message: message, Err: ErrUnauthorized}
}

func NewInternalServerError(message string) *AppError {
	return &AppError{Code: 500, Message: message, Err: ErrInternal}
}

func NewGatewayTimeoutError(message string) *AppError {
	return &AppError{Code: 504, Message: message, Err: ErrInternal}
}
