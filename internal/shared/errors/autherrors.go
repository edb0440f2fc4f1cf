package errors

import (
	stderrors "errors"
	"net/http"
)

// Identity-token specific error types
const (
	ErrorTypeTokenExpired ErrorType = "token_expired"
	ErrorTypeTokenInvalid ErrorType = "token_invalid"
)

// AuthError represents identity verification errors.
type AuthError struct {
	*AppError
	// ShouldLog is false for expected failures such as an expired token.
	ShouldLog bool
}

// Error implements the error interface
func (e *AuthError) Error() string {
	return e.AppError.Error()
}

// Unwrap allows errors.Is and errors.As to work correctly
func (e *AuthError) Unwrap() error {
	return e.AppError
}

// NewTokenExpiredError is returned when the identity token is past its expiry.
func NewTokenExpiredError() *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeTokenExpired,
			Message: "identity token has expired",
			Code:    http.StatusUnauthorized,
		},
		ShouldLog: false,
	}
}

// NewTokenInvalidError is returned when the identity token cannot be verified.
func NewTokenInvalidError(details ...string) *AuthError {
	e := newAppError(ErrorTypeTokenInvalid, http.StatusUnauthorized, "identity token is invalid", details)
	return &AuthError{
		AppError:  e,
		ShouldLog: true,
	}
}

// IsAuthError checks if the error is an AuthError
func IsAuthError(err error) bool {
	var authErr *AuthError
	return stderrors.As(err, &authErr)
}

// GetAuthError extracts AuthError from error
func GetAuthError(err error) *AuthError {
	var authErr *AuthError
	if stderrors.As(err, &authErr) {
		return authErr
	}
	return nil
}
