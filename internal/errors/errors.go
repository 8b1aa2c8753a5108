package errors

import (
	"errors"
)

var (
	ErrTooManyLoginAttempts = errors.New("too many failed login attempts")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrEmailAlreadyInUse    = errors.New("email already in use")
	ErrTokenExpired         = errors.New("token expired")
	ErrTokenInvalid         = errors.New("token invalid")
	ErrInvalidMfaCode       = errors.New("invalid mfa code")
	ErrMfaNotPending        = errors.New("no pending mfa factor")
	ErrAccountNotPending    = errors.New("account already verified")
	ErrAccountNotFound      = errors.New("account not found")
)
