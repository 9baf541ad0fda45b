package errors

import (
	"errors"
	"fmt"
)

// Common error types for the Axis Learning server
var (
	// User errors
	ErrUserNotFound = errors.New("user not found")
	ErrEmailExists  = errors.New("email already registered")

	// Session errors
	ErrNoSession       = errors.New("no session")
	ErrNoSigningSecret = errors.New("session signing secret is not configured")
	ErrProviderDenied  = errors.New("identity provider denied sign-in")
	ErrSignInDenied    = errors.New("sign-in denied")

	// General errors
	ErrNotFound = errors.New("not found")
	ErrInternal = errors.New("internal error")
)

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
