package identity

import (
	"errors"
	"fmt"
)

// Provider error codes as returned in the REST API error body. The set is
// open on the provider side; unrecognised codes pass through in
// [ProviderError.Code] untouched.
const (
	CodeEmailNotFound           = "EMAIL_NOT_FOUND"
	CodeInvalidPassword         = "INVALID_PASSWORD"
	CodeInvalidLoginCredentials = "INVALID_LOGIN_CREDENTIALS"
	CodeInvalidEmail            = "INVALID_EMAIL"
	CodeUserDisabled            = "USER_DISABLED"
	CodeTooManyAttempts         = "TOO_MANY_ATTEMPTS_TRY_LATER"
	CodeEmailExists             = "EMAIL_EXISTS"
	CodeWeakPassword            = "WEAK_PASSWORD"
	CodeOperationNotAllowed     = "OPERATION_NOT_ALLOWED"
)

var (
	// ErrProviderUnavailable wraps transport-level failures: DNS, refused
	// connections, timeouts. The provider was never reached or never
	// answered; the operation may be re-issued by the caller.
	ErrProviderUnavailable = errors.New("account provider unavailable")

	// ErrNotSignedIn is returned by operations that require a held ID
	// token when the adapter currently has none.
	ErrNotSignedIn = errors.New("no account is signed in")

	// ErrListenerExists is returned by OnAccountChanged when a listener is
	// already registered; the adapter supports exactly one subscriber.
	ErrListenerExists = errors.New("account-change listener already registered")
)

// ProviderError is a coded failure reported by the account provider itself
// (as opposed to a transport failure reaching it).
type ProviderError struct {
	// Code is the provider's string error code, e.g. "EMAIL_NOT_FOUND".
	Code string

	// HTTPStatus is the HTTP status of the failed response.
	HTTPStatus int
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider error %s (http %d)", e.Code, e.HTTPStatus)
}

// IsProviderCode reports whether err is a [*ProviderError] carrying the
// given code.
func IsProviderCode(err error, code string) bool {
	var pe *ProviderError
	if !errors.As(err, &pe) {
		return false
	}
	return pe.Code == code
}
