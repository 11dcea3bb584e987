package session

import "errors"

// The closed set of business errors auth operations resolve to. Every
// provider or storage failure is translated into one of these before it
// leaves the package; callers match with [errors.Is] and render text via
// [UserMessage].
var (
	ErrInvalidEmail        = errors.New("invalid email address")
	ErrUserNotFound        = errors.New("no account found for email")
	ErrWrongPassword       = errors.New("wrong password")
	ErrInvalidCredential   = errors.New("invalid email or password")
	ErrUserDisabled        = errors.New("account is disabled")
	ErrTooManyRequests     = errors.New("too many attempts")
	ErrEmailAlreadyInUse   = errors.New("email already in use")
	ErrWeakPassword        = errors.New("password is too weak")
	ErrOperationNotAllowed = errors.New("operation not allowed")

	// ErrEmailNotFound is returned by password reset when no profile exists
	// for the given email.
	ErrEmailNotFound = errors.New("email not found")

	// ErrEmailNotVerified is returned by login when the account exists and
	// the password is correct but the email has not been verified yet. The
	// session stays signed out.
	ErrEmailNotVerified = errors.New("email is not verified")

	// ErrNotAuthenticated is returned by operations that require a signed-in
	// session when there is none.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrOperationInProgress is returned when an auth operation is started
	// while another one is still in flight. Operations are never queued or
	// interleaved.
	ErrOperationInProgress = errors.New("another operation is in progress")

	// ErrUnknown covers transport failures and provider codes outside the
	// known set.
	ErrUnknown = errors.New("unexpected authentication error")
)
