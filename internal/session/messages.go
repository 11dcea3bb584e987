package session

import "errors"

// UserMessage renders a business error as text fit for the end user. Errors
// outside the package's closed set fall through to a generic message, so
// internal details never leak into the UI.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidEmail):
		return "Invalid email address format."
	case errors.Is(err, ErrUserNotFound):
		return "No account found with this email."
	case errors.Is(err, ErrWrongPassword):
		return "Incorrect password."
	case errors.Is(err, ErrInvalidCredential):
		return "Incorrect email or password."
	case errors.Is(err, ErrUserDisabled):
		return "This account has been disabled."
	case errors.Is(err, ErrTooManyRequests):
		return "Too many attempts. Please try again later."
	case errors.Is(err, ErrEmailAlreadyInUse):
		return "An account with this email already exists."
	case errors.Is(err, ErrWeakPassword):
		return "Password is too weak. Use at least 6 characters."
	case errors.Is(err, ErrOperationNotAllowed):
		return "This sign-in method is not enabled."
	case errors.Is(err, ErrEmailNotFound):
		return "Email not found."
	case errors.Is(err, ErrEmailNotVerified):
		return "Please verify your email before logging in. A new verification link has been sent."
	case errors.Is(err, ErrNotAuthenticated):
		return "You must be logged in to do that."
	case errors.Is(err, ErrOperationInProgress):
		return "Another operation is already in progress."
	default:
		return "Something went wrong. Please try again."
	}
}
