package session

//go:generate mockgen -source=interfaces.go -destination=../mock/session_manager_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-chem-crm/models"
)

// Manager drives the authentication lifecycle. At most one operation runs at
// a time; starting a second one while the first is in flight fails with
// [ErrOperationInProgress]. All errors returned by operations belong to this
// package's closed error set.
type Manager interface {
	// Current returns a snapshot of the session.
	Current() models.Session

	// Subscribe registers a session observer. The callback receives the
	// current session immediately, then every subsequent transition in
	// order. The returned stop function removes the observer and is safe
	// to call more than once.
	Subscribe(cb func(models.Session)) (stop func())

	// Login authenticates email/password. An unverified account is sent a
	// fresh verification email, signed out remotely, and reported as
	// [ErrEmailNotVerified]; the session never reaches signed-in. On
	// verified login the profile's last-login timestamp is recorded.
	// The signed-in transition arrives through the identity adapter's
	// notification feed, which can lag a successful return briefly; react
	// to it via [Manager.Subscribe] rather than polling Current.
	Login(ctx context.Context, email, password string) error

	// Signup creates an account, sends the verification email, writes the
	// profile document (unverified), and signs back out: the account must
	// verify and log in explicitly. The session never reaches signed-in.
	Signup(ctx context.Context, email, password, displayName string) error

	// Logout signs out. Local session state always clears, even if remote
	// revocation fails; a logout with no signed-in session is a no-op.
	Logout(ctx context.Context) error

	// ForgotPassword sends a password-reset email. The profile store is
	// consulted first: an email with no profile fails with
	// [ErrEmailNotFound] and the provider is never contacted.
	ForgotPassword(ctx context.Context, email string) error

	// ChangePassword re-authenticates with the current password and sets
	// the new one. Requires a signed-in session. Only the change timestamp
	// is mirrored to the profile; credentials are never written to storage.
	ChangePassword(ctx context.Context, currentPassword, newPassword string) error

	// Close detaches from the identity adapter and stops notifying
	// observers.
	Close()
}
