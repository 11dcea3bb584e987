package identity

//go:generate mockgen -source=interfaces.go -destination=../mock/account_client_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-chem-crm/models"
)

// AccountClient is the contract for the remote account provider. One client
// instance holds at most one signed-in account at a time; methods that act on
// "the current account" (SignOut, SetDisplayName, SendVerificationEmail,
// UpdatePassword, Lookup) operate on the credential obtained by the last
// successful SignIn/SignUp and fail with [ErrNotSignedIn] when there is none.
type AccountClient interface {
	// SignIn authenticates email/password with the provider and binds the
	// returned credential to this client. The returned account carries the
	// current verification flag (re-read from the provider, not cached).
	SignIn(ctx context.Context, email, password string) (models.Account, error)

	// SignUp creates a new account, binds its credential to this client,
	// and returns it. Freshly created accounts are unverified.
	SignUp(ctx context.Context, email, password string) (models.Account, error)

	// SignOut revokes the held credential with the provider. Local
	// credential state is cleared and a nil account-change notification is
	// published even if the remote call fails; the remote error is still
	// returned so callers can log it.
	SignOut(ctx context.Context) error

	// SetDisplayName updates the display name of the current account.
	SetDisplayName(ctx context.Context, displayName string) error

	// SendVerificationEmail asks the provider to email a verification link
	// to the current account.
	SendVerificationEmail(ctx context.Context) error

	// SendPasswordReset asks the provider to email a password-reset link.
	// It does not require a signed-in account.
	SendPasswordReset(ctx context.Context, email string) error

	// Reauthenticate proves freshness of the current account's credential
	// by re-running password authentication. Required by the provider
	// before sensitive mutations such as UpdatePassword.
	Reauthenticate(ctx context.Context, email, currentPassword string) error

	// UpdatePassword changes the current account's password.
	UpdatePassword(ctx context.Context, newPassword string) error

	// Lookup re-reads the current account from the provider, refreshing
	// the verification flag and profile fields.
	Lookup(ctx context.Context) (models.Account, error)

	// OnAccountChanged registers the single account-change listener and
	// starts delivery. Notifications fire with the bound account (or nil
	// after sign-out) strictly in order from one dispatch goroutine; the
	// first notification reflects the state at subscription time. The
	// returned stop function releases the subscription exactly once; it is
	// safe to call multiple times. A second listener is rejected with
	// [ErrListenerExists].
	OnAccountChanged(cb func(account *models.Account)) (stop func(), err error)
}
