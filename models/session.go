package models

// SessionStatus enumerates the states of the local session lifecycle.
type SessionStatus int

const (
	// StatusInitializing is the state between process start and the first
	// account-change notification from the account provider.
	StatusInitializing SessionStatus = iota

	// StatusSignedOut means no account is bound to the session.
	StatusSignedOut

	// StatusSignedIn means a verified account is bound to the session.
	StatusSignedIn
)

// String returns a short label for the status, suitable for logs.
func (s SessionStatus) String() string {
	switch s {
	case StatusInitializing:
		return "initializing"
	case StatusSignedOut:
		return "signedOut"
	case StatusSignedIn:
		return "signedIn"
	default:
		return "unknown"
	}
}

// Session is the local, in-process binding to zero-or-one Account.
//
// Invariant: Status == StatusSignedIn implies Account != nil and
// Account.EmailVerified == true. The session manager is the only writer;
// consumers must treat received values as read-only snapshots.
type Session struct {
	// Account is the currently bound account, nil unless signed in.
	Account *Account

	// Status is the current lifecycle state of the session.
	Status SessionStatus
}

// SignedIn reports whether the session currently binds a verified account.
func (s Session) SignedIn() bool {
	return s.Status == StatusSignedIn && s.Account != nil
}
