package models

// Account represents one durable identity held by the remote account
// provider. It is the provider's view of a user; the local process never
// owns or mutates it directly.
type Account struct {
	// ID is the opaque stable identifier assigned by the provider at
	// sign-up. Immutable once created and never reused after deletion.
	ID string `json:"id"`

	// Email is the account's email address, lowercase-normalized for
	// comparisons and profile-store lookups.
	Email string `json:"email"`

	// EmailVerified reports whether the account's email address has been
	// confirmed via the provider's verification flow. Sessions may only
	// reach the signed-in state when this is true.
	EmailVerified bool `json:"email_verified"`

	// DisplayName is the optional human-readable name attached to the
	// account. Safe to show in UI.
	DisplayName string `json:"display_name,omitempty"`
}
