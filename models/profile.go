package models

// ProfilesCollection is the document-store collection holding one
// ProfileRecord per account, keyed by the account ID.
const ProfilesCollection = "users"

// ProfileRecord field names as stored in the document store. The record is a
// denormalized mirror of Account data plus bookkeeping timestamps.
//
// Raw credentials are never mirrored here; the account provider is the only
// credential store. The profile keeps a boolean verification marker and a
// password-change timestamp instead.
const (
	ProfileFieldEmail             = "email"
	ProfileFieldDisplayName       = "display_name"
	ProfileFieldVerified          = "verified"
	ProfileFieldCreatedAt         = "created_at"
	ProfileFieldLastLogin         = "last_login"
	ProfileFieldPasswordChangedAt = "password_changed_at"

	// Back-office fields carried on staff profiles.
	ProfileFieldRole   = "role"
	ProfileFieldStatus = "status"
)
