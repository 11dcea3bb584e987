// Package identity is the client-side adapter for the remote account
// provider's REST API. It owns the provider credential state (ID token and
// the account snapshot derived from it) and publishes account-change
// notifications to a single subscriber, strictly in order.
//
// Provider failures are surfaced as [*ProviderError] values carrying the
// provider's string error code; transport failures are wrapped
// [ErrProviderUnavailable]. Callers are expected to translate both into
// their own closed error sets.
package identity
