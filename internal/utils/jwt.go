package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// IDTokenClaims is the subset of claims the client needs from a provider
// ID token: the account identifier and the expiry used to schedule refresh.
type IDTokenClaims struct {
	// AccountID is the "sub" claim — the provider-assigned account ID.
	AccountID string

	// ExpiresAt is the "exp" claim. The token must be refreshed before
	// this instant.
	ExpiresAt time.Time
}

// ParseIDTokenClaims decodes the claims of a provider-issued ID token
// WITHOUT verifying its signature. The token arrives over TLS directly from
// the provider that minted it, and the client holds no verification keys;
// signature checks are the provider's job on every subsequent request.
//
// Returns an error if the token is malformed or missing the sub/exp claims.
func ParseIDTokenClaims(idToken string) (IDTokenClaims, error) {
	var claims jwt.RegisteredClaims

	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(idToken, &claims); err != nil {
		return IDTokenClaims{}, fmt.Errorf("error parsing ID token: %w", err)
	}

	if claims.Subject == "" {
		return IDTokenClaims{}, fmt.Errorf("ID token has no subject claim")
	}
	if claims.ExpiresAt == nil {
		return IDTokenClaims{}, fmt.Errorf("ID token has no expiry claim")
	}

	return IDTokenClaims{
		AccountID: claims.Subject,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
