package session

import (
	"fmt"
	"testing"

	"github.com/MKhiriev/go-chem-crm/internal/identity"
	"github.com/stretchr/testify/assert"
)

func Test_mapProviderError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "nil passes through", err: nil, want: nil},
		{name: "invalid email", err: &identity.ProviderError{Code: identity.CodeInvalidEmail}, want: ErrInvalidEmail},
		{name: "email not found", err: &identity.ProviderError{Code: identity.CodeEmailNotFound}, want: ErrUserNotFound},
		{name: "invalid password", err: &identity.ProviderError{Code: identity.CodeInvalidPassword}, want: ErrWrongPassword},
		{name: "invalid login credentials", err: &identity.ProviderError{Code: identity.CodeInvalidLoginCredentials}, want: ErrInvalidCredential},
		{name: "user disabled", err: &identity.ProviderError{Code: identity.CodeUserDisabled}, want: ErrUserDisabled},
		{name: "too many attempts", err: &identity.ProviderError{Code: identity.CodeTooManyAttempts}, want: ErrTooManyRequests},
		{name: "email exists", err: &identity.ProviderError{Code: identity.CodeEmailExists}, want: ErrEmailAlreadyInUse},
		{name: "weak password", err: &identity.ProviderError{Code: identity.CodeWeakPassword}, want: ErrWeakPassword},
		{name: "operation not allowed", err: &identity.ProviderError{Code: identity.CodeOperationNotAllowed}, want: ErrOperationNotAllowed},
		{name: "unknown provider code", err: &identity.ProviderError{Code: "SOMETHING_NEW"}, want: ErrUnknown},
		{name: "transport failure", err: fmt.Errorf("%w: dial tcp refused", identity.ErrProviderUnavailable), want: ErrUnknown},
		{name: "not signed in", err: identity.ErrNotSignedIn, want: ErrNotAuthenticated},
		{name: "arbitrary error", err: fmt.Errorf("boom"), want: ErrUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapProviderError(tt.err)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
}

func Test_mapResetError(t *testing.T) {
	// In the reset flow an unknown email is its own business error, not a
	// failed login.
	err := mapResetError(&identity.ProviderError{Code: identity.CodeEmailNotFound})
	assert.ErrorIs(t, err, ErrEmailNotFound)

	err = mapResetError(&identity.ProviderError{Code: identity.CodeTooManyAttempts})
	assert.ErrorIs(t, err, ErrTooManyRequests)
}
