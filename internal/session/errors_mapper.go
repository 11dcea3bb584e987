// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"errors"

	"github.com/MKhiriev/go-chem-crm/internal/identity"
)

// mapProviderError translates the identity adapter's error into a session business error
func mapProviderError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, identity.ErrProviderUnavailable) {
		return ErrUnknown
	}
	if errors.Is(err, identity.ErrNotSignedIn) {
		return ErrNotAuthenticated
	}

	var pe *identity.ProviderError
	if !errors.As(err, &pe) {
		return ErrUnknown
	}

	switch pe.Code {
	case identity.CodeInvalidEmail:
		return ErrInvalidEmail
	case identity.CodeEmailNotFound:
		return ErrUserNotFound
	case identity.CodeInvalidPassword:
		return ErrWrongPassword
	case identity.CodeInvalidLoginCredentials:
		return ErrInvalidCredential
	case identity.CodeUserDisabled:
		return ErrUserDisabled
	case identity.CodeTooManyAttempts:
		return ErrTooManyRequests
	case identity.CodeEmailExists:
		return ErrEmailAlreadyInUse
	case identity.CodeWeakPassword:
		return ErrWeakPassword
	case identity.CodeOperationNotAllowed:
		return ErrOperationNotAllowed
	}

	return ErrUnknown
}

// mapResetError is the password-reset variant of [mapProviderError]: the
// provider reporting an unknown email is surfaced as [ErrEmailNotFound], not
// as a login failure.
func mapResetError(err error) error {
	if identity.IsProviderCode(err, identity.CodeEmailNotFound) {
		return ErrEmailNotFound
	}
	return mapProviderError(err)
}
