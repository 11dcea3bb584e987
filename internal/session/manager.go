// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-chem-crm/internal/docstore"
	"github.com/MKhiriev/go-chem-crm/internal/identity"
	"github.com/MKhiriev/go-chem-crm/internal/logger"
	"github.com/MKhiriev/go-chem-crm/models"
)

type manager struct {
	accounts identity.AccountClient
	profiles docstore.DocumentStore
	logger   *logger.Logger

	// notifyMu serializes observer deliveries so a subscriber's initial
	// snapshot is never reordered against a live transition.
	notifyMu sync.Mutex

	mu           sync.Mutex
	session      models.Session
	opInFlight   bool
	observers    map[int]func(models.Session)
	nextObserver int

	stopAccountFeed func()
	closeOnce       sync.Once
}

// NewManager constructs the session manager and attaches it to the identity
// adapter's account-change feed. The session starts initializing and leaves
// that state with the feed's first notification.
func NewManager(accounts identity.AccountClient, profiles docstore.DocumentStore, log *logger.Logger) (Manager, error) {
	log.Debug().Msg("creating session manager")

	m := &manager{
		accounts:  accounts,
		profiles:  profiles,
		logger:    log,
		session:   models.Session{Status: models.StatusInitializing},
		observers: make(map[int]func(models.Session)),
	}

	stop, err := accounts.OnAccountChanged(m.onAccountChanged)
	if err != nil {
		return nil, err
	}
	m.stopAccountFeed = stop

	return m, nil
}

// onAccountChanged applies an account-change notification to the session.
// An unverified account never yields a signed-in session: verification is
// checked here, on every notification, not only inside Login.
func (m *manager) onAccountChanged(account *models.Account) {
	next := models.Session{Status: models.StatusSignedOut}
	if account != nil && account.EmailVerified {
		next = models.Session{Account: account, Status: models.StatusSignedIn}
	}

	m.notifyMu.Lock()
	defer m.notifyMu.Unlock()

	m.mu.Lock()
	if sameSession(m.session, next) {
		m.mu.Unlock()
		return
	}
	m.session = next
	observers := make([]func(models.Session), 0, len(m.observers))
	for _, cb := range m.observers {
		observers = append(observers, cb)
	}
	m.mu.Unlock()

	for _, cb := range observers {
		cb(next)
	}
}

func sameSession(a, b models.Session) bool {
	if a.Status != b.Status {
		return false
	}
	if (a.Account == nil) != (b.Account == nil) {
		return false
	}
	return a.Account == nil || *a.Account == *b.Account
}

// Current implements [Manager].
func (m *manager) Current() models.Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session
}

// Subscribe implements [Manager].
func (m *manager) Subscribe(cb func(models.Session)) (stop func()) {
	m.notifyMu.Lock()

	m.mu.Lock()
	id := m.nextObserver
	m.nextObserver++
	m.observers[id] = cb
	snapshot := m.session
	m.mu.Unlock()

	cb(snapshot)
	m.notifyMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			m.mu.Lock()
			delete(m.observers, id)
			m.mu.Unlock()
		})
	}
}

// Login implements [Manager].
func (m *manager) Login(ctx context.Context, email, password string) error {
	if err := m.beginOp(); err != nil {
		return err
	}
	defer m.endOp()

	log := logger.FromContext(ctx)
	email = normalizeEmail(email)

	account, err := m.accounts.SignIn(ctx, email, password)
	if err != nil {
		log.Warn().Err(err).Str("func", "*manager.Login").Msg("sign-in rejected")
		return mapProviderError(err)
	}

	if !account.EmailVerified {
		// Re-send the verification link, then drop the credential: the
		// session must not stay bound to an unverified account.
		if err = m.accounts.SendVerificationEmail(ctx); err != nil {
			log.Warn().Err(err).Str("func", "*manager.Login").Msg("could not re-send verification email")
		}
		if err = m.accounts.SignOut(ctx); err != nil {
			log.Warn().Err(err).Str("func", "*manager.Login").Msg("remote sign-out after unverified login failed")
		}
		return ErrEmailNotVerified
	}

	err = m.profiles.Upsert(ctx, models.ProfilesCollection, account.ID, map[string]any{
		models.ProfileFieldLastLogin: nowRFC3339(),
		models.ProfileFieldVerified:  true,
	}, true)
	if err != nil {
		log.Err(err).Str("func", "*manager.Login").Msg("profile update failed, reverting sign-in")
		if signOutErr := m.accounts.SignOut(ctx); signOutErr != nil {
			log.Warn().Err(signOutErr).Str("func", "*manager.Login").Msg("remote sign-out after profile failure failed")
		}
		return ErrUnknown
	}

	log.Info().Str("account_id", account.ID).Msg("login successful")
	return nil
}

// Signup implements [Manager].
func (m *manager) Signup(ctx context.Context, email, password, displayName string) error {
	if err := m.beginOp(); err != nil {
		return err
	}
	defer m.endOp()

	log := logger.FromContext(ctx)
	email = normalizeEmail(email)

	account, err := m.accounts.SignUp(ctx, email, password)
	if err != nil {
		log.Warn().Err(err).Str("func", "*manager.Signup").Msg("sign-up rejected")
		return mapProviderError(err)
	}

	if err = m.finishSignup(ctx, account, displayName); err != nil {
		// The account exists but is half set up; drop the credential so the
		// session does not stay bound to it.
		if signOutErr := m.accounts.SignOut(ctx); signOutErr != nil {
			log.Warn().Err(signOutErr).Str("func", "*manager.Signup").Msg("remote sign-out after failed signup step failed")
		}
		return err
	}

	// Sign back out: the account verifies its email and logs in explicitly.
	if err = m.accounts.SignOut(ctx); err != nil {
		log.Warn().Err(err).Str("func", "*manager.Signup").Msg("remote sign-out after signup failed")
	}

	log.Info().Str("account_id", account.ID).Msg("signup successful, verification email sent")
	return nil
}

func (m *manager) finishSignup(ctx context.Context, account models.Account, displayName string) error {
	log := logger.FromContext(ctx)

	if displayName != "" {
		if err := m.accounts.SetDisplayName(ctx, displayName); err != nil {
			log.Warn().Err(err).Str("func", "*manager.finishSignup").Msg("setting display name failed")
			return mapProviderError(err)
		}
	}

	if err := m.accounts.SendVerificationEmail(ctx); err != nil {
		log.Warn().Err(err).Str("func", "*manager.finishSignup").Msg("sending verification email failed")
		return mapProviderError(err)
	}

	err := m.profiles.Upsert(ctx, models.ProfilesCollection, account.ID, map[string]any{
		models.ProfileFieldEmail:       account.Email,
		models.ProfileFieldDisplayName: displayName,
		models.ProfileFieldVerified:    false,
		models.ProfileFieldCreatedAt:   nowRFC3339(),
	}, false)
	if err != nil {
		log.Err(err).Str("func", "*manager.finishSignup").Msg("creating profile document failed")
		return ErrUnknown
	}

	return nil
}

// Logout implements [Manager].
func (m *manager) Logout(ctx context.Context) error {
	if err := m.beginOp(); err != nil {
		return err
	}
	defer m.endOp()

	log := logger.FromContext(ctx)

	// Remote revocation is best effort. The identity adapter clears its
	// local credential either way, so the session always lands signed out.
	if err := m.accounts.SignOut(ctx); err != nil {
		log.Warn().Err(err).Str("func", "*manager.Logout").Msg("remote sign-out failed, local session cleared anyway")
	}

	return nil
}

// ForgotPassword implements [Manager].
func (m *manager) ForgotPassword(ctx context.Context, email string) error {
	if err := m.beginOp(); err != nil {
		return err
	}
	defer m.endOp()

	log := logger.FromContext(ctx)
	email = normalizeEmail(email)

	// Consult our own profile records first. An unknown email never reaches
	// the provider.
	profiles, err := m.profiles.Query(ctx, models.ProfilesCollection, models.ProfileFieldEmail, email)
	if err != nil {
		log.Err(err).Str("func", "*manager.ForgotPassword").Msg("profile lookup failed")
		return ErrUnknown
	}
	if len(profiles) == 0 {
		return ErrEmailNotFound
	}

	if err = m.accounts.SendPasswordReset(ctx, email); err != nil {
		log.Warn().Err(err).Str("func", "*manager.ForgotPassword").Msg("sending reset email failed")
		return mapResetError(err)
	}

	return nil
}

// ChangePassword implements [Manager].
func (m *manager) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	if err := m.beginOp(); err != nil {
		return err
	}
	defer m.endOp()

	log := logger.FromContext(ctx)

	snapshot := m.Current()
	if !snapshot.SignedIn() {
		return ErrNotAuthenticated
	}

	if err := m.accounts.Reauthenticate(ctx, snapshot.Account.Email, currentPassword); err != nil {
		log.Warn().Err(err).Str("func", "*manager.ChangePassword").Msg("reauthentication failed")
		mapped := mapProviderError(err)
		// Only a rejected credential means the current password was wrong;
		// every other failure keeps its own meaning, including ErrUnknown
		// for transport faults.
		if mapped == ErrInvalidCredential {
			return ErrWrongPassword
		}
		return mapped
	}

	if err := m.accounts.UpdatePassword(ctx, newPassword); err != nil {
		log.Err(err).Str("func", "*manager.ChangePassword").Msg("password update failed")
		return mapProviderError(err)
	}

	// Only the change timestamp is mirrored. Credentials never touch the
	// document store.
	err := m.profiles.Upsert(ctx, models.ProfilesCollection, snapshot.Account.ID, map[string]any{
		models.ProfileFieldPasswordChangedAt: nowRFC3339(),
	}, true)
	if err != nil {
		// The password did change; a stale mirror timestamp is not worth
		// confusing the user over.
		log.Warn().Err(err).Str("func", "*manager.ChangePassword").Msg("mirroring password change timestamp failed")
	}

	return nil
}

// Close implements [Manager].
func (m *manager) Close() {
	m.closeOnce.Do(func() {
		if m.stopAccountFeed != nil {
			m.stopAccountFeed()
		}

		m.mu.Lock()
		m.observers = make(map[int]func(models.Session))
		m.mu.Unlock()
	})
}

func (m *manager) beginOp() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.opInFlight {
		return ErrOperationInProgress
	}
	m.opInFlight = true
	return nil
}

func (m *manager) endOp() {
	m.mu.Lock()
	m.opInFlight = false
	m.mu.Unlock()
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func nowRFC3339() string {
	return time.Now().UTC().Format(time.RFC3339)
}
