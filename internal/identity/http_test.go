package identity

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-chem-crm/internal/config"
	"github.com/MKhiriev/go-chem-crm/internal/logger"
	"github.com/MKhiriev/go-chem-crm/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProvider is an in-process stand-in for the account provider REST API.
type fakeProvider struct {
	t *testing.T

	mu       sync.Mutex
	requests []capturedRequest

	signInErr  string // provider code to fail signInWithPassword with
	signUpErr  string
	signOutErr string
	lookupUser lookupUser
}

type capturedRequest struct {
	path   string
	apiKey string
	body   map[string]any
}

func (f *fakeProvider) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)

		f.mu.Lock()
		f.requests = append(f.requests, capturedRequest{
			path:   r.URL.Path,
			apiKey: r.URL.Query().Get("key"),
			body:   body,
		})
		f.mu.Unlock()

		switch r.URL.Path {
		case "/accounts:signInWithPassword":
			if f.signInErr != "" {
				writeProviderError(w, http.StatusBadRequest, f.signInErr)
				return
			}
			writeJSON(w, credentialsResponse{
				LocalID: f.lookupUser.LocalID,
				Email:   f.lookupUser.Email,
				IDToken: signedTestToken(f.t, f.lookupUser.LocalID, time.Now().Add(time.Hour)),
			})
		case "/accounts:signUp":
			if f.signUpErr != "" {
				writeProviderError(w, http.StatusBadRequest, f.signUpErr)
				return
			}
			writeJSON(w, credentialsResponse{
				LocalID: f.lookupUser.LocalID,
				Email:   f.lookupUser.Email,
				IDToken: signedTestToken(f.t, f.lookupUser.LocalID, time.Now().Add(time.Hour)),
			})
		case "/accounts:signOut":
			if f.signOutErr != "" {
				writeProviderError(w, http.StatusBadRequest, f.signOutErr)
				return
			}
			writeJSON(w, map[string]any{})
		case "/accounts:lookup":
			writeJSON(w, lookupResponse{Users: []lookupUser{f.lookupUser}})
		case "/accounts:sendOobCode", "/accounts:update":
			writeJSON(w, map[string]any{})
		default:
			http.NotFound(w, r)
		}
	})
}

func (f *fakeProvider) captured() []capturedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]capturedRequest(nil), f.requests...)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func writeProviderError(w http.ResponseWriter, status int, code string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]any{"message": code},
	})
}

func signedTestToken(t *testing.T, subject string, expiresAt time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func newTestClient(t *testing.T, provider *fakeProvider) AccountClient {
	t.Helper()

	server := httptest.NewServer(provider.handler())
	t.Cleanup(server.Close)

	client, err := NewHTTPAccountClient(
		config.ClientIdentity{
			BaseURL:        server.URL,
			APIKey:         "test-api-key",
			RequestTimeout: 5 * time.Second,
		},
		config.ClientWorkers{AccountRefreshInterval: time.Hour},
		logger.Nop(),
	)
	require.NoError(t, err)
	return client
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "full url kept", raw: "https://identity.example.com/v1", want: "https://identity.example.com/v1"},
		{name: "scheme defaulted", raw: "identity.example.com", want: "https://identity.example.com"},
		{name: "trailing slash trimmed", raw: "https://identity.example.com/", want: "https://identity.example.com"},
		{name: "empty rejected", raw: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSignIn_ReturnsAccountWithFreshVerificationFlag(t *testing.T) {
	provider := &fakeProvider{
		t: t,
		lookupUser: lookupUser{
			LocalID:       "uid-1",
			Email:         "chemist@example.com",
			DisplayName:   "Chemist",
			EmailVerified: true,
		},
	}
	client := newTestClient(t, provider)

	account, err := client.SignIn(context.Background(), "Chemist@Example.com ", "secret")

	require.NoError(t, err)
	assert.Equal(t, "uid-1", account.ID)
	assert.Equal(t, "chemist@example.com", account.Email)
	assert.True(t, account.EmailVerified, "verification flag must come from lookup")

	requests := provider.captured()
	require.Len(t, requests, 2)
	assert.Equal(t, "/accounts:signInWithPassword", requests[0].path)
	assert.Equal(t, "/accounts:lookup", requests[1].path)
	assert.Equal(t, "test-api-key", requests[0].apiKey)
	assert.Equal(t, "chemist@example.com", requests[0].body["email"], "email must be normalised before sending")
}

func TestSignIn_ProviderErrorCarriesCode(t *testing.T) {
	provider := &fakeProvider{t: t, signInErr: CodeInvalidPassword}
	client := newTestClient(t, provider)

	_, err := client.SignIn(context.Background(), "chemist@example.com", "wrong")

	require.Error(t, err)
	assert.True(t, IsProviderCode(err, CodeInvalidPassword))
}

func TestSignIn_TransportFailureIsProviderUnavailable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close() // refuse all connections

	client, err := NewHTTPAccountClient(
		config.ClientIdentity{BaseURL: server.URL, APIKey: "k", RequestTimeout: time.Second},
		config.ClientWorkers{AccountRefreshInterval: time.Hour},
		logger.Nop(),
	)
	require.NoError(t, err)

	_, err = client.SignIn(context.Background(), "chemist@example.com", "secret")

	assert.ErrorIs(t, err, ErrProviderUnavailable)
}

func TestSignUp_AccountStartsUnverified(t *testing.T) {
	provider := &fakeProvider{
		t:          t,
		lookupUser: lookupUser{LocalID: "uid-2", Email: "new@example.com"},
	}
	client := newTestClient(t, provider)

	account, err := client.SignUp(context.Background(), "new@example.com", "secret123")

	require.NoError(t, err)
	assert.Equal(t, "uid-2", account.ID)
	assert.False(t, account.EmailVerified)

	// The fresh credential is bound: verification email needs no extra sign-in.
	require.NoError(t, client.SendVerificationEmail(context.Background()))

	requests := provider.captured()
	require.Len(t, requests, 2)
	assert.Equal(t, "/accounts:sendOobCode", requests[1].path)
	assert.Equal(t, "VERIFY_EMAIL", requests[1].body["requestType"])
	assert.NotEmpty(t, requests[1].body["idToken"])
}

func TestSignOut_ClearsLocalStateEvenWhenRemoteFails(t *testing.T) {
	provider := &fakeProvider{
		t:          t,
		signOutErr: "INVALID_ID_TOKEN",
		lookupUser: lookupUser{LocalID: "uid-1", Email: "chemist@example.com", EmailVerified: true},
	}
	client := newTestClient(t, provider)

	_, err := client.SignIn(context.Background(), "chemist@example.com", "secret")
	require.NoError(t, err)

	err = client.SignOut(context.Background())
	require.Error(t, err, "remote revocation failure is reported")

	// Local credential is gone regardless.
	_, err = client.Lookup(context.Background())
	assert.ErrorIs(t, err, ErrNotSignedIn)
}

func TestSignOut_WithoutCredentialIsNoOp(t *testing.T) {
	provider := &fakeProvider{t: t}
	client := newTestClient(t, provider)

	require.NoError(t, client.SignOut(context.Background()))
	assert.Empty(t, provider.captured(), "no remote call without a held credential")
}

func TestSendPasswordReset_NeedsNoCredential(t *testing.T) {
	provider := &fakeProvider{t: t}
	client := newTestClient(t, provider)

	err := client.SendPasswordReset(context.Background(), " Chemist@Example.com")

	require.NoError(t, err)
	requests := provider.captured()
	require.Len(t, requests, 1)
	assert.Equal(t, "/accounts:sendOobCode", requests[0].path)
	assert.Equal(t, "PASSWORD_RESET", requests[0].body["requestType"])
	assert.Equal(t, "chemist@example.com", requests[0].body["email"])
}

func TestUpdatePassword_RequiresSignIn(t *testing.T) {
	provider := &fakeProvider{t: t}
	client := newTestClient(t, provider)

	err := client.UpdatePassword(context.Background(), "new-secret")

	assert.ErrorIs(t, err, ErrNotSignedIn)
	assert.Empty(t, provider.captured(), "no remote call without a held credential")
}

func TestReauthenticate_ThenUpdatePassword(t *testing.T) {
	provider := &fakeProvider{
		t:          t,
		lookupUser: lookupUser{LocalID: "uid-1", Email: "chemist@example.com", EmailVerified: true},
	}
	client := newTestClient(t, provider)

	_, err := client.SignIn(context.Background(), "chemist@example.com", "old-secret")
	require.NoError(t, err)

	require.NoError(t, client.Reauthenticate(context.Background(), "chemist@example.com", "old-secret"))
	require.NoError(t, client.UpdatePassword(context.Background(), "new-secret"))

	requests := provider.captured()
	last := requests[len(requests)-1]
	assert.Equal(t, "/accounts:update", last.path)
	assert.Equal(t, "new-secret", last.body["password"])
}

func TestOnAccountChanged_InitialStateAndOrder(t *testing.T) {
	provider := &fakeProvider{
		t:          t,
		lookupUser: lookupUser{LocalID: "uid-1", Email: "chemist@example.com", EmailVerified: true},
	}
	client := newTestClient(t, provider)

	notifications := make(chan *models.Account, 8)
	stop, err := client.OnAccountChanged(func(account *models.Account) {
		notifications <- account
	})
	require.NoError(t, err)
	defer stop()

	// First notification reflects the signed-out state at subscription time.
	assert.Nil(t, receiveAccount(t, notifications))

	_, err = client.SignIn(context.Background(), "chemist@example.com", "secret")
	require.NoError(t, err)

	signedIn := receiveAccount(t, notifications)
	require.NotNil(t, signedIn)
	assert.Equal(t, "uid-1", signedIn.ID)

	require.NoError(t, client.SignOut(context.Background()))
	assert.Nil(t, receiveAccount(t, notifications))
}

func TestOnAccountChanged_SecondListenerRejected(t *testing.T) {
	provider := &fakeProvider{t: t}
	client := newTestClient(t, provider)

	stop, err := client.OnAccountChanged(func(*models.Account) {})
	require.NoError(t, err)
	defer stop()

	_, err = client.OnAccountChanged(func(*models.Account) {})
	assert.ErrorIs(t, err, ErrListenerExists)
}

func TestOnAccountChanged_StopIsIdempotentAndReleasesSlot(t *testing.T) {
	provider := &fakeProvider{t: t}
	client := newTestClient(t, provider)

	stop, err := client.OnAccountChanged(func(*models.Account) {})
	require.NoError(t, err)

	stop()
	stop() // safe to call again

	stop2, err := client.OnAccountChanged(func(*models.Account) {})
	require.NoError(t, err, "slot must be free after stop")
	stop2()
}

func TestPublish_FullQueueConvergesOnNewestState(t *testing.T) {
	provider := &fakeProvider{t: t}
	client := newTestClient(t, provider).(*httpAccountClient)

	ch := make(chan *models.Account, notifyBuffer)
	client.mu.Lock()
	client.notifyCh = ch
	client.mu.Unlock()

	for i := 0; i < notifyBuffer; i++ {
		ch <- &models.Account{ID: "stale"}
	}

	// A sign-out arriving into a full queue must not be lost.
	client.publish(nil)

	var newest *models.Account
	seen := false
	for len(ch) > 0 {
		newest = <-ch
		seen = true
	}
	require.True(t, seen)
	assert.Nil(t, newest, "the latest state must be the last one delivered")
}

func TestMapHTTPError_NormalizesCodeSuffix(t *testing.T) {
	assert.Equal(t, CodeTooManyAttempts,
		normalizeProviderCode("TOO_MANY_ATTEMPTS_TRY_LATER : Too many attempts, try again later."))
	assert.Equal(t, CodeEmailNotFound, normalizeProviderCode(" EMAIL_NOT_FOUND "))
	assert.Equal(t, "", normalizeProviderCode(""))
}

func receiveAccount(t *testing.T, ch chan *models.Account) *models.Account {
	t.Helper()
	select {
	case account := <-ch:
		return account
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for account-change notification")
		return nil
	}
}
