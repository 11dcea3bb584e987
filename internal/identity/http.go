package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-chem-crm/internal/config"
	"github.com/MKhiriev/go-chem-crm/internal/logger"
	"github.com/MKhiriev/go-chem-crm/internal/utils"
	"github.com/MKhiriev/go-chem-crm/internal/workers"
	"github.com/MKhiriev/go-chem-crm/models"
	"github.com/go-resty/resty/v2"
)

// notifyBuffer bounds the account-change queue between the adapter and its
// dispatch goroutine. The single subscriber consumes notifications promptly;
// the buffer only absorbs short bursts.
const notifyBuffer = 64

type httpAccountClient struct {
	client          *utils.HTTPClient
	apiKey          string
	refreshInterval time.Duration
	logger          *logger.Logger

	mu             sync.Mutex
	idToken        string
	tokenExpiresAt time.Time
	account        *models.Account

	subscribed bool
	notifyCh   chan *models.Account

	watcher workers.Job
}

// NewHTTPAccountClient constructs an HTTP/REST implementation of
// [AccountClient]. It normalises and validates the base URL from
// identityCfg.BaseURL, configures the underlying HTTP client with the
// resolved base URL, the request timeout, and the project API key appended
// to every request.
//
// Returns an error if identityCfg.BaseURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPAccountClient(identityCfg config.ClientIdentity, workersCfg config.ClientWorkers, logger *logger.Logger) (AccountClient, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(identityCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid identity base url: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(identityCfg.RequestTimeout).
		SetQueryParam("key", identityCfg.APIKey)

	c := &httpAccountClient{
		client:          client,
		apiKey:          identityCfg.APIKey,
		refreshInterval: workersCfg.AccountRefreshInterval,
		logger:          logger,
	}
	c.watcher = workers.NewIntervalJob(c.refreshAccount)

	return c, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// ── wire types ───────────────────────────────────────────────────────────────

type credentialsRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type credentialsResponse struct {
	LocalID     string `json:"localId"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	IDToken     string `json:"idToken"`
}

type oobCodeRequest struct {
	RequestType string `json:"requestType"`
	IDToken     string `json:"idToken,omitempty"`
	Email       string `json:"email,omitempty"`
}

type accountUpdateRequest struct {
	IDToken           string `json:"idToken"`
	DisplayName       string `json:"displayName,omitempty"`
	Password          string `json:"password,omitempty"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type accountUpdateResponse struct {
	IDToken string `json:"idToken"`
}

type lookupRequest struct {
	IDToken string `json:"idToken"`
}

type lookupResponse struct {
	Users []lookupUser `json:"users"`
}

type lookupUser struct {
	LocalID       string `json:"localId"`
	Email         string `json:"email"`
	DisplayName   string `json:"displayName"`
	EmailVerified bool   `json:"emailVerified"`
}

type providerErrorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// ── operations ───────────────────────────────────────────────────────────────

// SignIn implements [AccountClient]. It authenticates with
// POST /accounts:signInWithPassword, then re-reads the account via lookup so
// the returned verification flag is current, binds the credential to this
// client, and publishes an account-change notification.
func (c *httpAccountClient) SignIn(ctx context.Context, email, password string) (models.Account, error) {
	var signedIn credentialsResponse
	err := c.post(ctx, "/accounts:signInWithPassword", credentialsRequest{
		Email:             strings.ToLower(strings.TrimSpace(email)),
		Password:          password,
		ReturnSecureToken: true,
	}, &signedIn)
	if err != nil {
		return models.Account{}, err
	}

	account, err := c.lookupWithToken(ctx, signedIn.IDToken)
	if err != nil {
		return models.Account{}, err
	}

	c.bindCredential(signedIn.IDToken, &account)
	return account, nil
}

// SignUp implements [AccountClient]. It creates the account with
// POST /accounts:signUp, binds the fresh (unverified) credential to this
// client, and publishes an account-change notification.
func (c *httpAccountClient) SignUp(ctx context.Context, email, password string) (models.Account, error) {
	var created credentialsResponse
	err := c.post(ctx, "/accounts:signUp", credentialsRequest{
		Email:             strings.ToLower(strings.TrimSpace(email)),
		Password:          password,
		ReturnSecureToken: true,
	}, &created)
	if err != nil {
		return models.Account{}, err
	}

	account := models.Account{
		ID:            created.LocalID,
		Email:         strings.ToLower(created.Email),
		EmailVerified: false,
	}

	c.bindCredential(created.IDToken, &account)
	return account, nil
}

// SignOut implements [AccountClient]. Local credential state is cleared and a
// nil notification is published unconditionally; the remote revocation error,
// if any, is returned for logging only.
func (c *httpAccountClient) SignOut(ctx context.Context) error {
	c.mu.Lock()
	token := c.idToken
	c.idToken = ""
	c.tokenExpiresAt = time.Time{}
	c.account = nil
	c.mu.Unlock()

	c.publish(nil)

	if token == "" {
		return nil
	}

	return c.post(ctx, "/accounts:signOut", lookupRequest{IDToken: token}, nil)
}

// SetDisplayName implements [AccountClient].
func (c *httpAccountClient) SetDisplayName(ctx context.Context, displayName string) error {
	token, account, err := c.currentCredential()
	if err != nil {
		return err
	}

	err = c.post(ctx, "/accounts:update", accountUpdateRequest{IDToken: token, DisplayName: displayName}, nil)
	if err != nil {
		return err
	}

	updated := *account
	updated.DisplayName = displayName
	c.setAccount(&updated)
	return nil
}

// SendVerificationEmail implements [AccountClient].
func (c *httpAccountClient) SendVerificationEmail(ctx context.Context) error {
	token, _, err := c.currentCredential()
	if err != nil {
		return err
	}

	return c.post(ctx, "/accounts:sendOobCode", oobCodeRequest{RequestType: "VERIFY_EMAIL", IDToken: token}, nil)
}

// SendPasswordReset implements [AccountClient].
func (c *httpAccountClient) SendPasswordReset(ctx context.Context, email string) error {
	return c.post(ctx, "/accounts:sendOobCode", oobCodeRequest{
		RequestType: "PASSWORD_RESET",
		Email:       strings.ToLower(strings.TrimSpace(email)),
	}, nil)
}

// Reauthenticate implements [AccountClient]. A successful re-authentication
// replaces the held ID token with the freshly minted one, which the provider
// requires for the sensitive mutation that follows.
func (c *httpAccountClient) Reauthenticate(ctx context.Context, email, currentPassword string) error {
	_, _, err := c.currentCredential()
	if err != nil {
		return err
	}

	var signedIn credentialsResponse
	err = c.post(ctx, "/accounts:signInWithPassword", credentialsRequest{
		Email:             strings.ToLower(strings.TrimSpace(email)),
		Password:          currentPassword,
		ReturnSecureToken: true,
	}, &signedIn)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.idToken = signedIn.IDToken
	c.tokenExpiresAt = tokenExpiry(signedIn.IDToken)
	c.mu.Unlock()

	return nil
}

// UpdatePassword implements [AccountClient]. The provider rotates the ID
// token on password change; the new token replaces the held one.
func (c *httpAccountClient) UpdatePassword(ctx context.Context, newPassword string) error {
	token, _, err := c.currentCredential()
	if err != nil {
		return err
	}

	var updated accountUpdateResponse
	err = c.post(ctx, "/accounts:update", accountUpdateRequest{
		IDToken:           token,
		Password:          newPassword,
		ReturnSecureToken: true,
	}, &updated)
	if err != nil {
		return err
	}

	if updated.IDToken != "" {
		c.mu.Lock()
		c.idToken = updated.IDToken
		c.tokenExpiresAt = tokenExpiry(updated.IDToken)
		c.mu.Unlock()
	}

	return nil
}

// Lookup implements [AccountClient].
func (c *httpAccountClient) Lookup(ctx context.Context) (models.Account, error) {
	token, _, err := c.currentCredential()
	if err != nil {
		return models.Account{}, err
	}

	return c.lookupWithToken(ctx, token)
}

func (c *httpAccountClient) lookupWithToken(ctx context.Context, token string) (models.Account, error) {
	var found lookupResponse
	if err := c.post(ctx, "/accounts:lookup", lookupRequest{IDToken: token}, &found); err != nil {
		return models.Account{}, err
	}
	if len(found.Users) == 0 {
		return models.Account{}, fmt.Errorf("lookup returned no account")
	}

	u := found.Users[0]
	return models.Account{
		ID:            u.LocalID,
		Email:         strings.ToLower(u.Email),
		EmailVerified: u.EmailVerified,
		DisplayName:   u.DisplayName,
	}, nil
}

// ── subscription ─────────────────────────────────────────────────────────────

// OnAccountChanged implements [AccountClient]. See the interface contract for
// delivery guarantees.
func (c *httpAccountClient) OnAccountChanged(cb func(account *models.Account)) (func(), error) {
	c.mu.Lock()
	if c.subscribed {
		c.mu.Unlock()
		return nil, ErrListenerExists
	}
	ch := make(chan *models.Account, notifyBuffer)
	c.subscribed = true
	c.notifyCh = ch
	current := cloneAccount(c.account)
	c.mu.Unlock()

	quit := make(chan struct{})
	done := make(chan struct{})

	go func() {
		defer close(done)
		for {
			select {
			case <-quit:
				return
			case account := <-ch:
				cb(account)
			}
		}
	}()

	// First notification reflects the state at subscription time.
	ch <- current

	c.watcher.Start(context.Background(), c.refreshInterval)

	var once sync.Once
	stop := func() {
		once.Do(func() {
			c.watcher.Stop()

			c.mu.Lock()
			c.subscribed = false
			c.notifyCh = nil
			c.mu.Unlock()

			close(quit)
			<-done
		})
	}

	return stop, nil
}

// refreshAccount is the watcher tick. It detects token expiry (published as
// a sign-out) and verification-flag or profile changes observed via lookup.
func (c *httpAccountClient) refreshAccount(ctx context.Context) {
	c.mu.Lock()
	token := c.idToken
	expiresAt := c.tokenExpiresAt
	previous := cloneAccount(c.account)
	c.mu.Unlock()

	if token == "" {
		return
	}

	if !expiresAt.IsZero() && time.Now().After(expiresAt) {
		c.logger.Info().Msg("account credential expired, signing out locally")
		c.mu.Lock()
		c.idToken = ""
		c.tokenExpiresAt = time.Time{}
		c.account = nil
		c.mu.Unlock()
		c.publish(nil)
		return
	}

	account, err := c.lookupWithToken(ctx, token)
	if err != nil {
		if IsProviderCode(err, CodeUserDisabled) {
			c.mu.Lock()
			c.idToken = ""
			c.tokenExpiresAt = time.Time{}
			c.account = nil
			c.mu.Unlock()
			c.publish(nil)
			return
		}
		c.logger.Warn().Err(err).Msg("account refresh failed")
		return
	}

	if previous != nil && *previous == account {
		return
	}

	c.setAccount(&account)
}

// ── helpers ──────────────────────────────────────────────────────────────────

// post sends a JSON POST to path and decodes a successful response into out
// (when out is non-nil). Provider failures become [*ProviderError]; transport
// failures are wrapped [ErrProviderUnavailable].
func (c *httpAccountClient) post(ctx context.Context, path string, body, out any) error {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}

	if err = mapHTTPError(resp); err != nil {
		return err
	}

	if out == nil {
		return nil
	}
	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode provider response: %w", err)
	}

	return nil
}

// mapHTTPError translates a non-2xx provider response into a *ProviderError
// carrying the provider's string code.
func mapHTTPError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	var body providerErrorBody
	_ = json.Unmarshal(resp.Body(), &body)

	return &ProviderError{
		Code:       normalizeProviderCode(body.Error.Message),
		HTTPStatus: resp.StatusCode(),
	}
}

// normalizeProviderCode strips the free-text suffix the provider sometimes
// appends, e.g. "TOO_MANY_ATTEMPTS_TRY_LATER : retry later".
func normalizeProviderCode(message string) string {
	message = strings.TrimSpace(message)
	if idx := strings.IndexAny(message, " :"); idx != -1 {
		message = message[:idx]
	}
	return message
}

func (c *httpAccountClient) currentCredential() (string, *models.Account, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.idToken == "" || c.account == nil {
		return "", nil, ErrNotSignedIn
	}
	return c.idToken, c.account, nil
}

func (c *httpAccountClient) bindCredential(idToken string, account *models.Account) {
	c.mu.Lock()
	c.idToken = idToken
	c.tokenExpiresAt = tokenExpiry(idToken)
	c.account = account
	c.mu.Unlock()

	c.publish(account)
}

func (c *httpAccountClient) setAccount(account *models.Account) {
	c.mu.Lock()
	c.account = account
	c.mu.Unlock()

	c.publish(account)
}

// publish enqueues an account-change notification for the dispatch
// goroutine. Delivery order matches call order; when the buffer is full the
// oldest pending state is evicted so the newest state always lands, keeping
// the consumer convergent on the latest account.
func (c *httpAccountClient) publish(account *models.Account) {
	c.mu.Lock()
	ch := c.notifyCh
	c.mu.Unlock()

	if ch == nil {
		return
	}

	next := cloneAccount(account)
	for {
		select {
		case ch <- next:
			return
		default:
		}

		c.logger.Warn().Msg("account-change queue full, evicting oldest pending state")
		select {
		case <-ch:
		default:
		}
	}
}

func cloneAccount(account *models.Account) *models.Account {
	if account == nil {
		return nil
	}
	cloned := *account
	return &cloned
}

func tokenExpiry(idToken string) time.Time {
	claims, err := utils.ParseIDTokenClaims(idToken)
	if err != nil {
		return time.Time{}
	}
	return claims.ExpiresAt
}
