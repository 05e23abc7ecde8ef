// Package auth implements the identity provider against Firebase
// Authentication: the Identity Toolkit REST API for email+password flows
// and the Admin SDK for session revocation.
package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"cinelog/config"
	"cinelog/internal/domain/entity"
	"cinelog/internal/domain/service"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

const (
	defaultAuthEndpoint  = "https://identitytoolkit.googleapis.com/v1"
	defaultTokenEndpoint = "https://securetoken.googleapis.com/v1"

	requestTimeout = 10 * time.Second

	// refreshSlack is how long before ID token expiry the refresher runs.
	refreshSlack = time.Minute
)

type firebaseAuthenticator struct {
	apiKey        string
	authEndpoint  string
	tokenEndpoint string
	httpClient    *http.Client
	admin         *fbauth.Client
	logger        *slog.Logger

	events chan entity.SessionEvent

	mu           sync.Mutex
	refreshToken string
	refreshTimer *time.Timer
	closed       bool
}

// NewFirebaseAuthenticator creates the Firebase-backed Authenticator.
func NewFirebaseAuthenticator(cfg *config.Config, admin *fbauth.Client, logger *slog.Logger) (service.Authenticator, error) {
	if cfg.Firebase == nil || cfg.Firebase.WebAPIKey == "" {
		return nil, errors.New("firebase web API key is not configured")
	}

	authEndpoint := cfg.Firebase.AuthEndpoint
	if authEndpoint == "" {
		authEndpoint = defaultAuthEndpoint
	}
	tokenEndpoint := cfg.Firebase.TokenEndpoint
	if tokenEndpoint == "" {
		tokenEndpoint = defaultTokenEndpoint
	}

	return &firebaseAuthenticator{
		apiKey:        cfg.Firebase.WebAPIKey,
		authEndpoint:  authEndpoint,
		tokenEndpoint: tokenEndpoint,
		httpClient:    &http.Client{Timeout: requestTimeout},
		admin:         admin,
		logger:        logger,
		events:        make(chan entity.SessionEvent, 8),
	}, nil
}

// signInResponse covers accounts:signUp, accounts:signInWithPassword and
// accounts:update, which share the fields we read.
type signInResponse struct {
	LocalID      string `json:"localId"`
	Email        string `json:"email"`
	DisplayName  string `json:"displayName"`
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
}

type apiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// SignUp creates a new remote identity, sets its display name and signs it in.
func (a *firebaseAuthenticator) SignUp(ctx context.Context, displayName, email, password string) (*entity.Identity, error) {
	var created signInResponse
	err := a.post(ctx, a.authEndpoint+"/accounts:signUp", map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	}, &created)
	if err != nil {
		return nil, err
	}

	// The display name lives on the provider profile, set in a second call
	// the way the sign-up flow always has.
	var updated signInResponse
	err = a.post(ctx, a.authEndpoint+"/accounts:update", map[string]any{
		"idToken":           created.IDToken,
		"displayName":       displayName,
		"returnSecureToken": false,
	}, &updated)
	if err != nil {
		a.logger.Warn("Failed to set display name on new account", slog.Any("error", err))
	}

	a.scheduleRefresh(created.IDToken, created.RefreshToken)

	return &entity.Identity{
		ID:          created.LocalID,
		DisplayName: displayName,
		Email:       created.Email,
	}, nil
}

// SignIn authenticates an existing identity with email and password.
func (a *firebaseAuthenticator) SignIn(ctx context.Context, email, password string) (*entity.Identity, error) {
	var resp signInResponse
	err := a.post(ctx, a.authEndpoint+"/accounts:signInWithPassword", map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	}, &resp)
	if err != nil {
		return nil, err
	}

	displayName := resp.DisplayName
	if displayName == "" {
		displayName = "User"
	}

	a.scheduleRefresh(resp.IDToken, resp.RefreshToken)

	return &entity.Identity{
		ID:          resp.LocalID,
		DisplayName: displayName,
		Email:       resp.Email,
	}, nil
}

// SignOut stops the token refresher and revokes the provider session.
func (a *firebaseAuthenticator) SignOut(ctx context.Context, userID string) error {
	a.stopRefresher()

	if a.admin == nil {
		return nil
	}
	if err := a.admin.RevokeRefreshTokens(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to revoke refresh tokens")
	}

	return nil
}

// Events returns the session-change stream.
func (a *firebaseAuthenticator) Events() <-chan entity.SessionEvent {
	return a.events
}

// Close stops the refresher and closes the event stream.
func (a *firebaseAuthenticator) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return nil
	}
	a.closed = true
	if a.refreshTimer != nil {
		a.refreshTimer.Stop()
		a.refreshTimer = nil
	}
	close(a.events)

	return nil
}

// post issues a keyed JSON request and decodes the response, mapping the
// provider's error codes onto the domain-level authentication errors.
func (a *firebaseAuthenticator) post(ctx context.Context, url string, body map[string]any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return errors.Wrap(err, "failed to encode request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url+"?key="+a.apiKey, bytes.NewReader(payload))
	if err != nil {
		return errors.Wrap(err, "failed to build request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "identity provider request failed")
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "failed to read response")
	}

	if resp.StatusCode >= 400 {
		return mapProviderError(data, resp.StatusCode)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return errors.Wrap(err, "failed to decode response")
	}

	return nil
}

// mapProviderError translates Identity Toolkit error messages into the
// domain service errors. Messages can carry a human-readable suffix, e.g.
// "WEAK_PASSWORD : Password should be at least 6 characters".
func mapProviderError(body []byte, statusCode int) error {
	var apiErr apiError
	if err := json.Unmarshal(body, &apiErr); err != nil {
		return errors.Errorf("identity provider returned status %d", statusCode)
	}

	message := apiErr.Error.Message
	switch {
	case strings.HasPrefix(message, "EMAIL_EXISTS"):
		return service.ErrEmailAlreadyInUse
	case strings.HasPrefix(message, "WEAK_PASSWORD"):
		return service.ErrWeakPassword
	case strings.HasPrefix(message, "INVALID_PASSWORD"),
		strings.HasPrefix(message, "EMAIL_NOT_FOUND"),
		strings.HasPrefix(message, "INVALID_LOGIN_CREDENTIALS"),
		strings.HasPrefix(message, "INVALID_EMAIL"),
		strings.HasPrefix(message, "USER_DISABLED"):
		return service.ErrInvalidCredentials
	default:
		return errors.Errorf("identity provider error: %s", message)
	}
}

// scheduleRefresh arms the proactive token refresher shortly before the ID
// token expires. A failed refresh means the provider session is gone and a
// signed-out event is emitted, which is how token expiry reaches the
// session manager without an explicit call.
func (a *firebaseAuthenticator) scheduleRefresh(idToken, refreshToken string) {
	expiry, err := tokenExpiry(idToken)
	if err != nil {
		a.logger.Warn("Cannot schedule token refresh", slog.Any("error", err))

		return
	}

	delay := time.Until(expiry) - refreshSlack
	if delay < 0 {
		delay = 0
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return
	}

	a.refreshToken = refreshToken
	if a.refreshTimer != nil {
		a.refreshTimer.Stop()
	}
	a.refreshTimer = time.AfterFunc(delay, a.refresh)
}

// refresh exchanges the refresh token for a fresh ID token.
func (a *firebaseAuthenticator) refresh() {
	a.mu.Lock()
	refreshToken := a.refreshToken
	closed := a.closed
	a.mu.Unlock()

	if closed || refreshToken == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	var resp struct {
		IDToken      string `json:"id_token"`
		RefreshToken string `json:"refresh_token"`
	}
	err := a.post(ctx, a.tokenEndpoint+"/token", map[string]any{
		"grant_type":    "refresh_token",
		"refresh_token": refreshToken,
	}, &resp)
	if err != nil {
		a.logger.Warn("Token refresh failed, session expired", slog.Any("error", err))
		a.emit(entity.SessionEvent{Type: entity.SessionSignedOut})

		return
	}

	a.scheduleRefresh(resp.IDToken, resp.RefreshToken)
}

func (a *firebaseAuthenticator) stopRefresher() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.refreshToken = ""
	if a.refreshTimer != nil {
		a.refreshTimer.Stop()
		a.refreshTimer = nil
	}
}

func (a *firebaseAuthenticator) emit(event entity.SessionEvent) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return
	}

	select {
	case a.events <- event:
	default:
		a.logger.Warn("Dropping session event, consumer not keeping up")
	}
}

// tokenExpiry reads the exp claim without verifying the signature; the
// token was just handed to us by the provider over TLS and is only used to
// time the next refresh.
func tokenExpiry(idToken string) (time.Time, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(idToken, claims); err != nil {
		return time.Time{}, errors.Wrap(err, "failed to parse ID token")
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, fmt.Errorf("ID token has no expiry")
	}

	return exp.Time, nil
}
