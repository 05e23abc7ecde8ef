package auth

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cinelog/config"
	"cinelog/internal/domain/entity"
	"cinelog/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsignedToken builds a JWT-shaped token with only an exp claim; the
// authenticator never verifies signatures, it just reads the expiry.
func unsignedToken(t *testing.T, exp time.Time) string {
	t.Helper()

	header, err := json.Marshal(map[string]string{"alg": "none", "typ": "JWT"})
	require.NoError(t, err)
	claims, err := json.Marshal(map[string]int64{"exp": exp.Unix()})
	require.NoError(t, err)

	enc := base64.RawURLEncoding
	return fmt.Sprintf("%s.%s.", enc.EncodeToString(header), enc.EncodeToString(claims))
}

func newAuthenticator(t *testing.T, handler http.Handler) service.Authenticator {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.Firebase = &config.FirebaseConfig{
		WebAPIKey:     "test-key",
		AuthEndpoint:  server.URL,
		TokenEndpoint: server.URL,
	}

	authenticator, err := NewFirebaseAuthenticator(cfg, nil, slog.Default())
	require.NoError(t, err)
	t.Cleanup(func() { authenticator.Close() })

	return authenticator
}

func TestFirebaseAuthenticator_RequiresAPIKey(t *testing.T) {
	cfg := &config.Config{}

	_, err := NewFirebaseAuthenticator(cfg, nil, slog.Default())
	assert.Error(t, err)
}

func TestFirebaseAuthenticator_SignInSuccess(t *testing.T) {
	idToken := unsignedToken(t, time.Now().Add(time.Hour))

	a := newAuthenticator(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/accounts:signInWithPassword", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ada@example.com", body["email"])

		json.NewEncoder(w).Encode(map[string]any{
			"localId":      "u1",
			"email":        "ada@example.com",
			"displayName":  "Ada",
			"idToken":      idToken,
			"refreshToken": "rt1",
		})
	}))

	identity, err := a.SignIn(context.Background(), "ada@example.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, &entity.Identity{ID: "u1", DisplayName: "Ada", Email: "ada@example.com"}, identity)
}

func TestFirebaseAuthenticator_SignInDefaultsDisplayName(t *testing.T) {
	idToken := unsignedToken(t, time.Now().Add(time.Hour))

	a := newAuthenticator(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"localId":      "u1",
			"email":        "ada@example.com",
			"idToken":      idToken,
			"refreshToken": "rt1",
		})
	}))

	identity, err := a.SignIn(context.Background(), "ada@example.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, "User", identity.DisplayName)
}

func TestFirebaseAuthenticator_SignInErrorMapping(t *testing.T) {
	tests := []struct {
		message string
		wantErr error
	}{
		{"INVALID_LOGIN_CREDENTIALS", service.ErrInvalidCredentials},
		{"INVALID_PASSWORD", service.ErrInvalidCredentials},
		{"EMAIL_NOT_FOUND", service.ErrInvalidCredentials},
		{"USER_DISABLED : account disabled by admin", service.ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			a := newAuthenticator(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(map[string]any{
					"error": map[string]any{"code": 400, "message": tt.message},
				})
			}))

			_, err := a.SignIn(context.Background(), "ada@example.com", "wrong")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFirebaseAuthenticator_SignUpSetsDisplayName(t *testing.T) {
	idToken := unsignedToken(t, time.Now().Add(time.Hour))
	var updateCalled bool

	a := newAuthenticator(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/accounts:signUp":
			json.NewEncoder(w).Encode(map[string]any{
				"localId":      "u1",
				"email":        "ada@example.com",
				"idToken":      idToken,
				"refreshToken": "rt1",
			})
		case "/accounts:update":
			updateCalled = true
			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "Ada", body["displayName"])
			assert.Equal(t, idToken, body["idToken"])
			json.NewEncoder(w).Encode(map[string]any{})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))

	identity, err := a.SignUp(context.Background(), "Ada", "ada@example.com", "hunter22")
	require.NoError(t, err)
	assert.True(t, updateCalled)
	assert.Equal(t, "Ada", identity.DisplayName)
	assert.Equal(t, "u1", identity.ID)
}

func TestFirebaseAuthenticator_SignUpEmailExists(t *testing.T) {
	a := newAuthenticator(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"code": 400, "message": "EMAIL_EXISTS"},
		})
	}))

	_, err := a.SignUp(context.Background(), "Ada", "ada@example.com", "hunter22")
	assert.ErrorIs(t, err, service.ErrEmailAlreadyInUse)
}

func TestFirebaseAuthenticator_FailedRefreshEmitsSignedOut(t *testing.T) {
	// Token already at its expiry, so the refresher fires immediately; the
	// refresh endpoint rejects it and the session-change stream must report
	// the sign-out.
	idToken := unsignedToken(t, time.Now())

	a := newAuthenticator(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/accounts:signInWithPassword":
			json.NewEncoder(w).Encode(map[string]any{
				"localId":      "u1",
				"email":        "ada@example.com",
				"displayName":  "Ada",
				"idToken":      idToken,
				"refreshToken": "rt1",
			})
		case "/token":
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]any{
				"error": map[string]any{"code": 400, "message": "TOKEN_EXPIRED"},
			})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))

	_, err := a.SignIn(context.Background(), "ada@example.com", "hunter22")
	require.NoError(t, err)

	select {
	case event := <-a.Events():
		assert.Equal(t, entity.SessionSignedOut, event.Type)
	case <-time.After(2 * time.Second):
		t.Fatal("expected a signed-out event after failed refresh")
	}
}
