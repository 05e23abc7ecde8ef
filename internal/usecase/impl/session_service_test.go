package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"cinelog/internal/domain/entity"
	domainerrors "cinelog/internal/domain/errors"
	"cinelog/internal/domain/service"
	mockService "cinelog/internal/mocks/service"
	"cinelog/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sessionFixture struct {
	auth   *mockService.MockAuthenticator
	store  *mockService.MockSessionStore
	events chan entity.SessionEvent
}

// newSessionFixture wires the authenticator and mirror mocks every session
// test needs: an open provider event stream and a clean shutdown path.
func newSessionFixture(t *testing.T) *sessionFixture {
	t.Helper()

	f := &sessionFixture{
		auth:   mockService.NewMockAuthenticator(t),
		store:  mockService.NewMockSessionStore(t),
		events: make(chan entity.SessionEvent),
	}
	f.auth.EXPECT().Events().Return(f.events)

	return f
}

func (f *sessionFixture) start(t *testing.T) usecase.SessionUsecase {
	t.Helper()

	srv := NewSessionService(f.auth, f.store, slog.Default())
	t.Cleanup(func() {
		f.auth.EXPECT().Close().Return(nil).Maybe()
		close(f.events)
		srv.Close()
	})

	return srv
}

func TestSessionService_ColdStartIsUnauthenticated(t *testing.T) {
	f := newSessionFixture(t)
	f.store.EXPECT().Load().Return(nil, nil)

	srv := f.start(t)

	assert.Equal(t, entity.Unauthenticated, srv.State())
	assert.Nil(t, srv.Current())
}

func TestSessionService_WarmStartRestoresMirror(t *testing.T) {
	f := newSessionFixture(t)
	cached := &entity.Identity{ID: "u1", DisplayName: "Ada", Email: "ada@example.com"}
	f.store.EXPECT().Load().Return(cached, nil)

	srv := f.start(t)

	assert.Equal(t, entity.Authenticated, srv.State())
	require.NotNil(t, srv.Current())
	assert.Equal(t, "u1", srv.Current().ID)
}

func TestSessionService_WarmStartReplaysSignInToSubscribers(t *testing.T) {
	f := newSessionFixture(t)
	cached := &entity.Identity{ID: "u1", DisplayName: "Ada", Email: "ada@example.com"}
	f.store.EXPECT().Load().Return(cached, nil)
	srv := f.start(t)

	// Observers always attach after the mirror restore, so the restored
	// identity must reach them anyway.
	events := srv.Subscribe()

	select {
	case event := <-events:
		assert.Equal(t, entity.SessionSignedIn, event.Type)
		require.NotNil(t, event.Identity)
		assert.Equal(t, "u1", event.Identity.ID)
	case <-time.After(time.Second):
		t.Fatal("expected a replayed signed-in event")
	}
}

func TestSessionService_SignInSuccess(t *testing.T) {
	f := newSessionFixture(t)
	f.store.EXPECT().Load().Return(nil, nil)
	srv := f.start(t)

	ctx := context.Background()
	identity := &entity.Identity{ID: "u1", DisplayName: "Ada", Email: "ada@example.com"}

	f.auth.EXPECT().SignIn(ctx, "ada@example.com", "hunter22").Return(identity, nil)
	f.store.EXPECT().Save(identity).Return(nil)

	events := srv.Subscribe()

	got, err := srv.SignIn(ctx, usecase.SignInInput{Email: "ada@example.com", Password: "hunter22"})
	require.NoError(t, err)
	assert.Equal(t, identity, got)
	assert.Equal(t, entity.Authenticated, srv.State())

	select {
	case event := <-events:
		assert.Equal(t, entity.SessionSignedIn, event.Type)
		assert.Equal(t, identity, event.Identity)
	case <-time.After(time.Second):
		t.Fatal("expected a signed-in event")
	}
}

func TestSessionService_SignInFailureRevertsState(t *testing.T) {
	f := newSessionFixture(t)
	f.store.EXPECT().Load().Return(nil, nil)
	srv := f.start(t)

	ctx := context.Background()
	f.auth.EXPECT().SignIn(ctx, "ada@example.com", "wrong").Return(nil, service.ErrInvalidCredentials)

	got, err := srv.SignIn(ctx, usecase.SignInInput{Email: "ada@example.com", Password: "wrong"})
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	assert.Equal(t, entity.Unauthenticated, srv.State())
	assert.Nil(t, srv.Current())
}

func TestSessionService_SignUpMapsProviderErrors(t *testing.T) {
	tests := []struct {
		name        string
		providerErr error
		wantErr     error
	}{
		{"email already in use", service.ErrEmailAlreadyInUse, domainerrors.ErrEmailAlreadyRegistered},
		{"weak password", service.ErrWeakPassword, domainerrors.ErrWeakPassword},
		{"network failure", errors.New("connection refused"), domainerrors.ErrRemoteUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSessionFixture(t)
			f.store.EXPECT().Load().Return(nil, nil)
			srv := f.start(t)

			ctx := context.Background()
			f.auth.EXPECT().SignUp(ctx, "Ada", "ada@example.com", "pw").Return(nil, tt.providerErr)

			_, err := srv.SignUp(ctx, usecase.SignUpInput{Username: "Ada", Email: "ada@example.com", Password: "pw"})
			assert.True(t, errors.Is(err, tt.wantErr))
			assert.Equal(t, entity.Unauthenticated, srv.State())
		})
	}
}

func TestSessionService_SignOutClearsLocalStateOnRemoteFailure(t *testing.T) {
	f := newSessionFixture(t)
	identity := &entity.Identity{ID: "u1"}
	f.store.EXPECT().Load().Return(identity, nil)
	srv := f.start(t)

	ctx := context.Background()
	f.auth.EXPECT().SignOut(ctx, "u1").Return(errors.New("network down"))
	f.store.EXPECT().Clear().Return(nil)

	err := srv.SignOut(ctx)
	assert.True(t, errors.Is(err, domainerrors.ErrRemoteUnavailable))

	// Remote failed but the user is signed out locally regardless.
	assert.Equal(t, entity.Unauthenticated, srv.State())
	assert.Nil(t, srv.Current())
}

func TestSessionService_SignOutWithoutSession(t *testing.T) {
	f := newSessionFixture(t)
	f.store.EXPECT().Load().Return(nil, nil)
	srv := f.start(t)

	err := srv.SignOut(context.Background())
	assert.True(t, errors.Is(err, domainerrors.ErrNotAuthenticated))
}

func TestSessionService_ProviderExpiryEndsSession(t *testing.T) {
	f := newSessionFixture(t)
	identity := &entity.Identity{ID: "u1"}
	f.store.EXPECT().Load().Return(identity, nil)
	f.store.EXPECT().Clear().Return(nil)
	srv := f.start(t)

	events := srv.Subscribe()

	// Drain the warm-start replay so the next read observes the expiry.
	replay := <-events
	require.Equal(t, entity.SessionSignedIn, replay.Type)

	f.events <- entity.SessionEvent{Type: entity.SessionSignedOut}

	select {
	case event := <-events:
		assert.Equal(t, entity.SessionSignedOut, event.Type)
	case <-time.After(time.Second):
		t.Fatal("expected a signed-out event")
	}

	assert.Eventually(t, func() bool {
		return srv.Current() == nil && srv.State() == entity.Unauthenticated
	}, time.Second, 10*time.Millisecond)
}

func TestSessionService_IdentitySwitchEmitsSignOutFirst(t *testing.T) {
	f := newSessionFixture(t)
	f.store.EXPECT().Load().Return(&entity.Identity{ID: "u1"}, nil)
	srv := f.start(t)

	ctx := context.Background()
	next := &entity.Identity{ID: "u2", Email: "grace@example.com"}
	f.auth.EXPECT().SignIn(ctx, "grace@example.com", "pw").Return(next, nil)
	f.store.EXPECT().Save(next).Return(nil)

	events := srv.Subscribe()

	// Drain the warm-start replay for the restored identity first.
	replay := <-events
	require.Equal(t, entity.SessionSignedIn, replay.Type)

	_, err := srv.SignIn(ctx, usecase.SignInInput{Email: "grace@example.com", Password: "pw"})
	require.NoError(t, err)

	first := <-events
	second := <-events
	assert.Equal(t, entity.SessionSignedOut, first.Type)
	assert.Equal(t, entity.SessionSignedIn, second.Type)
	assert.Equal(t, "u2", second.Identity.ID)
}
