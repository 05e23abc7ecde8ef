// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"sync"

	deliverycontext "cinelog/internal/delivery/context"
	"cinelog/internal/domain/entity"
	domainerrors "cinelog/internal/domain/errors"
	"cinelog/internal/domain/service"
	"cinelog/internal/usecase"

	"github.com/pkg/errors"
)

const sessionEventBuffer = 8

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	auth   service.Authenticator
	store  service.SessionStore
	logger *slog.Logger

	mu       sync.RWMutex
	state    entity.SessionState
	identity *entity.Identity
	subs     []chan entity.SessionEvent
	closed   bool

	pumpDone chan struct{}
}

// NewSessionService is the constructor for sessionService. It reads the
// persisted mirror once so a warm start optimistically shows the cached
// identity, then subscribes to the provider's session-change stream.
func NewSessionService(
	auth service.Authenticator,
	store service.SessionStore,
	logger *slog.Logger,
) usecase.SessionUsecase {
	srv := &sessionService{
		auth:     auth,
		store:    store,
		logger:   logger,
		state:    entity.Unauthenticated,
		pumpDone: make(chan struct{}),
	}

	if cached, err := store.Load(); err != nil {
		logger.Warn("Failed to read session mirror", slog.Any("error", err))
	} else if cached != nil {
		// The mirror is a warm-start hint, not a trust source: the provider
		// stream reconciles it if the remote session turns out to be gone.
		srv.state = entity.Authenticated
		srv.identity = cached
		logger.Info("Restored session from mirror", slog.String("user_id", cached.ID))
	}

	go srv.pumpProviderEvents()

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignUp creates a new remote identity, then treats it like a sign-in.
func (srv *sessionService) SignUp(ctx context.Context, input usecase.SignUpInput) (*entity.Identity, error) {
	srv.log(ctx).Info("Signing up", slog.String("email", input.Email))

	prevState, prevIdentity := srv.beginAuthenticating()

	identity, err := srv.auth.SignUp(ctx, input.Username, input.Email, input.Password)
	if err != nil {
		srv.revert(prevState, prevIdentity)
		srv.log(ctx).Error("Sign-up failed", slog.Any("error", err))

		return nil, wrapAuthError(err, "sign up failed")
	}

	srv.completeSignIn(identity)
	srv.log(ctx).Info("Signed up", slog.String("user_id", identity.ID))

	return identity, nil
}

// SignIn authenticates against the identity provider.
func (srv *sessionService) SignIn(ctx context.Context, input usecase.SignInInput) (*entity.Identity, error) {
	srv.log(ctx).Info("Signing in", slog.String("email", input.Email))

	prevState, prevIdentity := srv.beginAuthenticating()

	identity, err := srv.auth.SignIn(ctx, input.Email, input.Password)
	if err != nil {
		srv.revert(prevState, prevIdentity)
		srv.log(ctx).Error("Sign-in failed", slog.Any("error", err))

		return nil, wrapAuthError(err, "sign in failed")
	}

	srv.completeSignIn(identity)
	srv.log(ctx).Info("Signed in", slog.String("user_id", identity.ID))

	return identity, nil
}

// SignOut ends the session. Local state and the persisted mirror clear
// unconditionally; the user must never appear stuck signed in locally after
// requesting sign-out, even when the remote call fails.
func (srv *sessionService) SignOut(ctx context.Context) error {
	srv.mu.Lock()
	identity := srv.identity
	srv.mu.Unlock()

	if identity == nil {
		return domainerrors.ErrNotAuthenticated
	}

	remoteErr := srv.auth.SignOut(ctx, identity.ID)

	srv.clearSession()

	if remoteErr != nil {
		srv.log(ctx).Warn("Remote sign-out failed, local session cleared anyway",
			slog.Any("error", remoteErr), slog.String("user_id", identity.ID))

		return errors.Wrap(domainerrors.ErrRemoteUnavailable, remoteErr.Error())
	}
	srv.log(ctx).Info("Signed out", slog.String("user_id", identity.ID))

	return nil
}

// Current returns the active identity, or nil.
func (srv *sessionService) Current() *entity.Identity {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return srv.identity
}

// State reports the state machine's current state.
func (srv *sessionService) State() entity.SessionState {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return srv.state
}

// Subscribe registers an observer of identity changes. Subscribing to an
// already-authenticated session delivers a signed-in event immediately, so
// observers attached after a warm start still load their per-user state.
func (srv *sessionService) Subscribe() <-chan entity.SessionEvent {
	ch := make(chan entity.SessionEvent, sessionEventBuffer)

	srv.mu.Lock()
	srv.subs = append(srv.subs, ch)
	if srv.state == entity.Authenticated && srv.identity != nil {
		ch <- entity.SessionEvent{Type: entity.SessionSignedIn, Identity: srv.identity}
	}
	srv.mu.Unlock()

	return ch
}

// Close stops the provider event pump and closes subscriber channels.
func (srv *sessionService) Close() error {
	srv.mu.Lock()
	if srv.closed {
		srv.mu.Unlock()

		return nil
	}
	srv.closed = true
	subs := srv.subs
	srv.subs = nil
	srv.mu.Unlock()

	if err := srv.auth.Close(); err != nil {
		srv.logger.Warn("Failed to close authenticator", slog.Any("error", err))
	}
	<-srv.pumpDone

	for _, ch := range subs {
		close(ch)
	}

	return nil
}

// beginAuthenticating moves the machine into Authenticating and returns the
// pre-call state so a failed round-trip can revert to it.
func (srv *sessionService) beginAuthenticating() (entity.SessionState, *entity.Identity) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	prevState, prevIdentity := srv.state, srv.identity
	srv.state = entity.Authenticating

	return prevState, prevIdentity
}

func (srv *sessionService) revert(state entity.SessionState, identity *entity.Identity) {
	srv.mu.Lock()
	srv.state = state
	srv.identity = identity
	srv.mu.Unlock()
}

// completeSignIn installs the identity, persists the mirror and notifies
// observers. Switching from another identity emits a signed-out event first
// so observers discard the previous user's collections.
func (srv *sessionService) completeSignIn(identity *entity.Identity) {
	srv.mu.Lock()
	previous := srv.identity
	srv.state = entity.Authenticated
	srv.identity = identity
	srv.mu.Unlock()

	if err := srv.store.Save(identity); err != nil {
		srv.logger.Warn("Failed to persist session mirror", slog.Any("error", err))
	}

	if previous != nil && previous.ID != identity.ID {
		srv.broadcast(entity.SessionEvent{Type: entity.SessionSignedOut})
	}
	srv.broadcast(entity.SessionEvent{Type: entity.SessionSignedIn, Identity: identity})
}

// clearSession drops the identity, erases the mirror and notifies observers.
func (srv *sessionService) clearSession() {
	srv.mu.Lock()
	srv.state = entity.Unauthenticated
	srv.identity = nil
	srv.mu.Unlock()

	if err := srv.store.Clear(); err != nil {
		srv.logger.Warn("Failed to clear session mirror", slog.Any("error", err))
	}

	srv.broadcast(entity.SessionEvent{Type: entity.SessionSignedOut})
}

// pumpProviderEvents reconciles local state with provider-driven session
// changes (token expiry, remote revocation) that arrive independently of
// explicit calls.
func (srv *sessionService) pumpProviderEvents() {
	defer close(srv.pumpDone)

	for event := range srv.auth.Events() {
		switch event.Type {
		case entity.SessionSignedOut:
			srv.mu.RLock()
			active := srv.identity != nil
			srv.mu.RUnlock()

			if active {
				srv.logger.Info("Provider ended session, clearing local state")
				srv.clearSession()
			}
		case entity.SessionSignedIn:
			if event.Identity == nil {
				continue
			}
			srv.mu.RLock()
			same := srv.identity != nil && srv.identity.ID == event.Identity.ID
			srv.mu.RUnlock()

			if !same {
				srv.logger.Info("Provider reported session", slog.String("user_id", event.Identity.ID))
				srv.completeSignIn(event.Identity)
			}
		}
	}
}

func (srv *sessionService) broadcast(event entity.SessionEvent) {
	srv.mu.RLock()
	subs := srv.subs
	srv.mu.RUnlock()

	for _, ch := range subs {
		select {
		case ch <- event:
		default:
			srv.logger.Warn("Dropping session event, subscriber not keeping up")
		}
	}
}

// wrapAuthError maps provider-level failures onto the typed domain errors
// surfaced to the caller.
func wrapAuthError(err error, message string) error {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return errors.Wrap(domainerrors.ErrInvalidCredentials, message)
	case errors.Is(err, service.ErrEmailAlreadyInUse):
		return errors.Wrap(domainerrors.ErrEmailAlreadyRegistered, message)
	case errors.Is(err, service.ErrWeakPassword):
		return errors.Wrap(domainerrors.ErrWeakPassword, message)
	default:
		return errors.Wrap(domainerrors.ErrRemoteUnavailable, message)
	}
}
