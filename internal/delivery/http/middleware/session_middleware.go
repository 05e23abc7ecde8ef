package middleware

import (
	"cinelog/internal/domain/entity"
	domainerrors "cinelog/internal/domain/errors"
	"cinelog/internal/usecase"

	"github.com/labstack/echo/v4"
)

const identityContextKey = "identity"

// SessionMiddleware gates routes on the process-wide session. One identity
// is active per process; there are no per-request tokens to validate.
type SessionMiddleware struct {
	session usecase.SessionUsecase
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(session usecase.SessionUsecase) *SessionMiddleware {
	return &SessionMiddleware{session: session}
}

// RequireSession rejects the request unless an identity is signed in. The
// identity is stashed on the echo context for handlers.
func (m *SessionMiddleware) RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		identity := m.session.Current()
		if identity == nil {
			return domainerrors.ErrNotAuthenticated
		}

		c.Set(identityContextKey, identity)

		return next(c)
	}
}

// CurrentIdentity returns the identity stashed by RequireSession, or nil.
func CurrentIdentity(c echo.Context) *entity.Identity {
	if identity, ok := c.Get(identityContextKey).(*entity.Identity); ok {
		return identity
	}

	return nil
}
