package handler

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cinelog/internal/delivery/http/validator"
	"cinelog/internal/domain/entity"
	mockUsecase "cinelog/internal/mocks/usecase"
	"cinelog/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newEchoContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Login(t *testing.T) {
	session := mockUsecase.NewMockSessionUsecase(t)
	handler := NewAuthHandler(session, slog.Default())

	identity := &entity.Identity{ID: "u1", DisplayName: "Ada", Email: "ada@example.com"}
	session.EXPECT().
		SignIn(mock.Anything, usecase.SignInInput{Email: "ada@example.com", Password: "hunter22"}).
		Return(identity, nil)

	c, rec := newEchoContext(t, http.MethodPost, "/auth/login",
		`{"email":"ada@example.com","password":"hunter22"}`)

	require.NoError(t, handler.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"u1"`)
}

func TestAuthHandler_RegisterValidatesInput(t *testing.T) {
	session := mockUsecase.NewMockSessionUsecase(t)
	handler := NewAuthHandler(session, slog.Default())

	// Short password never reaches the session manager.
	c, _ := newEchoContext(t, http.MethodPost, "/auth/register",
		`{"username":"Ada","email":"ada@example.com","password":"ab"}`)

	err := handler.Register(c)
	require.Error(t, err)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	session.AssertNotCalled(t, "SignUp", mock.Anything, mock.Anything)
}

func TestAuthHandler_SessionReportsState(t *testing.T) {
	session := mockUsecase.NewMockSessionUsecase(t)
	handler := NewAuthHandler(session, slog.Default())

	session.EXPECT().State().Return(entity.Authenticated)
	session.EXPECT().Current().Return(&entity.Identity{ID: "u1", DisplayName: "Ada"})

	c, rec := newEchoContext(t, http.MethodGet, "/auth/session", "")

	require.NoError(t, handler.Session(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"state":"authenticated"`)
	assert.Contains(t, rec.Body.String(), `"id":"u1"`)
}
