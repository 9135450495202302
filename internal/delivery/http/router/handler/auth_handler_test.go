package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"passport/internal/domain/entity"
	mockUC "passport/internal/mocks/usecase"
	"passport/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newLoginContext(e *echo.Echo, target, provider string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("provider")
	c.SetParamValues(provider)

	return c, rec
}

func TestAuthHandler_Login_Redirects(t *testing.T) {
	uc := mockUC.NewMockAuthUsecase(t)
	handler := NewAuthHandler(uc, newTestLogger())

	uc.EXPECT().
		InitiateLogin(mock.Anything, entity.ProviderGoogle).
		Return(&usecase.InitiateLoginOutput{
			AuthorizationURL: "https://accounts.google.com/o/oauth2/v2/auth?state=xyz",
		}, nil)

	e := echo.New()
	c, rec := newLoginContext(e, "/auth/google/login", "google")

	err := handler.Login(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "https://accounts.google.com/o/oauth2/v2/auth?state=xyz", rec.Header().Get(echo.HeaderLocation))
}

func TestAuthHandler_Login_UnknownProvider(t *testing.T) {
	uc := mockUC.NewMockAuthUsecase(t)
	handler := NewAuthHandler(uc, newTestLogger())

	e := echo.New()
	c, rec := newLoginContext(e, "/auth/facebook/login", "facebook")

	err := handler.Login(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "PROVIDER_UNSUPPORTED")
}

func TestAuthHandler_Callback_ReturnsToken(t *testing.T) {
	uc := mockUC.NewMockAuthUsecase(t)
	handler := NewAuthHandler(uc, newTestLogger())

	uc.EXPECT().
		CompleteLogin(mock.Anything, &usecase.CompleteLoginInput{
			Provider: entity.ProviderGoogle,
			Code:     "abc123",
		}).
		Return(&usecase.CompleteLoginOutput{
			SessionToken: "session-jwt",
			User:         &entity.User{Email: "a@x.com"},
		}, nil)

	e := echo.New()
	c, rec := newLoginContext(e, "/auth/google/callback?code=abc123", "google")

	err := handler.Callback(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"token":"session-jwt"`)
	assert.Contains(t, rec.Body.String(), `"success":true`)
}

func TestAuthHandler_Callback_MissingCode(t *testing.T) {
	uc := mockUC.NewMockAuthUsecase(t)
	handler := NewAuthHandler(uc, newTestLogger())

	e := echo.New()
	c, rec := newLoginContext(e, "/auth/google/callback", "google")

	err := handler.Callback(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "OAUTH_CODE_INVALID")
}

func TestAuthHandler_Callback_UnknownProvider(t *testing.T) {
	uc := mockUC.NewMockAuthUsecase(t)
	handler := NewAuthHandler(uc, newTestLogger())

	e := echo.New()
	c, rec := newLoginContext(e, "/auth/github/callback?code=abc123", "github")

	err := handler.Callback(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
