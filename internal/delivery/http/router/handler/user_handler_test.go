package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"passport/internal/domain/entity"
	mockUC "passport/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserHandler_Me_ReturnsProfile(t *testing.T) {
	uc := mockUC.NewMockUserUsecase(t)
	handler := NewUserHandler(uc, newTestLogger())

	userID := uuid.New()
	uc.EXPECT().
		GetUserByToken(mock.Anything, "session-jwt").
		Return(&entity.User{ID: userID, Email: "a@x.com", Name: "Ann"}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/me/session-jwt", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("token")
	c.SetParamValues("session-jwt")

	err := handler.Me(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "a@x.com")
	assert.Contains(t, rec.Body.String(), "Ann")
}

func TestUserHandler_Me_MissingToken(t *testing.T) {
	uc := mockUC.NewMockUserUsecase(t)
	handler := NewUserHandler(uc, newTestLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/me/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("token")
	c.SetParamValues("")

	err := handler.Me(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "TOKEN_INVALID")
}
