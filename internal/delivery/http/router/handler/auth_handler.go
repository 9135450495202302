// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"passport/internal/delivery/http/response"
	"passport/internal/domain/entity"
	"passport/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for the OAuth login handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

// providerFromPath resolves the :provider path segment to an enumerated id.
func providerFromPath(c echo.Context) (entity.ProviderID, bool) {
	providerID := entity.ProviderIDFromName(c.Param("provider"))

	return providerID, providerID != entity.ProviderUnknown
}

// Login redirects the client to the provider's consent page.
func (h *AuthHandler) Login(c echo.Context) error {
	providerID, ok := providerFromPath(c)
	if !ok {
		return response.NotFound(c, "PROVIDER_UNSUPPORTED", "Unknown authentication provider")
	}

	output, err := h.uc.InitiateLogin(c.Request().Context(), providerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Redirect(http.StatusFound, output.AuthorizationURL)
}

// Callback finishes the login with the authorization code the provider
// appended to the redirect.
func (h *AuthHandler) Callback(c echo.Context) error {
	providerID, ok := providerFromPath(c)
	if !ok {
		return response.NotFound(c, "PROVIDER_UNSUPPORTED", "Unknown authentication provider")
	}

	code := c.QueryParam("code")
	if code == "" {
		return response.BadRequest(c, "OAUTH_CODE_INVALID", "Missing authorization code")
	}

	output, err := h.uc.CompleteLogin(c.Request().Context(), &usecase.CompleteLoginInput{
		Provider: providerID,
		Code:     code,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"token": output.SessionToken}, "Login successful")
}
