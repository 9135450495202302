// Package google implements the OAuthProvider port against Google's OAuth2
// endpoints.
package google

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"passport/config"
	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	googleOAuthURL    = "https://accounts.google.com/o/oauth2/v2/auth"
	googleTokenURL    = "https://oauth2.googleapis.com/token"
	googleUserInfoURL = "https://www.googleapis.com/oauth2/v3/userinfo"

	// requestTimeout bounds every call to Google; a timeout surfaces as the
	// same failure class as any other transport error.
	requestTimeout = 10 * time.Second
)

// Provider talks to Google's authorization, token and user-info endpoints.
// Stateless after construction, safe for concurrent use by many flows.
type Provider struct {
	clientID     string
	clientSecret string
	redirectURI  string

	tokenURL    string
	userInfoURL string
	client      *http.Client
}

// NewProvider creates a Google OAuth provider from configuration.
func NewProvider(cfg *config.Config) service.OAuthProvider {
	return &Provider{
		clientID:     cfg.GoogleOAuth.ClientID,
		clientSecret: cfg.GoogleOAuth.ClientSecret,
		redirectURI:  cfg.GoogleOAuth.RedirectURI,
		tokenURL:     googleTokenURL,
		userInfoURL:  googleUserInfoURL,
		client:       &http.Client{Timeout: requestTimeout},
	}
}

// generateState generates a cryptographically secure random state string
func generateState() string {
	bytes := make([]byte, 32)
	_, _ = rand.Read(bytes)

	return hex.EncodeToString(bytes)
}

// BuildAuthorizationURL constructs the Google OAuth authorization URL.
// access_type=offline and prompt=consent make Google return a refresh token
// even on repeat logins; the orchestrator depends on that. The state token is
// returned to the caller, which currently does not persist it for callback
// validation.
func (p *Provider) BuildAuthorizationURL() (string, string) {
	state := generateState()

	params := url.Values{}
	params.Set("client_id", p.clientID)
	params.Set("redirect_uri", p.redirectURI)
	params.Set("scope", "openid email profile")
	params.Set("response_type", "code")
	params.Set("access_type", "offline")
	params.Set("prompt", "consent")
	params.Set("state", state)

	return googleOAuthURL + "?" + params.Encode(), state
}

// ExchangeCode exchanges an authorization code for a token bundle.
func (p *Provider) ExchangeCode(ctx context.Context, code string) (*service.TokenBundle, error) {
	data := url.Values{}
	data.Set("client_id", p.clientID)
	data.Set("client_secret", p.clientSecret)
	data.Set("code", code)
	data.Set("grant_type", "authorization_code")
	data.Set("redirect_uri", p.redirectURI)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.tokenURL, strings.NewReader(data.Encode()))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create token exchange request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(domainerrors.ErrProviderUnreachable, "failed to exchange code for token: %v", err)
	}
	defer resp.Body.Close()

	// A non-2xx here means Google rejected the grant itself, which is the
	// caller's authorization code being invalid, expired or already used.
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)

		return nil, errors.Wrapf(domainerrors.ErrOAuthCodeInvalid, "token exchange failed with status %d: %s", resp.StatusCode, string(body))
	}

	var tokenResponse struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
		TokenType    string `json:"token_type"`
		ExpiresIn    int64  `json:"expires_in"`
		Scope        string `json:"scope"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&tokenResponse); err != nil {
		return nil, errors.Wrapf(domainerrors.ErrProviderUnreachable, "failed to decode token response: %v", err)
	}

	bundle := &service.TokenBundle{
		AccessToken:  tokenResponse.AccessToken,
		RefreshToken: tokenResponse.RefreshToken,
		ExpiresIn:    time.Duration(tokenResponse.ExpiresIn) * time.Second,
	}
	if tokenResponse.Scope != "" {
		bundle.Scopes = strings.Fields(tokenResponse.Scope)
	}

	return bundle, nil
}

// FetchUserInfo retrieves identity claims using an access token.
func (p *Provider) FetchUserInfo(ctx context.Context, accessToken string) (*service.OAuthUserInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.userInfoURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create user info request")
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(domainerrors.ErrProviderUnreachable, "failed to get user info: %v", err)
	}
	defer resp.Body.Close()

	// The access token was just minted by the exchange, so a rejection here is
	// an upstream fault rather than anything the client sent.
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)

		return nil, errors.Wrapf(domainerrors.ErrProviderUnreachable, "user info request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var googleUser struct {
		Sub           string `json:"sub"`
		Email         string `json:"email"`
		Name          string `json:"name"`
		GivenName     string `json:"given_name"`
		Picture       string `json:"picture"`
		EmailVerified bool   `json:"email_verified"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&googleUser); err != nil {
		return nil, errors.Wrapf(domainerrors.ErrProviderUnreachable, "failed to decode user info response: %v", err)
	}

	// Field presence checks are the orchestrator's concern; this adapter only
	// normalizes the claim names.
	return &service.OAuthUserInfo{
		Subject:       googleUser.Sub,
		Email:         googleUser.Email,
		Name:          googleUser.Name,
		GivenName:     googleUser.GivenName,
		Picture:       googleUser.Picture,
		EmailVerified: googleUser.EmailVerified,
	}, nil
}

// ProviderID returns the stable enumerated identifier for Google.
func (p *Provider) ProviderID() entity.ProviderID {
	return entity.ProviderGoogle
}
