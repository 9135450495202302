package google

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"passport/config"
	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProvider() *Provider {
	cfg := &config.Config{
		GoogleOAuth: &config.GoogleOAuthConfig{
			ClientID:     "test-client-id",
			ClientSecret: "test-client-secret",
			RedirectURI:  "http://localhost:8080/auth/google/callback",
		},
	}

	return NewProvider(cfg).(*Provider)
}

func TestProvider_BuildAuthorizationURL(t *testing.T) {
	provider := newTestProvider()

	authURL, state := provider.BuildAuthorizationURL()
	require.NotEmpty(t, state)

	parsed, err := url.Parse(authURL)
	require.NoError(t, err)
	assert.Equal(t, "accounts.google.com", parsed.Host)

	query := parsed.Query()
	assert.Equal(t, "test-client-id", query.Get("client_id"))
	assert.Equal(t, "http://localhost:8080/auth/google/callback", query.Get("redirect_uri"))
	assert.Equal(t, "openid email profile", query.Get("scope"))
	assert.Equal(t, "code", query.Get("response_type"))
	assert.Equal(t, "offline", query.Get("access_type"))
	assert.Equal(t, "consent", query.Get("prompt"))
	assert.Equal(t, state, query.Get("state"))
}

func TestProvider_BuildAuthorizationURL_FreshStatePerCall(t *testing.T) {
	provider := newTestProvider()

	_, first := provider.BuildAuthorizationURL()
	_, second := provider.BuildAuthorizationURL()
	assert.NotEqual(t, first, second)
}

func TestProvider_ExchangeCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "test-client-id", r.FormValue("client_id"))
		assert.Equal(t, "test-client-secret", r.FormValue("client_secret"))
		assert.Equal(t, "auth-code-123", r.FormValue("code"))
		assert.Equal(t, "authorization_code", r.FormValue("grant_type"))

		json.NewEncoder(w).Encode(map[string]any{
			"access_token":  "AT1",
			"refresh_token": "RT1",
			"token_type":    "Bearer",
			"expires_in":    3599,
			"scope":         "openid email profile",
		})
	}))
	defer server.Close()

	provider := newTestProvider()
	provider.tokenURL = server.URL

	bundle, err := provider.ExchangeCode(context.Background(), "auth-code-123")
	require.NoError(t, err)
	assert.Equal(t, "AT1", bundle.AccessToken)
	assert.Equal(t, "RT1", bundle.RefreshToken)
	assert.Equal(t, 3599*time.Second, bundle.ExpiresIn)
	assert.Equal(t, []string{"openid", "email", "profile"}, bundle.Scopes)
}

func TestProvider_ExchangeCode_Rejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"invalid_grant"}`))
	}))
	defer server.Close()

	provider := newTestProvider()
	provider.tokenURL = server.URL

	bundle, err := provider.ExchangeCode(context.Background(), "used-code")
	require.Error(t, err)
	assert.Nil(t, bundle)
	assert.True(t, errors.Is(err, domainerrors.ErrOAuthCodeInvalid))
}

func TestProvider_ExchangeCode_Unreachable(t *testing.T) {
	provider := newTestProvider()
	provider.tokenURL = "http://127.0.0.1:1" // nothing listens here

	bundle, err := provider.ExchangeCode(context.Background(), "auth-code-123")
	require.Error(t, err)
	assert.Nil(t, bundle)
	assert.True(t, errors.Is(err, domainerrors.ErrProviderUnreachable))
}

func TestProvider_FetchUserInfo(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer AT1", r.Header.Get("Authorization"))

		json.NewEncoder(w).Encode(map[string]any{
			"sub":            "g-42",
			"email":          "a@x.com",
			"name":           "Ann Example",
			"given_name":     "Ann",
			"picture":        "https://example.com/a.png",
			"email_verified": true,
		})
	}))
	defer server.Close()

	provider := newTestProvider()
	provider.userInfoURL = server.URL

	info, err := provider.FetchUserInfo(context.Background(), "AT1")
	require.NoError(t, err)
	assert.Equal(t, "g-42", info.Subject)
	assert.Equal(t, "a@x.com", info.Email)
	assert.Equal(t, "Ann Example", info.Name)
	assert.Equal(t, "Ann", info.GivenName)
	assert.Equal(t, "https://example.com/a.png", info.Picture)
	assert.True(t, info.EmailVerified)
}

func TestProvider_FetchUserInfo_MissingSubjectPassesThrough(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"email": "a@x.com"})
	}))
	defer server.Close()

	provider := newTestProvider()
	provider.userInfoURL = server.URL

	// The adapter normalizes claims only; an absent subject is the caller's
	// problem to detect.
	info, err := provider.FetchUserInfo(context.Background(), "AT1")
	require.NoError(t, err)
	assert.Empty(t, info.Subject)
	assert.Equal(t, "a@x.com", info.Email)
}

func TestProvider_FetchUserInfo_TokenRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"invalid_token"}`))
	}))
	defer server.Close()

	provider := newTestProvider()
	provider.userInfoURL = server.URL

	// The token was minted moments earlier by the exchange, so any non-2xx on
	// the userinfo endpoint counts as an upstream fault, not a client one.
	info, err := provider.FetchUserInfo(context.Background(), "stale")
	require.Error(t, err)
	assert.Nil(t, info)
	assert.True(t, errors.Is(err, domainerrors.ErrProviderUnreachable))
}

func TestProvider_FetchUserInfo_UpstreamOutage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	provider := newTestProvider()
	provider.userInfoURL = server.URL

	info, err := provider.FetchUserInfo(context.Background(), "AT1")
	require.Error(t, err)
	assert.Nil(t, info)
	assert.True(t, errors.Is(err, domainerrors.ErrProviderUnreachable))
	assert.False(t, errors.Is(err, domainerrors.ErrAuthenticationFailed))
}

func TestProvider_ProviderID(t *testing.T) {
	provider := newTestProvider()
	assert.Equal(t, entity.ProviderGoogle, provider.ProviderID())
}

func TestProvider_ExchangeCode_FormEncoding(t *testing.T) {
	var gotContentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		json.NewEncoder(w).Encode(map[string]any{"access_token": "AT1", "refresh_token": "RT1"})
	}))
	defer server.Close()

	provider := newTestProvider()
	provider.tokenURL = server.URL

	_, err := provider.ExchangeCode(context.Background(), "auth-code-123")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(gotContentType, "application/x-www-form-urlencoded"))
}
