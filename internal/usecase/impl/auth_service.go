// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "passport/internal/delivery/context"
	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/repository"
	"passport/internal/domain/service"
	"passport/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface. It orchestrates the
// authorization-code flow: redirect construction, code exchange, identity
// resolution, account upsert and session token issuance.
type authService struct {
	providers    map[entity.ProviderID]service.OAuthProvider
	userUsecase  usecase.UserUsecase
	authRepo     repository.AuthRepository
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	GoogleProvider service.OAuthProvider
	UserUsecase    usecase.UserUsecase
	AuthRepo       repository.AuthRepository
	TokenService   service.TokenService
	Logger         *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	providers := make(map[entity.ProviderID]service.OAuthProvider)
	if params.GoogleProvider != nil {
		providers[params.GoogleProvider.ProviderID()] = params.GoogleProvider
	}

	return &authService{
		providers:    providers,
		userUsecase:  params.UserUsecase,
		authRepo:     params.AuthRepo,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *authService) provider(providerID entity.ProviderID) (service.OAuthProvider, error) {
	provider, ok := srv.providers[providerID]
	if !ok {
		return nil, domainerrors.ErrProviderUnsupported.WrapMessage("no provider registered for " + providerID.String())
	}

	return provider, nil
}

// InitiateLogin builds the provider consent URL the client should be
// redirected to. The anti-forgery state token is generated and embedded in
// the URL but not persisted, so the callback does not validate it.
func (srv *authService) InitiateLogin(ctx context.Context, providerID entity.ProviderID) (*usecase.InitiateLoginOutput, error) {
	provider, err := srv.provider(providerID)
	if err != nil {
		return nil, err
	}

	authURL, state := provider.BuildAuthorizationURL()
	srv.log(ctx).Info("Initiating OAuth login",
		slog.String("provider", providerID.String()),
		slog.String("state", state),
	)

	return &usecase.InitiateLoginOutput{AuthorizationURL: authURL}, nil
}

// CompleteLogin finishes the authorization-code flow. Nothing is persisted
// until the provider has handed over both tokens and a usable identity, so a
// failure partway through leaves the database untouched.
func (srv *authService) CompleteLogin(ctx context.Context, input *usecase.CompleteLoginInput) (*usecase.CompleteLoginOutput, error) {
	provider, err := srv.provider(input.Provider)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Completing OAuth login", slog.String("provider", input.Provider.String()))

	// 1. Trade the authorization code for tokens.
	bundle, err := provider.ExchangeCode(ctx, input.Code)
	if err != nil {
		srv.log(ctx).Warn("Code exchange failed", slog.String("provider", input.Provider.String()), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to exchange authorization code")
	}

	// 2. A missing refresh token means the stored authorization would go
	// stale as soon as the access token expires; fail before touching the
	// provider again.
	if bundle.RefreshToken == "" {
		srv.log(ctx).Warn("Provider issued no refresh token", slog.String("provider", input.Provider.String()))

		return nil, domainerrors.ErrOAuthRefreshTokenMissing.WrapMessage("token response contained no refresh token")
	}

	// 3. Resolve the identity behind the access token.
	userInfo, err := provider.FetchUserInfo(ctx, bundle.AccessToken)
	if err != nil {
		srv.log(ctx).Warn("User info fetch failed", slog.String("provider", input.Provider.String()), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to fetch user info")
	}

	// 4. Without a stable subject id the identity cannot be linked to an
	// authorization record, and without an email the local account has no key
	// to upsert against. Both are defects in the provider's identity
	// assertion, not in anything the client sent.
	if userInfo.Subject == "" {
		srv.log(ctx).Warn("Provider identity has no subject", slog.String("provider", input.Provider.String()))

		return nil, domainerrors.ErrAuthenticationFailed.WrapMessage("identity assertion missing subject claim")
	}
	if userInfo.Email == "" {
		srv.log(ctx).Warn("Provider identity has no email", slog.String("provider", input.Provider.String()))

		return nil, domainerrors.ErrAuthenticationFailed.WrapMessage("identity assertion missing email claim")
	}

	// 5. Create or refresh the local account.
	user, err := srv.userUsecase.UpsertUser(ctx, buildUpsertInput(userInfo))
	if err != nil {
		return nil, errors.Wrap(err, "failed to upsert user")
	}

	// 6. Store the authorization link and tokens, keyed by the provider-side
	// subject so a repeat login updates in place.
	authorization := srv.buildAuthorization(user.ID, input.Provider, userInfo.Subject, bundle)
	if err := srv.authRepo.UpsertAuthorization(ctx, authorization); err != nil {
		srv.log(ctx).Error("Authorization upsert failed", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to upsert authorization")
	}

	// 7. Hand the client a self-contained session token.
	sessionToken, err := srv.tokenService.IssueSessionToken(user.ID)
	if err != nil {
		srv.log(ctx).Error("Session token issuance failed", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrTokenCreationFailed, "failed to issue session token")
	}

	srv.log(ctx).Info("OAuth login completed",
		slog.String("provider", input.Provider.String()),
		slog.Any("userID", user.ID),
	)

	return &usecase.CompleteLoginOutput{
		SessionToken: sessionToken,
		User:         user,
	}, nil
}

// buildUpsertInput maps provider identity claims onto the account profile.
// The given name is preferred for display; the full name is the fallback.
func buildUpsertInput(info *service.OAuthUserInfo) *usecase.UpsertUserInput {
	name := info.GivenName
	if name == "" {
		name = info.Name
	}

	return &usecase.UpsertUserInput{
		Email:     info.Email,
		Name:      name,
		AvatarURL: info.Picture,
	}
}

func (srv *authService) buildAuthorization(userID uuid.UUID, providerID entity.ProviderID, subject string, bundle *service.TokenBundle) *entity.OAuthAuthorization {
	var expiresAt *time.Time
	if bundle.ExpiresIn > 0 {
		t := time.Now().Add(bundle.ExpiresIn)
		expiresAt = &t
	}

	return &entity.OAuthAuthorization{
		UserID:         userID,
		Provider:       providerID,
		ProviderUserID: subject,
		AccessToken:    bundle.AccessToken,
		RefreshToken:   bundle.RefreshToken,
		ExpiresAt:      expiresAt,
		Scopes:         bundle.Scopes,
	}
}
