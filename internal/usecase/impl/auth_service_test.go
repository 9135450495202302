package impl

import (
	"context"
	"testing"
	"time"

	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/service"
	mockRepo "passport/internal/mocks/repository"
	mockSvc "passport/internal/mocks/service"
	mockUC "passport/internal/mocks/usecase"
	"passport/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	provider     *mockSvc.MockOAuthProvider
	userUsecase  *mockUC.MockUserUsecase
	authRepo     *mockRepo.MockAuthRepository
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	provider := mockSvc.NewMockOAuthProvider(t)
	userUsecase := mockUC.NewMockUserUsecase(t)
	authRepo := mockRepo.NewMockAuthRepository(t)
	tokenService := mockSvc.NewMockTokenService(t)

	// The registry keys providers by their id at construction time.
	provider.EXPECT().ProviderID().Return(entity.ProviderGoogle)

	service := NewAuthService(AuthServiceParams{
		GoogleProvider: provider,
		UserUsecase:    userUsecase,
		AuthRepo:       authRepo,
		TokenService:   tokenService,
		Logger:         newDiscardLogger(),
	})

	return authServiceFixtures{
		service:      service,
		provider:     provider,
		userUsecase:  userUsecase,
		authRepo:     authRepo,
		tokenService: tokenService,
	}
}

func TestAuthService_InitiateLogin_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.provider.EXPECT().
		BuildAuthorizationURL().
		Return("https://accounts.google.com/o/oauth2/v2/auth?state=xyz", "xyz")

	output, err := fx.service.InitiateLogin(ctx, entity.ProviderGoogle)

	require.NoError(t, err)
	assert.Equal(t, "https://accounts.google.com/o/oauth2/v2/auth?state=xyz", output.AuthorizationURL)
}

func TestAuthService_InitiateLogin_UnknownProvider(t *testing.T) {
	fx := createTestAuthService(t)

	output, err := fx.service.InitiateLogin(context.Background(), entity.ProviderUnknown)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrProviderUnsupported))
}

func TestAuthService_CompleteLogin_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.provider.EXPECT().
		ExchangeCode(ctx, "abc123").
		Return(&service.TokenBundle{
			AccessToken:  "AT1",
			RefreshToken: "RT1",
			ExpiresIn:    time.Hour,
			Scopes:       []string{"openid", "email", "profile"},
		}, nil)

	fx.provider.EXPECT().
		FetchUserInfo(ctx, "AT1").
		Return(&service.OAuthUserInfo{
			Subject:   "g-42",
			Email:     "a@x.com",
			Name:      "Ann Example",
			GivenName: "Ann",
			Picture:   "https://example.com/a.png",
		}, nil)

	fx.userUsecase.EXPECT().
		UpsertUser(ctx, &usecase.UpsertUserInput{
			Email:     "a@x.com",
			Name:      "Ann",
			AvatarURL: "https://example.com/a.png",
		}).
		Return(&entity.User{ID: userID, Email: "a@x.com", Name: "Ann"}, nil)

	fx.authRepo.EXPECT().
		UpsertAuthorization(ctx, mock.AnythingOfType("*entity.OAuthAuthorization")).
		Run(func(ctx context.Context, auth *entity.OAuthAuthorization) {
			assert.Equal(t, userID, auth.UserID)
			assert.Equal(t, entity.ProviderGoogle, auth.Provider)
			assert.Equal(t, "g-42", auth.ProviderUserID)
			assert.Equal(t, "AT1", auth.AccessToken)
			assert.Equal(t, "RT1", auth.RefreshToken)
			require.NotNil(t, auth.ExpiresAt)
			assert.WithinDuration(t, time.Now().Add(time.Hour), *auth.ExpiresAt, 5*time.Second)
			assert.Equal(t, []string{"openid", "email", "profile"}, auth.Scopes)
		}).
		Return(nil)

	fx.tokenService.EXPECT().
		IssueSessionToken(userID).
		Return("session-jwt", nil)

	output, err := fx.service.CompleteLogin(ctx, &usecase.CompleteLoginInput{
		Provider: entity.ProviderGoogle,
		Code:     "abc123",
	})

	require.NoError(t, err)
	assert.Equal(t, "session-jwt", output.SessionToken)
	assert.Equal(t, userID, output.User.ID)
}

func TestAuthService_CompleteLogin_ExchangeFails_NothingStored(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.provider.EXPECT().
		ExchangeCode(ctx, "used-code").
		Return(nil, domainerrors.ErrOAuthCodeInvalid.WrapMessage("token exchange failed with status 400"))

	output, err := fx.service.CompleteLogin(ctx, &usecase.CompleteLoginInput{
		Provider: entity.ProviderGoogle,
		Code:     "used-code",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrOAuthCodeInvalid))
	// No expectations were set on the user usecase or the repositories, so
	// any persistence call would fail the test.
}

func TestAuthService_CompleteLogin_MissingRefreshToken(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.provider.EXPECT().
		ExchangeCode(ctx, "abc123").
		Return(&service.TokenBundle{AccessToken: "AT1"}, nil)

	output, err := fx.service.CompleteLogin(ctx, &usecase.CompleteLoginInput{
		Provider: entity.ProviderGoogle,
		Code:     "abc123",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrOAuthRefreshTokenMissing))
}

func TestAuthService_CompleteLogin_MissingSubject(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.provider.EXPECT().
		ExchangeCode(ctx, "abc123").
		Return(&service.TokenBundle{AccessToken: "AT1", RefreshToken: "RT1"}, nil)

	fx.provider.EXPECT().
		FetchUserInfo(ctx, "AT1").
		Return(&service.OAuthUserInfo{Email: "a@x.com"}, nil)

	output, err := fx.service.CompleteLogin(ctx, &usecase.CompleteLoginInput{
		Provider: entity.ProviderGoogle,
		Code:     "abc123",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrAuthenticationFailed))
}

func TestAuthService_CompleteLogin_MissingEmail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.provider.EXPECT().
		ExchangeCode(ctx, "abc123").
		Return(&service.TokenBundle{AccessToken: "AT1", RefreshToken: "RT1"}, nil)

	fx.provider.EXPECT().
		FetchUserInfo(ctx, "AT1").
		Return(&service.OAuthUserInfo{Subject: "g-42", GivenName: "Ann"}, nil)

	output, err := fx.service.CompleteLogin(ctx, &usecase.CompleteLoginInput{
		Provider: entity.ProviderGoogle,
		Code:     "abc123",
	})

	// An identity the account store cannot key on is the provider's fault, so
	// it surfaces as an authentication failure and nothing is persisted.
	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrAuthenticationFailed))
	assert.False(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestAuthService_CompleteLogin_FullNameFallback(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.provider.EXPECT().
		ExchangeCode(ctx, "abc123").
		Return(&service.TokenBundle{AccessToken: "AT1", RefreshToken: "RT1"}, nil)

	fx.provider.EXPECT().
		FetchUserInfo(ctx, "AT1").
		Return(&service.OAuthUserInfo{Subject: "g-42", Email: "a@x.com", Name: "Ann Example"}, nil)

	fx.userUsecase.EXPECT().
		UpsertUser(ctx, &usecase.UpsertUserInput{Email: "a@x.com", Name: "Ann Example"}).
		Return(&entity.User{ID: userID, Email: "a@x.com"}, nil)

	fx.authRepo.EXPECT().
		UpsertAuthorization(ctx, mock.AnythingOfType("*entity.OAuthAuthorization")).
		Return(nil)

	fx.tokenService.EXPECT().
		IssueSessionToken(userID).
		Return("session-jwt", nil)

	_, err := fx.service.CompleteLogin(ctx, &usecase.CompleteLoginInput{
		Provider: entity.ProviderGoogle,
		Code:     "abc123",
	})

	require.NoError(t, err)
}

func TestAuthService_CompleteLogin_RepeatLoginKeyedBySubject(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	userID := uuid.New()

	// Second login for the same identity carries fresh tokens; the upsert must
	// target the same provider-side subject so the record updates in place.
	fx.provider.EXPECT().
		ExchangeCode(ctx, "def456").
		Return(&service.TokenBundle{AccessToken: "AT2", RefreshToken: "RT2"}, nil)

	fx.provider.EXPECT().
		FetchUserInfo(ctx, "AT2").
		Return(&service.OAuthUserInfo{Subject: "g-42", Email: "a@x.com", GivenName: "Ann"}, nil)

	fx.userUsecase.EXPECT().
		UpsertUser(ctx, mock.AnythingOfType("*usecase.UpsertUserInput")).
		Return(&entity.User{ID: userID, Email: "a@x.com"}, nil)

	fx.authRepo.EXPECT().
		UpsertAuthorization(ctx, mock.AnythingOfType("*entity.OAuthAuthorization")).
		Run(func(ctx context.Context, auth *entity.OAuthAuthorization) {
			assert.Equal(t, "g-42", auth.ProviderUserID)
			assert.Equal(t, "AT2", auth.AccessToken)
			assert.Equal(t, "RT2", auth.RefreshToken)
		}).
		Return(nil)

	fx.tokenService.EXPECT().
		IssueSessionToken(userID).
		Return("session-jwt-2", nil)

	output, err := fx.service.CompleteLogin(ctx, &usecase.CompleteLoginInput{
		Provider: entity.ProviderGoogle,
		Code:     "def456",
	})

	require.NoError(t, err)
	assert.Equal(t, "session-jwt-2", output.SessionToken)
}

func TestAuthService_CompleteLogin_TokenIssueFails(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.provider.EXPECT().
		ExchangeCode(ctx, "abc123").
		Return(&service.TokenBundle{AccessToken: "AT1", RefreshToken: "RT1"}, nil)

	fx.provider.EXPECT().
		FetchUserInfo(ctx, "AT1").
		Return(&service.OAuthUserInfo{Subject: "g-42", Email: "a@x.com", GivenName: "Ann"}, nil)

	fx.userUsecase.EXPECT().
		UpsertUser(ctx, mock.AnythingOfType("*usecase.UpsertUserInput")).
		Return(&entity.User{ID: userID}, nil)

	fx.authRepo.EXPECT().
		UpsertAuthorization(ctx, mock.AnythingOfType("*entity.OAuthAuthorization")).
		Return(nil)

	fx.tokenService.EXPECT().
		IssueSessionToken(userID).
		Return("", errors.New("signing failure"))

	output, err := fx.service.CompleteLogin(ctx, &usecase.CompleteLoginInput{
		Provider: entity.ProviderGoogle,
		Code:     "abc123",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenCreationFailed))
}
