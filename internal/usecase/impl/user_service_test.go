package impl

import (
	"context"
	"testing"

	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/repository"
	"passport/internal/domain/service"
	mockRepo "passport/internal/mocks/repository"
	mockSvc "passport/internal/mocks/service"
	"passport/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	tokenService *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewUserService(UserServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return userServiceFixtures{
		service:      service,
		txManager:    txManager,
		userRepo:     userRepo,
		tokenService: tokenService,
	}
}

func TestUserService_UpsertUser_CreatesNewAccount(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	input := &usecase.UpsertUserInput{
		Email:     "a@x.com",
		Name:      "Ann",
		AvatarURL: "https://example.com/a.png",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByEmail(ctx, "a@x.com").
				Return(nil, repository.ErrUserNotFound)

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = uuid.New()
				}).
				Return(nil)

			return fn(mockFactory)
		})

	user, err := fx.service.UpsertUser(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, "a@x.com", user.Email)
	assert.Equal(t, "Ann", user.Name)
	assert.Equal(t, "https://example.com/a.png", user.AvatarURL)
}

func TestUserService_UpsertUser_RefreshesExistingAccount(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	existingID := uuid.New()

	input := &usecase.UpsertUserInput{
		Email:     "a@x.com",
		Name:      "Ann",
		AvatarURL: "https://example.com/new.png",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByEmail(ctx, "a@x.com").
				Return(&entity.User{
					ID:        existingID,
					Email:     "a@x.com",
					Name:      "Old Name",
					AvatarURL: "https://example.com/old.png",
				}, nil)

			mockUserRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					assert.Equal(t, existingID, user.ID)
					assert.Equal(t, "Ann", user.Name)
					assert.Equal(t, "https://example.com/new.png", user.AvatarURL)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	user, err := fx.service.UpsertUser(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, existingID, user.ID)
	assert.Equal(t, "Ann", user.Name)
}

func TestUserService_UpsertUser_EmptyClaimsKeepStoredValues(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	existingID := uuid.New()

	input := &usecase.UpsertUserInput{Email: "a@x.com"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByEmail(ctx, "a@x.com").
				Return(&entity.User{
					ID:        existingID,
					Email:     "a@x.com",
					Name:      "Ann",
					AvatarURL: "https://example.com/a.png",
				}, nil)

			mockUserRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					assert.Equal(t, "Ann", user.Name)
					assert.Equal(t, "https://example.com/a.png", user.AvatarURL)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	user, err := fx.service.UpsertUser(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "Ann", user.Name)
}

func TestUserService_UpsertUser_EmptyEmail(t *testing.T) {
	fx := createTestUserService(t)

	user, err := fx.service.UpsertUser(context.Background(), &usecase.UpsertUserInput{Name: "Ann"})

	require.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestUserService_GetUserByToken_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.tokenService.EXPECT().
		VerifySessionToken("session-jwt").
		Return(&service.SessionClaims{UserID: userID}, nil)

	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID, Email: "a@x.com"}, nil)

	user, err := fx.service.GetUserByToken(ctx, "session-jwt")

	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)
}

func TestUserService_GetUserByToken_InvalidToken(t *testing.T) {
	fx := createTestUserService(t)

	fx.tokenService.EXPECT().
		VerifySessionToken("garbage").
		Return(nil, errors.New("failed to parse token structure"))

	user, err := fx.service.GetUserByToken(context.Background(), "garbage")

	require.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestUserService_GetUserByToken_SubjectGone(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.tokenService.EXPECT().
		VerifySessionToken("session-jwt").
		Return(&service.SessionClaims{UserID: userID}, nil)

	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(nil, repository.ErrUserNotFound)

	user, err := fx.service.GetUserByToken(ctx, "session-jwt")

	require.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}
