package impl

import (
	"context"
	"log/slog"

	deliverycontext "passport/internal/delivery/context"
	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/repository"
	"passport/internal/domain/service"
	"passport/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	tokenService service.TokenService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// UpsertUser creates the account on first login and refreshes the profile on
// every later login. The find-then-write pair runs inside one transaction so
// two concurrent first logins with the same email cannot both insert.
func (srv *userService) UpsertUser(ctx context.Context, input *usecase.UpsertUserInput) (*entity.User, error) {
	if input.Email == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("email is required to upsert a user")
	}

	var upsertedUser *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		existing, err := userRepo.FindByEmail(ctx, input.Email)
		if errors.Is(err, repository.ErrUserNotFound) {
			return srv.createUser(ctx, userRepo, input, &upsertedUser)
		}
		if err != nil {
			return errors.Wrap(err, "failed to find user by email")
		}

		return srv.refreshUser(ctx, userRepo, existing, input, &upsertedUser)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute user upsert transaction", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user upsert transaction")
	}

	return upsertedUser, nil
}

func (srv *userService) createUser(ctx context.Context, userRepo repository.UserRepository, input *usecase.UpsertUserInput, out **entity.User) error {
	srv.log(ctx).Info("User not found, creating new account", slog.String("email", input.Email))

	newUser := &entity.User{
		Email:     input.Email,
		Name:      input.Name,
		AvatarURL: input.AvatarURL,
	}

	if err := userRepo.Create(ctx, newUser); err != nil {
		return errors.Wrap(err, "failed to create user")
	}

	*out = newUser

	return nil
}

// refreshUser overwrites profile attributes with the provider's current
// claims. Empty claims leave the stored value alone rather than erasing it.
func (srv *userService) refreshUser(ctx context.Context, userRepo repository.UserRepository, existing *entity.User, input *usecase.UpsertUserInput, out **entity.User) error {
	srv.log(ctx).Debug("Refreshing existing account", slog.Any("userID", existing.ID))

	if input.Name != "" {
		existing.Name = input.Name
	}
	if input.AvatarURL != "" {
		existing.AvatarURL = input.AvatarURL
	}

	if err := userRepo.Update(ctx, existing); err != nil {
		return errors.Wrap(err, "failed to update user")
	}

	*out = existing

	return nil
}

// GetUserByToken verifies a session token and resolves the user it was
// issued for. Verification failures and unknown subjects surface as the same
// invalid-token class.
func (srv *userService) GetUserByToken(ctx context.Context, tokenString string) (*entity.User, error) {
	claims, err := srv.tokenService.VerifySessionToken(tokenString)
	if err != nil {
		srv.log(ctx).Warn("Session token verification failed", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrTokenInvalid, "session token verification failed")
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrTokenInvalid.WrapMessage("token subject no longer exists")
		}

		return nil, errors.Wrap(err, "failed to find user by token subject")
	}

	return user, nil
}
