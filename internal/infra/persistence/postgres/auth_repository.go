package postgres

import (
	"context"
	"strings"

	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/repository"
	"passport/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// authRepository implements the domain.AuthRepository interface using GORM.
type authRepository struct {
	db *gorm.DB
}

// NewAuthRepository is the constructor for authRepository.
func NewAuthRepository(db *gorm.DB) repository.AuthRepository {
	return &authRepository{db: db}
}

// UpsertAuthorization persists the authorization link as a single
// INSERT ... ON CONFLICT (provider_user_id) DO UPDATE statement, so
// concurrent re-logins of the same identity cannot interleave.
func (repo *authRepository) UpsertAuthorization(ctx context.Context, auth *entity.OAuthAuthorization) error {
	authM := fromAuthorizationDomain(auth)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "provider_user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"access_token",
				"refresh_token",
				"expires_at",
				"scope",
				"updated_at",
			}),
		}).
		Create(authM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("authorization references unknown user")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required authorization information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert oauth authorization")
	}

	// Refresh generated values (id and timestamps come back via RETURNING).
	auth.ID = authM.ID
	auth.CreatedAt = authM.CreatedAt
	auth.UpdatedAt = authM.UpdatedAt

	return nil
}

// FindAuthorization retrieves an authorization record by provider and provider-side subject id.
func (repo *authRepository) FindAuthorization(ctx context.Context, provider entity.ProviderID, providerUserID string) (*entity.OAuthAuthorization, error) {
	var authM model.OAuthAuthorizationModel

	err := repo.db.WithContext(ctx).
		Where("provider_id = ? AND provider_user_id = ?", int(provider), providerUserID).
		First(&authM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAuthorizationNotFound
		}

		return nil, errors.Wrap(err, "failed to find oauth authorization")
	}

	return toAuthorizationDomain(&authM), nil
}

// --- Mapper Functions ---

// toAuthorizationDomain converts a GORM model to a domain OAuthAuthorization entity.
func toAuthorizationDomain(data *model.OAuthAuthorizationModel) *entity.OAuthAuthorization {
	if data == nil {
		return nil
	}

	var scopes []string
	if data.Scope != "" {
		scopes = strings.Fields(data.Scope)
	}

	return &entity.OAuthAuthorization{
		ID:             data.ID,
		UserID:         data.UserID,
		Provider:       entity.ProviderID(data.ProviderID),
		ProviderUserID: data.ProviderUserID,
		AccessToken:    data.AccessToken,
		RefreshToken:   data.RefreshToken,
		ExpiresAt:      data.ExpiresAt,
		Scopes:         scopes,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromAuthorizationDomain converts a domain OAuthAuthorization entity to a GORM model.
// Scopes are stored space-joined in a single text column.
func fromAuthorizationDomain(data *entity.OAuthAuthorization) *model.OAuthAuthorizationModel {
	if data == nil {
		return nil
	}

	return &model.OAuthAuthorizationModel{
		ID:             data.ID,
		UserID:         data.UserID,
		ProviderID:     int(data.Provider),
		ProviderUserID: data.ProviderUserID,
		AccessToken:    data.AccessToken,
		RefreshToken:   data.RefreshToken,
		ExpiresAt:      data.ExpiresAt,
		Scope:          strings.Join(data.Scopes, " "),
	}
}
