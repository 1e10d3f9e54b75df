package auth

import (
	"context"
	"log/slog"

	"gradebook/internal/domain/entity"
	domainerrors "gradebook/internal/domain/errors"
	"gradebook/internal/domain/repository"
	"gradebook/internal/domain/service"
	"gradebook/internal/errors"
)

// daoAuthenticator matches credentials against the user repository using the
// configured password hasher.
type daoAuthenticator struct {
	users  repository.UserRepository
	hasher service.PasswordHasher
	logger *slog.Logger
}

// NewDaoAuthenticator is the constructor for daoAuthenticator.
func NewDaoAuthenticator(
	users repository.UserRepository,
	hasher service.PasswordHasher,
	logger *slog.Logger,
) service.Authenticator {
	return &daoAuthenticator{
		users:  users,
		hasher: hasher,
		logger: logger,
	}
}

// Authenticate looks the username up in the store and checks the password.
// An unknown username is a credential-mismatch error; a wrong password is a
// non-authenticated result. Store failures propagate unchanged.
func (a *daoAuthenticator) Authenticate(ctx context.Context, username, password string) (*service.AuthResult, error) {
	user, err := a.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			a.logger.Debug("Authentication rejected: unknown username", "username", username)

			return nil, domainerrors.ErrCredentialMismatch.WrapMessage("authentication failed")
		}

		return nil, err
	}

	if !a.hasher.Check(password, user.PasswordHash) {
		a.logger.Debug("Authentication rejected: password mismatch", "username", username)

		return &service.AuthResult{Authenticated: false}, nil
	}

	return &service.AuthResult{
		Authenticated: true,
		Principal:     entity.NewUserPrincipal(user),
	}, nil
}
