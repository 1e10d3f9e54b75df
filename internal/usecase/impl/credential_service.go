// Package impl contains the implementations of the application's use cases.
package impl

import (
	"context"
	"log/slog"

	"gradebook/internal/domain/entity"
	domainerrors "gradebook/internal/domain/errors"
	"gradebook/internal/domain/repository"
	"gradebook/internal/domain/service"
	"gradebook/internal/errors"
	"gradebook/internal/usecase"
)

// credentialService implements the CredentialUsecase interface.
type credentialService struct {
	users         repository.UserRepository
	hasher        service.PasswordHasher
	tokenService  service.TokenService
	authenticator service.Authenticator
	logger        *slog.Logger
}

// NewCredentialService is the constructor for credentialService. It receives all dependencies as interfaces.
func NewCredentialService(
	users repository.UserRepository,
	hasher service.PasswordHasher,
	tokenService service.TokenService,
	authenticator service.Authenticator,
	logger *slog.Logger,
) usecase.CredentialUsecase {
	return &credentialService{
		users:         users,
		hasher:        hasher,
		tokenService:  tokenService,
		authenticator: authenticator,
		logger:        logger,
	}
}

// Register hashes the password and persists the user record.
// An absent password is rejected before hashing is attempted; the store's
// unique constraint owns username uniqueness.
func (srv *credentialService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	// An empty request body leaves the bound input nil.
	if input == nil {
		return nil, domainerrors.ErrInvalidArgument.WrapMessage("registration input is required")
	}

	srv.logger.Info("Starting user registration", "username", input.Username)

	if input.Password == nil {
		return nil, domainerrors.ErrPasswordRequired.WrapMessage("registration failed")
	}

	hashedPassword, err := srv.hasher.Hash(*input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password during registration", "error", err)

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	user := &entity.User{
		Username:     input.Username,
		PasswordHash: hashedPassword,
	}

	if err := srv.users.Save(ctx, user); err != nil {
		srv.logger.Error("Failed to persist user during registration", "error", err, "username", input.Username)

		return nil, err
	}

	srv.logger.Debug("User registered successfully", "userID", user.ID)

	return &usecase.RegisterOutput{User: user}, nil
}

// Login authenticates the credentials and issues a token for the username.
// A non-authenticated result maps to the LoginFailed sentinel; errors raised
// by the authenticator propagate unchanged.
func (srv *credentialService) Login(ctx context.Context, input *usecase.LoginInput) (string, error) {
	if input == nil {
		return "", domainerrors.ErrInvalidArgument.WrapMessage("login input is required")
	}

	srv.logger.Debug("Starting user login", "username", input.Username)

	result, err := srv.authenticator.Authenticate(ctx, input.Username, input.Password)
	if err != nil {
		srv.logger.Warn("Login failed", "username", input.Username, "error", err.Error())

		return "", err
	}

	if !result.Authenticated {
		srv.logger.Warn("Login rejected", "username", input.Username)

		return usecase.LoginFailed, nil
	}

	token, err := srv.tokenService.Issue(input.Username)
	if err != nil {
		srv.logger.Error("Failed to issue token", "error", err, "username", input.Username)

		return "", errors.Wrap(err, "failed to issue token")
	}

	srv.logger.Debug("User logged in successfully", "username", input.Username)

	return token, nil
}
