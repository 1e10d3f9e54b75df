package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"gradebook/config"
	"gradebook/internal/infra/auth"
	"gradebook/internal/usecase"
)

// Wires the real hasher, token service and authenticator against an
// in-memory user repository to exercise the whole register/login flow.
func TestCredentialFlow_RegisterThenLogin(t *testing.T) {
	cfg := &config.Config{}
	cfg.SecretKey.Signing = "end_to_end_test_secret_key_sufficiently_long"

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	users := newStubUserRepo()
	hasher := auth.NewBcryptHasherWithCost(bcrypt.MinCost)
	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)
	authenticator := auth.NewDaoAuthenticator(users, hasher, logger)

	svc := NewCredentialService(users, hasher, tokenService, authenticator, logger)
	ctx := context.Background()

	output, err := svc.Register(ctx, &usecase.RegisterInput{
		Username: "john",
		Password: strPtr("secret"),
	})
	require.NoError(t, err)
	assert.Equal(t, "john", output.User.Username)
	assert.NotEqual(t, "secret", output.User.PasswordHash)

	token, err := svc.Login(ctx, &usecase.LoginInput{Username: "john", Password: "secret"})
	require.NoError(t, err)
	assert.NotEqual(t, usecase.LoginFailed, token)
	assert.Len(t, strings.Split(token, "."), 3)

	subject, err := tokenService.ExtractSubject(token)
	require.NoError(t, err)
	assert.Equal(t, "john", subject)

	// Wrong password surfaces as the literal failure sentinel.
	token, err = svc.Login(ctx, &usecase.LoginInput{Username: "john", Password: "nope"})
	require.NoError(t, err)
	assert.Equal(t, usecase.LoginFailed, token)

	// Unknown username propagates the credential-mismatch error.
	_, err = svc.Login(ctx, &usecase.LoginInput{Username: "ghost", Password: "secret"})
	assert.Error(t, err)
}
