package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gradebook/internal/domain/entity"
	domainerrors "gradebook/internal/domain/errors"
	"gradebook/internal/domain/repository"
	"gradebook/internal/domain/service"
	"gradebook/internal/errors"
	"gradebook/internal/usecase"
)

// --- fakes ---

type stubUserRepo struct {
	users   map[string]*entity.User
	saveErr error
	nextID  int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: map[string]*entity.User{}, nextID: 1}
}

func (s *stubUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	user, ok := s.users[username]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return user, nil
}

func (s *stubUserRepo) Save(_ context.Context, user *entity.User) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	user.ID = s.nextID
	s.nextID++
	s.users[user.Username] = user

	return nil
}

type stubHasher struct {
	hashErr error
}

func (s *stubHasher) Hash(password string) (string, error) {
	if s.hashErr != nil {
		return "", s.hashErr
	}

	return "hashed:" + password, nil
}

func (s *stubHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}

type stubTokenService struct {
	token string
	err   error
}

func (s *stubTokenService) Issue(subject string) (string, error) {
	if s.err != nil {
		return "", s.err
	}

	return s.token + "." + subject, nil
}

func (s *stubTokenService) ExtractSubject(token string) (string, error) {
	parts := strings.SplitN(token, ".", 2)
	if len(parts) != 2 {
		return "", domainerrors.ErrTokenMalformed
	}

	return parts[1], nil
}

func (s *stubTokenService) Validate(token string, principal *entity.UserPrincipal) (bool, error) {
	subject, err := s.ExtractSubject(token)
	if err != nil {
		return false, err
	}

	return subject == principal.Username, nil
}

type stubAuthenticator struct {
	result *service.AuthResult
	err    error
}

func (s *stubAuthenticator) Authenticate(_ context.Context, _, _ string) (*service.AuthResult, error) {
	return s.result, s.err
}

// --- fixtures ---

type credentialFixtures struct {
	service       usecase.CredentialUsecase
	users         *stubUserRepo
	hasher        *stubHasher
	tokenService  *stubTokenService
	authenticator *stubAuthenticator
}

func createTestCredentialService(t *testing.T) credentialFixtures {
	t.Helper()

	users := newStubUserRepo()
	hasher := &stubHasher{}
	tokenService := &stubTokenService{token: "signed"}
	authenticator := &stubAuthenticator{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewCredentialService(users, hasher, tokenService, authenticator, logger)

	return credentialFixtures{
		service:       svc,
		users:         users,
		hasher:        hasher,
		tokenService:  tokenService,
		authenticator: authenticator,
	}
}

func strPtr(s string) *string { return &s }

// --- tests ---

func TestCredentialService_Register_Success(t *testing.T) {
	fx := createTestCredentialService(t)

	output, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		Username: "john",
		Password: strPtr("secret"),
	})

	require.NoError(t, err)
	require.NotNil(t, output.User)
	assert.Equal(t, 1, output.User.ID)
	assert.Equal(t, "john", output.User.Username)
	assert.NotEqual(t, "secret", output.User.PasswordHash)
	assert.Equal(t, "hashed:secret", output.User.PasswordHash)
}

func TestCredentialService_Register_NilInputFails(t *testing.T) {
	fx := createTestCredentialService(t)

	output, err := fx.service.Register(context.Background(), nil)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidArgument))
}

func TestCredentialService_Register_NilPasswordFails(t *testing.T) {
	fx := createTestCredentialService(t)

	inputs := []*usecase.RegisterInput{
		{Username: "john", Password: nil},
		{Username: "", Password: nil},
	}

	for _, input := range inputs {
		output, err := fx.service.Register(context.Background(), input)
		assert.Nil(t, output)
		assert.True(t, errors.Is(err, domainerrors.ErrPasswordRequired))
	}
}

func TestCredentialService_Register_EmptyPasswordIsHashed(t *testing.T) {
	fx := createTestCredentialService(t)

	output, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		Username: "john",
		Password: strPtr(""),
	})

	require.NoError(t, err)
	assert.Equal(t, "hashed:", output.User.PasswordHash)
}

func TestCredentialService_Register_StoreErrorPropagates(t *testing.T) {
	fx := createTestCredentialService(t)
	storeErr := errors.New("disk full")
	fx.users.saveErr = storeErr

	output, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		Username: "john",
		Password: strPtr("secret"),
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, storeErr))
}

func TestCredentialService_Login_Success(t *testing.T) {
	fx := createTestCredentialService(t)
	fx.authenticator.result = &service.AuthResult{
		Authenticated: true,
		Principal:     &entity.UserPrincipal{Username: "john", Roles: []string{"USER"}},
	}

	token, err := fx.service.Login(context.Background(), &usecase.LoginInput{
		Username: "john",
		Password: "secret",
	})

	require.NoError(t, err)
	assert.Equal(t, "signed.john", token)
}

func TestCredentialService_Login_NilInputFails(t *testing.T) {
	fx := createTestCredentialService(t)

	token, err := fx.service.Login(context.Background(), nil)
	assert.Empty(t, token)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidArgument))
}

func TestCredentialService_Login_RejectedReturnsFailSentinel(t *testing.T) {
	fx := createTestCredentialService(t)
	fx.authenticator.result = &service.AuthResult{Authenticated: false}

	token, err := fx.service.Login(context.Background(), &usecase.LoginInput{
		Username: "john",
		Password: "wrong",
	})

	require.NoError(t, err)
	assert.Equal(t, usecase.LoginFailed, token)
}

func TestCredentialService_Login_AuthenticatorErrorPropagatesUnchanged(t *testing.T) {
	fx := createTestCredentialService(t)
	authErr := domainerrors.ErrCredentialMismatch.WrapMessage("authentication failed")
	fx.authenticator.err = authErr

	token, err := fx.service.Login(context.Background(), &usecase.LoginInput{
		Username: "ghost",
		Password: "secret",
	})

	assert.Empty(t, token)
	assert.Equal(t, authErr, err)
}

func TestCredentialService_Login_TokenIssueFailure(t *testing.T) {
	fx := createTestCredentialService(t)
	fx.authenticator.result = &service.AuthResult{
		Authenticated: true,
		Principal:     &entity.UserPrincipal{Username: "john"},
	}
	fx.tokenService.err = errors.New("signing failed")

	token, err := fx.service.Login(context.Background(), &usecase.LoginInput{
		Username: "john",
		Password: "secret",
	})

	assert.Empty(t, token)
	assert.Error(t, err)
}
