// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"gradebook/config"
	"gradebook/internal/domain/entity"
	domainerrors "gradebook/internal/domain/errors"
	"gradebook/internal/domain/service"
	"gradebook/internal/errors"
)

// minSecretLen enforces an HMAC key of at least 256 bits.
const minSecretLen = 32

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// The signing secret is injected at construction and never mutated afterwards,
// so it is safe for unsynchronized concurrent reads.
type jwtService struct {
	secret []byte
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Signing == "" {
		return nil, errors.New("jwt signing secret must be provided")
	}
	if len(cfg.SecretKey.Signing) < minSecretLen {
		return nil, errors.Errorf("jwt signing secret must be at least %d bytes", minSecretLen)
	}

	return &jwtService{secret: []byte(cfg.SecretKey.Signing)}, nil
}

// Issue creates an HS256-signed token for the subject, valid for the fixed TTL.
// The jti claim makes every issued token unique even within the same second.
func (s *jwtService) Issue(subject string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(service.TokenTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// ExtractSubject parses and signature-verifies the token and returns its subject.
func (s *jwtService) ExtractSubject(tokenString string) (string, error) {
	if err := checkCompactForm(tokenString); err != nil {
		return "", err
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", domainerrors.ErrTokenExpired.WrapMessage("token verification failed")
		case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrSignatureInvalid):
			return "", domainerrors.ErrSignatureMismatch.WrapMessage("token verification failed")
		default:
			return "", domainerrors.ErrTokenMalformed.WrapMessage("token verification failed")
		}
	}
	if !token.Valid {
		return "", domainerrors.ErrSignatureMismatch.WrapMessage("token verification failed")
	}

	return claims.Subject, nil
}

// Validate reports whether the token belongs to the expected principal and is
// still valid. Expiry and signature failures collapse to false; callers that
// need the distinction use ExtractSubject directly.
func (s *jwtService) Validate(tokenString string, principal *entity.UserPrincipal) (bool, error) {
	if tokenString == "" {
		return false, domainerrors.ErrInvalidArgument.WrapMessage("token must not be empty")
	}
	if principal == nil {
		return false, domainerrors.ErrNilIdentity.WrapMessage("expected identity is required")
	}

	subject, err := s.ExtractSubject(tokenString)
	if err != nil {
		if errors.Is(err, domainerrors.ErrTokenExpired) || errors.Is(err, domainerrors.ErrSignatureMismatch) {
			return false, nil
		}

		return false, err
	}

	return subject == principal.Username, nil
}

// checkCompactForm rejects anything that is not exactly three non-empty
// dot-separated segments before handing the token to the parser.
func checkCompactForm(tokenString string) error {
	segments := strings.Split(tokenString, ".")
	if len(segments) != 3 {
		return domainerrors.ErrTokenMalformed.WrapMessage("token must have exactly three segments")
	}
	for _, segment := range segments {
		if segment == "" {
			return domainerrors.ErrTokenMalformed.WrapMessage("token segment must not be empty")
		}
	}

	return nil
}
