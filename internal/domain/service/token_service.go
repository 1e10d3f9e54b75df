package service

import (
	"time"

	"gradebook/internal/domain/entity"
)

// TokenTTL is the fixed validity window for every issued token.
const TokenTTL = 30 * time.Hour

// TokenService defines the interface for issuing and verifying signed
// identity tokens. This abstracts the token format from the use cases.
type TokenService interface {
	// Issue creates a signed token for the given subject, valid for TokenTTL
	// from the moment of issuance.
	Issue(subject string) (string, error)

	// ExtractSubject parses and signature-verifies a token and returns its
	// subject. Fails with ErrTokenMalformed when the token is not exactly
	// three non-empty segments or cannot be decoded, ErrSignatureMismatch
	// when the signature does not verify, and ErrTokenExpired when the
	// token is past its expiry.
	ExtractSubject(token string) (string, error)

	// Validate reports whether the token belongs to the expected principal
	// and is still valid. Expiry and signature failures collapse to false;
	// argument-validation and malformed-token errors are returned as errors.
	Validate(token string, principal *entity.UserPrincipal) (bool, error)
}
