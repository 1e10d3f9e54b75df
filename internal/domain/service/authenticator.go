package service

import (
	"context"

	"gradebook/internal/domain/entity"
)

// AuthResult is the outcome of a credential check. A non-authenticated
// result carries no principal.
type AuthResult struct {
	Authenticated bool
	Principal     *entity.UserPrincipal
}

// Authenticator matches supplied credentials against stored ones.
//
// Failure surfaces on two paths and callers must handle both: a password
// mismatch yields a result with Authenticated=false, while an unknown
// username yields a credential-mismatch error. Store failures propagate
// unchanged.
type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) (*AuthResult, error)
}
