// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// User is an account that can register and log in. The ID is assigned by the
// credential store on first save and never changes afterwards.
type User struct {
	ID           int    // Store-assigned unique identifier.
	Username     string // Login identifier, unique within the store, case-sensitive.
	PasswordHash string // Bcrypt hash of the user's password. Never the plaintext.
}

// UserPrincipal is the authenticated identity resolved from a stored User.
// It carries only what request handling needs: who the caller is and what
// they are allowed to do.
type UserPrincipal struct {
	Username     string
	PasswordHash string
	Roles        []string
}

// NewUserPrincipal maps a stored User record to its principal.
// Every account carries the single "USER" role.
func NewUserPrincipal(user *User) *UserPrincipal {
	return &UserPrincipal{
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
		Roles:        []string{"USER"},
	}
}
