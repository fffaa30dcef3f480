// Package auth verifies the manager's credentials and issues the session
// tokens that gate the admin API. The ledger itself is auth-unaware.
package auth

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// Provider answers a single credential check.
type Provider interface {
	Verify(username, password string) bool
}

// StaticProvider checks against one configured account. When PasswordHash
// is set it takes precedence over the plain Password.
type StaticProvider struct {
	Username     string
	Password     string
	PasswordHash string
}

func (p StaticProvider) Verify(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(p.Username)) == 1

	if p.PasswordHash != "" {
		err := bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(password))
		return userOK && err == nil
	}
	if p.Password == "" {
		return false
	}
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(p.Password)) == 1
	return userOK && passOK
}
