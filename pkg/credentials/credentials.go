// Package credentials holds the immutable account credential used to sign
// marketplace API requests.
package credentials

import (
	"errors"
	"fmt"
	"os"
)

// Environment variables read by FromEnv.
const (
	EnvPublicKey  = "PLAZA_PUBLIC_KEY"
	EnvPrivateKey = "PLAZA_PRIVATE_KEY"
)

// Sentinel errors for credential construction. Callers check with
// errors.Is; wrapping preserves the triggering context.
var (
	// ErrMissingPublicKey indicates an empty public key was supplied.
	ErrMissingPublicKey = errors.New("public key must not be empty")

	// ErrMissingPrivateKey indicates an empty private key was supplied.
	ErrMissingPrivateKey = errors.New("private key must not be empty")
)

// Credential is an immutable public/private key pair for one merchant
// account. The public key identifies the account in the clear; the private
// key is the shared secret used to derive request signatures and is never
// transmitted.
//
// A Credential is validated once at construction and never mutated, so a
// single value may be shared freely across concurrent signing operations
// without synchronization.
type Credential struct {
	publicKey  string
	privateKey string
}

// New validates and constructs a Credential. Both keys must be non-empty.
func New(publicKey, privateKey string) (Credential, error) {
	if publicKey == "" {
		return Credential{}, fmt.Errorf("invalid credential: %w", ErrMissingPublicKey)
	}
	if privateKey == "" {
		return Credential{}, fmt.Errorf("invalid credential: %w", ErrMissingPrivateKey)
	}

	return Credential{
		publicKey:  publicKey,
		privateKey: privateKey,
	}, nil
}

// FromEnv constructs a Credential from the PLAZA_PUBLIC_KEY and
// PLAZA_PRIVATE_KEY environment variables. Loading a .env file beforehand
// is the caller's responsibility.
func FromEnv() (Credential, error) {
	return New(os.Getenv(EnvPublicKey), os.Getenv(EnvPrivateKey))
}

// PublicKey returns the clear-text account identifier.
func (c Credential) PublicKey() string {
	return c.publicKey
}

// PrivateKey returns the shared secret. Handle with care: it must never be
// logged or transmitted.
func (c Credential) PrivateKey() string {
	return c.privateKey
}
