package verifier

import (
	"context"
	"errors"
	"fmt"
)

// ErrUnknownPublicKey indicates no secret is registered for the presented
// public key.
var ErrUnknownPublicKey = errors.New("unknown public key")

// SecretResolver maps a public key (the clear-text account identifier) to
// the private key it shares with the server. Implementations back this
// with whatever store holds account credentials.
type SecretResolver interface {
	// Resolve returns the private key for the given public key, or
	// ErrUnknownPublicKey when the account is not registered.
	Resolve(ctx context.Context, publicKey string) (string, error)
}

// StaticSecretResolver is a fixed in-memory SecretResolver, suitable for
// tests and local stub servers.
type StaticSecretResolver struct {
	secrets map[string]string
}

// NewStaticSecretResolver creates a resolver over a fixed public-to-private
// key map. The map is copied; later mutation of the argument has no effect.
func NewStaticSecretResolver(secrets map[string]string) *StaticSecretResolver {
	copied := make(map[string]string, len(secrets))
	for pub, priv := range secrets {
		copied[pub] = priv
	}
	return &StaticSecretResolver{secrets: copied}
}

// Resolve returns the registered private key for publicKey.
func (r *StaticSecretResolver) Resolve(ctx context.Context, publicKey string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("context error: %w", err)
	}

	secret, ok := r.secrets[publicKey]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownPublicKey, publicKey)
	}
	return secret, nil
}
