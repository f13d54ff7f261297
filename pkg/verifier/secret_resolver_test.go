package verifier

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticSecretResolver_Resolve(t *testing.T) {
	resolver := NewStaticSecretResolver(map[string]string{
		"abc":        "secret",
		"merchant-2": "other-secret",
	})

	secret, err := resolver.Resolve(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, "secret", secret)

	secret, err = resolver.Resolve(context.Background(), "merchant-2")
	require.NoError(t, err)
	assert.Equal(t, "other-secret", secret)
}

func TestStaticSecretResolver_Unknown(t *testing.T) {
	resolver := NewStaticSecretResolver(map[string]string{"abc": "secret"})

	_, err := resolver.Resolve(context.Background(), "nobody")

	assert.ErrorIs(t, err, ErrUnknownPublicKey)
}

func TestStaticSecretResolver_CopiesInput(t *testing.T) {
	source := map[string]string{"abc": "secret"}
	resolver := NewStaticSecretResolver(source)

	source["abc"] = "mutated"
	source["new"] = "added"

	secret, err := resolver.Resolve(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, "secret", secret)

	_, err = resolver.Resolve(context.Background(), "new")
	assert.ErrorIs(t, err, ErrUnknownPublicKey)
}

func TestStaticSecretResolver_ContextCanceled(t *testing.T) {
	resolver := NewStaticSecretResolver(map[string]string{"abc": "secret"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := resolver.Resolve(ctx, "abc")

	assert.ErrorIs(t, err, context.Canceled)
}
