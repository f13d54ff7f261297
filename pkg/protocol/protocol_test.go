package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatAuthorization(t *testing.T) {
	value := FormatAuthorization("abc", "c2lnbmF0dXJl")

	assert.Equal(t, "hmac abc:c2lnbmF0dXJl", value)
}

func TestParseAuthorization(t *testing.T) {
	pub, sig, err := ParseAuthorization("hmac abc:c2lnbmF0dXJl")

	require.NoError(t, err)
	assert.Equal(t, "abc", pub)
	assert.Equal(t, "c2lnbmF0dXJl", sig)
}

func TestParseAuthorization_RoundTrip(t *testing.T) {
	pub, sig, err := ParseAuthorization(FormatAuthorization("merchant-1", "s1g=="))

	require.NoError(t, err)
	assert.Equal(t, "merchant-1", pub)
	assert.Equal(t, "s1g==", sig)
}

func TestParseAuthorization_Malformed(t *testing.T) {
	cases := []string{
		"",
		"hmac",
		"hmac abc",
		"hmac :sig",
		"hmac abc:",
		"Bearer abc:sig",
	}

	for _, value := range cases {
		_, _, err := ParseAuthorization(value)
		assert.ErrorIs(t, err, ErrMalformedAuthorization, "value %q", value)
	}
}

func TestIsStructured(t *testing.T) {
	assert.True(t, IsStructured("application/json"))
	assert.True(t, IsStructured("application/json; charset=utf-8"))
	assert.True(t, IsStructured("application/xml"))
	assert.True(t, IsStructured("text/xml"))
	assert.False(t, IsStructured("text/csv"))
	assert.False(t, IsStructured(""))
}
