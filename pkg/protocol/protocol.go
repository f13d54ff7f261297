package protocol

import (
	"errors"
	"fmt"
	"strings"
)

// Header names used by the signing scheme.
const (
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"
	HeaderDate          = "Date"
)

// Content types the marketplace API serves.
const (
	ContentTypeJSON = "application/json"
	ContentTypeXML  = "application/xml"
	ContentTypeCSV  = "text/csv"
)

// AuthScheme is the Authorization header scheme prefix of the Plaza
// signing protocol.
const AuthScheme = "hmac"

// ErrMalformedAuthorization indicates an Authorization header value that
// does not match "hmac <publicKey>:<signature>".
var ErrMalformedAuthorization = errors.New("malformed authorization header")

// FormatAuthorization renders the Authorization header value for a signed
// request: "hmac <publicKey>:<signature>".
func FormatAuthorization(publicKey, signature string) string {
	return fmt.Sprintf("%s %s:%s", AuthScheme, publicKey, signature)
}

// ParseAuthorization splits an Authorization header value produced by
// FormatAuthorization back into its public key and signature parts.
func ParseAuthorization(value string) (publicKey, signature string, err error) {
	scheme, rest, found := strings.Cut(value, " ")
	if !found || scheme != AuthScheme {
		return "", "", fmt.Errorf("%w: missing %q scheme", ErrMalformedAuthorization, AuthScheme)
	}

	publicKey, signature, found = strings.Cut(rest, ":")
	if !found || publicKey == "" || signature == "" {
		return "", "", fmt.Errorf("%w: expected <publicKey>:<signature>", ErrMalformedAuthorization)
	}

	return publicKey, signature, nil
}
