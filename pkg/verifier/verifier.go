package verifier

import (
	"context"
	"net/http"
)

// Verifier authenticates incoming signed requests.
type Verifier interface {
	// VerifyHTTPRequest checks the request's Authorization signature
	// against the canonical string rebuilt from the received request.
	// On success it returns the authenticated account's public key.
	VerifyHTTPRequest(ctx context.Context, req *http.Request) (string, error)
}
