package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mitchell-amasia/bol.com-plaza-api-clients/pkg/verifier"
)

type contextKey string

const accountKey contextKey = "account_public_key"

// ErrorHandler handles verification failures
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// AuthMiddleware provides HTTP middleware for Plaza signature verification.
// It is meant for the verifying side of the scheme: stub marketplace
// servers in tests and local integrations.
type AuthMiddleware struct {
	verifier     verifier.Verifier
	errorHandler ErrorHandler
	optional     bool
}

// NewAuthMiddleware creates middleware verifying against the given secret
// resolver
func NewAuthMiddleware(resolver verifier.SecretResolver) *AuthMiddleware {
	return &AuthMiddleware{
		verifier:     verifier.NewDefaultVerifier(resolver),
		errorHandler: defaultErrorHandler,
		optional:     false,
	}
}

// NewAuthMiddlewareWithVerifier creates middleware with a custom verifier
func NewAuthMiddlewareWithVerifier(v verifier.Verifier) *AuthMiddleware {
	return &AuthMiddleware{
		verifier:     v,
		errorHandler: defaultErrorHandler,
		optional:     false,
	}
}

// SetErrorHandler sets a custom error handler
func (m *AuthMiddleware) SetErrorHandler(handler ErrorHandler) {
	m.errorHandler = handler
}

// SetOptional sets whether signature verification is optional.
// If true, requests without an Authorization header pass through
// unauthenticated.
func (m *AuthMiddleware) SetOptional(optional bool) {
	m.optional = optional
}

// Wrap wraps an HTTP handler with signature verification
func (m *AuthMiddleware) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Skip verification for OPTIONS requests (CORS preflight)
		if r.Method == "OPTIONS" {
			next.ServeHTTP(w, r)
			return
		}

		if r.Header.Get("Authorization") == "" {
			if m.optional {
				next.ServeHTTP(w, r)
				return
			}
			m.errorHandler(w, r, fmt.Errorf("missing authorization header"))
			return
		}

		// The verifier reads and restores the body itself.
		publicKey, err := m.verifier.VerifyHTTPRequest(r.Context(), r)
		if err != nil {
			m.errorHandler(w, r, err)
			return
		}

		ctx := context.WithValue(r.Context(), accountKey, publicKey)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AccountFromContext extracts the authenticated account public key from the
// request context
func AccountFromContext(ctx context.Context) (string, bool) {
	publicKey, ok := ctx.Value(accountKey).(string)
	return publicKey, ok
}

func defaultErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"code":"AUTH-001","message":"request signature rejected"}`))
}
