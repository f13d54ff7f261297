// Package server provides HTTP middleware for Plaza signature verification.
//
// The middleware authenticates incoming requests signed with the Plaza
// HMAC-SHA256 scheme. It exists for the verifying side of the protocol:
// stub marketplace servers in integration tests and local development
// setups that need to behave like the real API.
//
// # Features
//
//   - Signature verification against a pluggable secret resolver
//   - Authenticated account propagation through the request context
//   - Optional verification mode (allow unsigned requests)
//   - CORS preflight support (OPTIONS requests)
//   - Custom error handler support
//   - Request body preservation
//
// # Basic Usage
//
//	resolver := verifier.NewStaticSecretResolver(map[string]string{
//	    "abc": "secret",
//	})
//	middleware := server.NewAuthMiddleware(resolver)
//
//	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
//	    account, ok := server.AccountFromContext(r.Context())
//	    if !ok {
//	        http.Error(w, "Unauthorized", http.StatusUnauthorized)
//	        return
//	    }
//	    fmt.Fprintf(w, "Authenticated as: %s", account)
//	})
//
//	http.Handle("/services/", middleware.Wrap(handler))
//
// # Optional Verification
//
//	// Allow unsigned requests to pass through
//	middleware.SetOptional(true)
//
// # Custom Error Handler
//
//	middleware.SetErrorHandler(func(w http.ResponseWriter, r *http.Request, err error) {
//	    log.Printf("Authentication failed: %v", err)
//	    http.Error(w, "Custom error message", http.StatusForbidden)
//	})
package server
