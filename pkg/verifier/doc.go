// Package verifier implements the server side of the Plaza signing scheme:
// authenticating an incoming request by recomputing its signature from the
// shared secret.
//
// It exists for the consumers of this SDK that need a verifying
// counterpart — local stub servers, contract tests, and the
// pkg/server middleware — and as the executable definition of what the
// marketplace does with a signed request.
//
// # Verifying a Request
//
//	resolver := verifier.NewStaticSecretResolver(map[string]string{
//	    "abc": "secret",
//	})
//	v := verifier.NewDefaultVerifier(resolver)
//
//	publicKey, err := v.VerifyHTTPRequest(ctx, req)
//	if err != nil {
//	    // reject: bad signature, stale date, unknown account
//	}
//
// Verification rebuilds the canonical string from the received method,
// body MD5, Content-Type, Date header, and request path, recomputes the
// HMAC-SHA256 signature with the resolved secret, and compares in constant
// time.
//
// # Replay Protection
//
// The Date header must fall within a clock-skew window around the
// verifier's clock (15 minutes by default). A captured request replayed
// later fails this check even though its signature is internally valid.
package verifier
