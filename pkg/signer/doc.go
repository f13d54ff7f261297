// Package signer produces the authentication headers for outgoing Plaza
// marketplace API requests.
//
// The marketplace authenticates callers with a shared-secret scheme: every
// request carries an Authorization header derived from an HMAC-SHA256
// signature over a canonical representation of the request, keyed by the
// merchant account's private key. The private key itself is never
// transmitted.
//
// # Signing a Request
//
//	cred, _ := credentials.New("abc", "secret")
//	s := signer.NewDefaultSigner()
//
//	result, err := s.Prepare(signer.RequestDescriptor{
//	    Method: signer.MethodGet,
//	    Path:   "/services/rest/orders/v1/open/",
//	}, cred)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for name, value := range result.Headers {
//	    req.Header.Set(name, value)
//	}
//
// This attaches Date and Authorization headers (plus Content-Type for
// bodied requests).
//
// # Canonical String
//
// The signature is computed over a newline-joined canonical string with a
// fixed field order:
//
//	<method>\n<content-md5>\n<content-type>\n<date>\n<path>
//
// Fields without a value stay present as empty lines. For a bodiless GET
// the canonical string therefore has exactly four newlines:
//
//	GET\n\n\nTue, 01 Jan 2019 00:00:00 GMT\n/services/rest/orders/v1/open/
//
// The server rebuilds this string from the received request and recomputes
// the signature, so any reordering or omission makes the request fail
// authentication.
//
// # Timestamps
//
// Prepare reads its clock on every call and exposes the exact Date string
// it signed, so the transport can attach the identical value. Reusing a
// SigningResult for a later request puts its Date outside the server's
// clock-skew window and the signature is rejected; sign each request
// independently, including concurrent ones.
//
// # Determinism
//
// Given a fixed clock, identical descriptor and credential always yield an
// identical canonical string and signature. Tests pin the clock with
// WithClock and compare against precomputed golden values.
package signer
