// Package transport integrates the Plaza signing scheme with the standard
// net/http client plumbing.
//
// SigningRoundTripper wraps any http.RoundTripper so that every request
// dispatched through it carries a fresh Date and Authorization header.
// This is the integration point for code that already owns an *http.Client
// and cannot switch to pkg/client:
//
//	cred, _ := credentials.New("abc", "secret")
//	httpClient := transport.NewSigningHTTPClient(cred)
//
//	// Every request is now signed automatically.
//	resp, err := httpClient.Get("https://plazaapi.bol.com/services/rest/orders/v1/open/")
//
// The round tripper clones each request before attaching headers, so
// callers' requests are never mutated, and reads the body (restoring it on
// the clone) to derive the Content-MD5 canonical field for bodied
// requests.
//
// Classification of failed responses is not done here: a RoundTripper sits
// below that concern. Use pkg/client for the full signed-and-classified
// call path, or run apierr.Classify on the responses yourself.
package transport
