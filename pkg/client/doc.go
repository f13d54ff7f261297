// Package client provides an HTTP client for the Plaza marketplace API
// with automatic request signing and typed error classification.
//
// The client wraps a standard http.Client: every outgoing request gets a
// fresh Date timestamp and an HMAC-SHA256 Authorization header derived
// from the merchant account's private key, and every failed response comes
// back as a structured *apierr.ClassifiedError instead of a raw status.
//
// # Basic Usage
//
//	c, err := client.NewClient(
//	    "https://plazaapi.bol.com",
//	    os.Getenv("PLAZA_PUBLIC_KEY"),
//	    os.Getenv("PLAZA_PRIVATE_KEY"),
//	)
//	if err != nil {
//	    log.Fatal(err) // configuration error: empty URL or credential
//	}
//
//	ctx := context.Background()
//	resp, err := c.Get(ctx, "/services/rest/orders/v1/open/")
//
// # Error Handling
//
// Do returns three shapes of outcome:
//
//   - success: a *Response with the payload, nil error
//   - rejected call: the *Response plus a *apierr.ClassifiedError to
//     branch on (category, status, optional code/message/violations)
//   - no response at all: a *TransportError wrapping the network failure
//
//	resp, err := c.Get(ctx, "/services/rest/orders/v1/open/")
//	var classified *apierr.ClassifiedError
//	switch {
//	case err == nil:
//	    // use resp.Body
//	case errors.As(err, &classified):
//	    // typed failure: classified.Category, classified.Status, ...
//	default:
//	    // transport failure, nothing reached the server
//	}
//
// # Custom HTTP Client
//
// Timeouts and pooling belong to the injected http.Client:
//
//	c, err := client.NewClient(baseURL, pub, priv,
//	    client.WithHTTPClient(&http.Client{Timeout: 30 * time.Second}),
//	)
//
// # Concurrency
//
// A Client holds only immutable state and may be shared across goroutines.
// Each call signs independently with its own timestamp, so concurrent
// requests never share a Date header.
package client
