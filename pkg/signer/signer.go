package signer

import (
	"github.com/mitchell-amasia/bol.com-plaza-api-clients/pkg/credentials"
)

// Method is an HTTP method the marketplace API accepts.
type Method string

const (
	MethodGet    Method = "GET"
	MethodPost   Method = "POST"
	MethodPut    Method = "PUT"
	MethodDelete Method = "DELETE"
)

// Valid reports whether m is one of the accepted methods.
func (m Method) Valid() bool {
	switch m {
	case MethodGet, MethodPost, MethodPut, MethodDelete:
		return true
	}
	return false
}

// RequestDescriptor describes one outgoing request to be signed.
type RequestDescriptor struct {
	// Method is the HTTP method (GET, POST, PUT, DELETE)
	Method Method

	// Path is the portion of the URL after the host, including any query
	// string. Must begin with "/".
	Path string

	// ContentType of the body. Empty for bodiless requests.
	ContentType string

	// Body is the raw request body, used only to derive the Content-MD5
	// field of the canonical string. Nil for bodiless requests.
	Body []byte
}

// SigningResult is the output of Prepare: the header set to attach to the
// outgoing request plus the canonical string the signature was derived
// from.
//
// The Date value in Headers is byte-identical to the one embedded in the
// canonical string; the transport must send it unmodified or the server
// cannot reproduce the signature. CanonicalString is exposed so callers can
// surface it for diagnostics — note that it should be kept out of shared
// logs, since together with a leaked private key it allows signature
// verification by an observer.
type SigningResult struct {
	// Headers always contains Date and Authorization, plus Content-Type
	// when the descriptor carries one.
	Headers map[string]string

	// CanonicalString is the deterministic text the signature was computed
	// over.
	CanonicalString string

	// Date is the exact RFC-1123 timestamp used for signing.
	Date string
}

// Signer produces the authentication header set for outgoing marketplace
// API requests.
type Signer interface {
	// Prepare builds the canonical string for the descriptor, signs it with
	// the credential's private key, and returns the headers to attach.
	// A fresh timestamp is read per call; results must never be reused
	// across requests.
	Prepare(desc RequestDescriptor, cred credentials.Credential) (*SigningResult, error)
}
