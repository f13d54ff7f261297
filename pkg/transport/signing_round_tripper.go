// Copyright (C) 2025 Mitchell Amasia
//
// This file is part of plaza-api-clients.
//
// plaza-api-clients is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// plaza-api-clients is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with plaza-api-clients.  If not, see <https://www.gnu.org/licenses/>.

package transport

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	"github.com/mitchell-amasia/bol.com-plaza-api-clients/pkg/credentials"
	"github.com/mitchell-amasia/bol.com-plaza-api-clients/pkg/signer"
)

// SigningRoundTripper is an http.RoundTripper that signs every outgoing
// request with the Plaza HMAC-SHA256 scheme. It lets any *http.Client —
// including ones handed to third-party code — speak to the marketplace
// authenticated, without going through pkg/client.
//
// The wrapped request is cloned before headers are attached; the caller's
// request is never modified.
type SigningRoundTripper struct {
	cred   credentials.Credential
	signer signer.Signer
	base   http.RoundTripper
}

// Option configures a SigningRoundTripper.
type Option func(*SigningRoundTripper)

// WithBase sets the underlying RoundTripper (http.DefaultTransport when
// unset).
func WithBase(base http.RoundTripper) Option {
	return func(t *SigningRoundTripper) {
		if base != nil {
			t.base = base
		}
	}
}

// WithSigner replaces the request signer.
func WithSigner(s signer.Signer) Option {
	return func(t *SigningRoundTripper) {
		if s != nil {
			t.signer = s
		}
	}
}

// NewSigningRoundTripper creates a RoundTripper signing with the given
// credential.
func NewSigningRoundTripper(cred credentials.Credential, opts ...Option) *SigningRoundTripper {
	t := &SigningRoundTripper{
		cred:   cred,
		signer: signer.NewDefaultSigner(),
		base:   http.DefaultTransport,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// NewSigningHTTPClient returns an *http.Client whose transport signs every
// request with the given credential.
func NewSigningHTTPClient(cred credentials.Credential, opts ...Option) *http.Client {
	return &http.Client{
		Transport: NewSigningRoundTripper(cred, opts...),
	}
}

// RoundTrip signs req and dispatches it on the underlying transport.
func (t *SigningRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	var body []byte
	if req.Body != nil {
		var err error
		body, err = io.ReadAll(req.Body)
		if err != nil {
			return nil, fmt.Errorf("read request body for signing: %w", err)
		}
		req.Body.Close()
	}

	result, err := t.signer.Prepare(signer.RequestDescriptor{
		Method:      signer.Method(req.Method),
		Path:        req.URL.RequestURI(),
		ContentType: req.Header.Get("Content-Type"),
		Body:        body,
	}, t.cred)
	if err != nil {
		return nil, fmt.Errorf("failed to sign request: %w", err)
	}

	signed := req.Clone(req.Context())
	if body != nil {
		signed.Body = io.NopCloser(bytes.NewReader(body))
		signed.ContentLength = int64(len(body))
	}
	for name, value := range result.Headers {
		signed.Header.Set(name, value)
	}

	return t.base.RoundTrip(signed)
}
