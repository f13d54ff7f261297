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

package verifier

import (
	"bytes"
	"context"
	"crypto/hmac"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mitchell-amasia/bol.com-plaza-api-clients/pkg/protocol"
	"github.com/mitchell-amasia/bol.com-plaza-api-clients/pkg/signer"
)

// Verification failures distinguishable by errors.Is.
var (
	// ErrSignatureMismatch indicates the recomputed signature does not
	// match the presented one.
	ErrSignatureMismatch = errors.New("signature mismatch")

	// ErrDateOutOfRange indicates the request's Date header falls outside
	// the allowed clock-skew window, which also rejects replayed requests.
	ErrDateOutOfRange = errors.New("date header outside allowed clock skew")

	// ErrMissingDate indicates the request carries no Date header.
	ErrMissingDate = errors.New("missing date header")

	// ErrMalformedDate indicates a Date header that is not a valid HTTP
	// date.
	ErrMalformedDate = errors.New("malformed date header")
)

// DefaultMaxClockSkew is the widest Date header deviation accepted by a
// DefaultVerifier unless overridden with WithMaxClockSkew.
const DefaultMaxClockSkew = 15 * time.Minute

// DefaultVerifier implements Verifier for the Plaza HMAC-SHA256 scheme. It
// rebuilds the canonical string from the received request exactly as the
// signing side built it and compares signatures in constant time.
type DefaultVerifier struct {
	resolver     SecretResolver
	maxClockSkew time.Duration
	now          func() time.Time
}

// VerifierOption configures a DefaultVerifier.
type VerifierOption func(*DefaultVerifier)

// WithMaxClockSkew overrides the accepted Date header deviation.
func WithMaxClockSkew(skew time.Duration) VerifierOption {
	return func(v *DefaultVerifier) {
		v.maxClockSkew = skew
	}
}

// WithClock replaces the reference clock used for the skew check.
func WithClock(now func() time.Time) VerifierOption {
	return func(v *DefaultVerifier) {
		v.now = now
	}
}

// NewDefaultVerifier creates a DefaultVerifier resolving secrets through
// the given resolver.
func NewDefaultVerifier(resolver SecretResolver, opts ...VerifierOption) *DefaultVerifier {
	v := &DefaultVerifier{
		resolver:     resolver,
		maxClockSkew: DefaultMaxClockSkew,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// VerifyHTTPRequest authenticates req and returns the account public key
// on success. The request body is read to recompute the content MD5 and
// restored afterwards so handlers can still consume it.
func (v *DefaultVerifier) VerifyHTTPRequest(ctx context.Context, req *http.Request) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("context error: %w", err)
	}

	publicKey, presented, err := protocol.ParseAuthorization(req.Header.Get(protocol.HeaderAuthorization))
	if err != nil {
		return "", err
	}

	date := req.Header.Get(protocol.HeaderDate)
	if date == "" {
		return "", ErrMissingDate
	}
	if err := v.checkClockSkew(date); err != nil {
		return "", err
	}

	secret, err := v.resolver.Resolve(ctx, publicKey)
	if err != nil {
		return "", fmt.Errorf("resolve secret: %w", err)
	}

	var body []byte
	if req.Body != nil {
		body, err = io.ReadAll(req.Body)
		if err != nil {
			return "", fmt.Errorf("read request body: %w", err)
		}
		req.Body.Close()
		req.Body = io.NopCloser(bytes.NewReader(body))
	}

	canonical := signer.CanonicalString(signer.RequestDescriptor{
		Method:      signer.Method(req.Method),
		Path:        req.URL.RequestURI(),
		ContentType: req.Header.Get(protocol.HeaderContentType),
		Body:        body,
	}, date)

	expected := signer.Signature(canonical, secret)
	if !hmac.Equal([]byte(expected), []byte(presented)) {
		return "", fmt.Errorf("%w for %s", ErrSignatureMismatch, publicKey)
	}

	return publicKey, nil
}

// checkClockSkew parses the Date header and rejects values outside the
// allowed window around the verifier's clock.
func (v *DefaultVerifier) checkClockSkew(date string) error {
	sent, err := http.ParseTime(date)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedDate, err)
	}

	drift := v.now().Sub(sent)
	if drift < 0 {
		drift = -drift
	}
	if drift > v.maxClockSkew {
		return fmt.Errorf("%w: %s", ErrDateOutOfRange, date)
	}
	return nil
}
