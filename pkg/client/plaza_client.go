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

package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/mitchell-amasia/bol.com-plaza-api-clients/pkg/apierr"
	"github.com/mitchell-amasia/bol.com-plaza-api-clients/pkg/credentials"
	"github.com/mitchell-amasia/bol.com-plaza-api-clients/pkg/signer"
)

// ErrMissingBaseURL indicates an empty base URL was supplied at
// construction.
var ErrMissingBaseURL = errors.New("base URL must not be empty")

// Client is an HTTP client for the Plaza marketplace API that signs every
// outgoing request. It holds no mutable state beyond the immutable
// credential and is safe for concurrent use.
type Client struct {
	baseURL    string
	cred       credentials.Credential
	signer     signer.Signer
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. Timeouts, proxies,
// and connection pooling are configured there; the Client itself owns no
// transport concerns.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithSigner replaces the request signer.
func WithSigner(s signer.Signer) Option {
	return func(c *Client) {
		if s != nil {
			c.signer = s
		}
	}
}

// NewClient creates a Client for the given marketplace base URL and account
// credential. The base URL and both credential parts must be non-empty;
// violations fail here, once, so per-request signing cannot fail on them.
func NewClient(baseURL, publicKey, privateKey string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("invalid configuration: %w", ErrMissingBaseURL)
	}

	cred, err := credentials.New(publicKey, privateKey)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	c := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		cred:       cred,
		signer:     signer.NewDefaultSigner(),
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Response is the discriminated result of a dispatched call: either the
// call succeeded and Body holds the payload, or Do also returned a
// classified error describing the failure.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Do signs and dispatches one request. The path is the portion after the
// host, including any query string, and must start with "/".
//
// A fresh timestamp and signature are generated per call; the Date header
// sent is byte-identical to the one signed. On a non-2xx status Do returns
// the response together with a *apierr.ClassifiedError; on network-level
// failure it returns a *TransportError and no response.
func (c *Client) Do(ctx context.Context, method signer.Method, path, contentType string, body []byte) (*Response, error) {
	result, err := c.signer.Prepare(signer.RequestDescriptor{
		Method:      method,
		Path:        path,
		ContentType: contentType,
		Body:        body,
	}, c.cred)
	if err != nil {
		return nil, fmt.Errorf("failed to sign request: %w", err)
	}

	var bodyReader io.Reader
	if body != nil {
		bodyReader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, string(method), c.baseURL+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	for name, value := range result.Headers {
		req.Header.Set(name, value)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{URL: c.baseURL + path, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{URL: c.baseURL + path, Err: err}
	}

	response := &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       respBody,
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return response, apierr.Classify(resp.StatusCode, respBody, resp.Header.Get("Content-Type"))
	}

	return response, nil
}

// Get sends a signed GET request.
func (c *Client) Get(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, signer.MethodGet, path, "", nil)
}

// Post sends a signed POST request.
func (c *Client) Post(ctx context.Context, path, contentType string, body []byte) (*Response, error) {
	return c.Do(ctx, signer.MethodPost, path, contentType, body)
}

// Put sends a signed PUT request.
func (c *Client) Put(ctx context.Context, path, contentType string, body []byte) (*Response, error) {
	return c.Do(ctx, signer.MethodPut, path, contentType, body)
}

// Delete sends a signed DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, signer.MethodDelete, path, "", nil)
}

// PublicKey returns the account identifier this client signs with.
func (c *Client) PublicKey() string {
	return c.cred.PublicKey()
}

// BaseURL returns the marketplace base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}
