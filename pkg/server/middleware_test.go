package server

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchell-amasia/bol.com-plaza-api-clients/pkg/credentials"
	"github.com/mitchell-amasia/bol.com-plaza-api-clients/pkg/signer"
	"github.com/mitchell-amasia/bol.com-plaza-api-clients/pkg/verifier"
)

// mockVerifier for testing
type mockVerifier struct {
	shouldSucceed bool
	publicKey     string
}

func (m *mockVerifier) VerifyHTTPRequest(ctx context.Context, req *http.Request) (string, error) {
	if !m.shouldSucceed {
		return "", fmt.Errorf("signature verification failed")
	}
	return m.publicKey, nil
}

func signRequest(t *testing.T, req *http.Request, publicKey, privateKey string, desc signer.RequestDescriptor) {
	t.Helper()
	cred, err := credentials.New(publicKey, privateKey)
	require.NoError(t, err)

	result, err := signer.NewDefaultSigner().Prepare(desc, cred)
	require.NoError(t, err)

	for name, value := range result.Headers {
		req.Header.Set(name, value)
	}
}

func TestAuthMiddleware_ValidSignature(t *testing.T) {
	resolver := verifier.NewStaticSecretResolver(map[string]string{"abc": "secret"})
	middleware := NewAuthMiddleware(resolver)

	var seenAccount string
	handler := middleware.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		account, ok := AccountFromContext(r.Context())
		require.True(t, ok)
		seenAccount = account
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "https://plazaapi.example.com/services/rest/orders/v1/open/", nil)
	signRequest(t, req, "abc", "secret", signer.RequestDescriptor{
		Method: signer.MethodGet,
		Path:   "/services/rest/orders/v1/open/",
	})

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "abc", seenAccount)
}

func TestAuthMiddleware_WrongSecret(t *testing.T) {
	resolver := verifier.NewStaticSecretResolver(map[string]string{"abc": "secret"})
	middleware := NewAuthMiddleware(resolver)

	handler := middleware.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run for a rejected request")
	}))

	req := httptest.NewRequest("GET", "https://plazaapi.example.com/services/rest/orders/v1/open/", nil)
	signRequest(t, req, "abc", "wrong-secret", signer.RequestDescriptor{
		Method: signer.MethodGet,
		Path:   "/services/rest/orders/v1/open/",
	})

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))
	assert.Contains(t, recorder.Body.String(), "AUTH-001")
}

func TestAuthMiddleware_MissingAuthorization(t *testing.T) {
	middleware := NewAuthMiddlewareWithVerifier(&mockVerifier{shouldSucceed: true, publicKey: "abc"})

	handler := middleware.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without authorization")
	}))

	req := httptest.NewRequest("GET", "https://plazaapi.example.com/services/rest/orders/v1/open/", nil)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestAuthMiddleware_OptionalAllowsUnsigned(t *testing.T) {
	middleware := NewAuthMiddlewareWithVerifier(&mockVerifier{shouldSucceed: false})
	middleware.SetOptional(true)

	handler := middleware.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, ok := AccountFromContext(r.Context())
		assert.False(t, ok)
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "https://plazaapi.example.com/services/rest/orders/v1/open/", nil)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestAuthMiddleware_OptionsSkipsVerification(t *testing.T) {
	middleware := NewAuthMiddlewareWithVerifier(&mockVerifier{shouldSucceed: false})

	handler := middleware.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest("OPTIONS", "https://plazaapi.example.com/services/rest/orders/v1/open/", nil)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
}

func TestAuthMiddleware_CustomErrorHandler(t *testing.T) {
	middleware := NewAuthMiddlewareWithVerifier(&mockVerifier{shouldSucceed: false})

	var handledErr error
	middleware.SetErrorHandler(func(w http.ResponseWriter, r *http.Request, err error) {
		handledErr = err
		http.Error(w, "go away", http.StatusForbidden)
	})

	handler := middleware.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest("GET", "https://plazaapi.example.com/services/rest/orders/v1/open/", nil)
	req.Header.Set("Authorization", "hmac abc:invalid")
	req.Header.Set("Date", time.Now().UTC().Format(http.TimeFormat))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusForbidden, recorder.Code)
	assert.Error(t, handledErr)
}
