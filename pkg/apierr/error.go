package apierr

import (
	"fmt"
	"strings"
)

// Category partitions failed HTTP responses into the classes callers
// branch on.
type Category string

const (
	// CategoryClientRequest covers 4xx statuses that are not otherwise
	// classified: the request itself was rejected.
	CategoryClientRequest Category = "client_request"

	// CategoryAuthentication covers 401 and 403: the signature or the
	// account's permissions were rejected.
	CategoryAuthentication Category = "authentication"

	// CategoryNotFound covers 404.
	CategoryNotFound Category = "not_found"

	// CategoryRateLimited covers 429. Retryable after backoff.
	CategoryRateLimited Category = "rate_limited"

	// CategoryServer covers 5xx. Retryable.
	CategoryServer Category = "server"

	// CategoryUnknown covers statuses outside the mapped ranges.
	CategoryUnknown Category = "unknown"
)

// Violation is one field-level rejection from a validation error document.
type Violation struct {
	Field  string
	Reason string
}

// ClassifiedError is the typed representation of a failed marketplace API
// response. It is constructed once per failed call and never mutated.
//
// Status and Category are always set. Code, Message, and Violations are
// filled only when the response carried a parseable structured error
// document.
type ClassifiedError struct {
	Category   Category
	Status     int
	Code       string
	Message    string
	Violations []Violation
}

func (e *ClassifiedError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "plaza api: %s (status %d)", e.Category, e.Status)
	if e.Code != "" {
		fmt.Fprintf(&b, " [%s]", e.Code)
	}
	if e.Message != "" {
		fmt.Fprintf(&b, ": %s", e.Message)
	}
	if len(e.Violations) > 0 {
		fmt.Fprintf(&b, " (%d field violations)", len(e.Violations))
	}
	return b.String()
}

// Retryable reports whether the failure class is worth retrying: rate
// limits and server-side errors. Client-side rejections never become valid
// by repetition.
func (e *ClassifiedError) Retryable() bool {
	return e.Category == CategoryRateLimited || e.Category == CategoryServer
}
