package apierr

import (
	"errors"
	"net/http"

	"github.com/mitchell-amasia/bol.com-plaza-api-clients/pkg/protocol"
)

// parseFailureNote is placed in Message when a structured error body could
// not be decoded.
const parseFailureNote = "unparsable error response body"

// CategoryForStatus maps an HTTP status code to its Category. The mapping
// is fixed policy, not configurable.
func CategoryForStatus(status int) Category {
	switch {
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		return CategoryAuthentication
	case status == http.StatusNotFound:
		return CategoryNotFound
	case status == http.StatusTooManyRequests:
		return CategoryRateLimited
	case status >= 400 && status < 500:
		return CategoryClientRequest
	case status >= 500 && status < 600:
		return CategoryServer
	default:
		return CategoryUnknown
	}
}

// Classify converts a failed HTTP response into a ClassifiedError. It
// always returns a value and never panics: a missing, unstructured, or
// malformed body degrades to a bare status-and-category result.
func Classify(status int, body []byte, contentType string) *ClassifiedError {
	classified := &ClassifiedError{
		Category: CategoryForStatus(status),
		Status:   status,
	}

	if len(body) == 0 || !protocol.IsStructured(contentType) {
		return classified
	}

	doc, err := protocol.ParseErrorDocument(body, contentType)
	if err != nil {
		classified.Message = parseFailureNote
		return classified
	}

	classified.Code = doc.Code
	classified.Message = doc.Message
	for _, v := range doc.Violations {
		classified.Violations = append(classified.Violations, Violation{
			Field:  v.Field,
			Reason: v.Reason,
		})
	}

	return classified
}

// IsNotYetAvailable reports whether err is the marketplace's "resource not
// yet available" signal: download endpoints answer 412 while an export is
// still being generated. Classification stays faithful to the status (412
// maps to CategoryClientRequest); this helper is the caller-side branch.
func IsNotYetAvailable(err error) bool {
	var classified *ClassifiedError
	return errors.As(err, &classified) && classified.Status == http.StatusPreconditionFailed
}
