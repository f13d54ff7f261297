package protocol

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"strings"
)

// FieldViolation is one field-level rejection inside a validation error
// document.
type FieldViolation struct {
	XMLName xml.Name `json:"-" xml:"Violation"`
	Field   string   `json:"field" xml:"Field"`
	Reason  string   `json:"reason" xml:"Reason"`
}

// ErrorDocument is the structured error body the marketplace API returns on
// rejected requests. JSON endpoints return the lowercase form, XML endpoints
// the capitalized one; both decode into this type.
type ErrorDocument struct {
	XMLName    xml.Name         `json:"-" xml:"Error"`
	Code       string           `json:"code" xml:"Code"`
	Message    string           `json:"message" xml:"Message"`
	Violations []FieldViolation `json:"violations,omitempty" xml:"Violations>Violation"`
}

// serviceErrors is the legacy list form older endpoints return. Only the
// first entry is meaningful to callers.
type serviceErrors struct {
	XMLName xml.Name `xml:"ServiceErrors"`
	Errors  []struct {
		Code    string `xml:"Code"`
		Message string `xml:"Message"`
	} `xml:"ServiceError"`
}

// IsStructured reports whether a Content-Type value indicates a body that
// ParseErrorDocument can interpret. Parameters like charset are tolerated.
func IsStructured(contentType string) bool {
	ct := strings.ToLower(contentType)
	return strings.Contains(ct, "json") || strings.Contains(ct, "xml")
}

// ParseErrorDocument decodes an error response body according to its content
// type. It returns an error for bodies that are not well-formed; callers are
// expected to degrade gracefully rather than propagate it.
func ParseErrorDocument(body []byte, contentType string) (*ErrorDocument, error) {
	ct := strings.ToLower(contentType)

	switch {
	case strings.Contains(ct, "json"):
		var doc ErrorDocument
		if err := json.Unmarshal(body, &doc); err != nil {
			return nil, fmt.Errorf("decode json error document: %w", err)
		}
		return &doc, nil

	case strings.Contains(ct, "xml"):
		var doc ErrorDocument
		if err := xml.Unmarshal(body, &doc); err == nil {
			return &doc, nil
		}

		// Older endpoints wrap errors in a ServiceErrors list.
		var legacy serviceErrors
		if err := xml.Unmarshal(body, &legacy); err != nil {
			return nil, fmt.Errorf("decode xml error document: %w", err)
		}
		if len(legacy.Errors) == 0 {
			return &ErrorDocument{}, nil
		}
		return &ErrorDocument{
			Code:    legacy.Errors[0].Code,
			Message: legacy.Errors[0].Message,
		}, nil

	default:
		return nil, fmt.Errorf("unsupported error document content type %q", contentType)
	}
}
