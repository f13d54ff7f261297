package client

import "fmt"

// TransportError is a network-level failure with no HTTP response to
// classify: DNS failure, connection refused, timeout, a broken body read.
// It is surfaced unchanged to the caller and never fed to the classifier.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error calling %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
