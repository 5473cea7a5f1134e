package videos

import (
	"errors"
	"fmt"
)

var (
	// ErrProviderUnavailable indicates the analyzer was built without a resolver or fetcher.
	ErrProviderUnavailable = errors.New("video metadata provider unavailable")
	// ErrNoIdentifier indicates no BV identifier could be extracted from the input.
	ErrNoIdentifier = errors.New("no BV identifier found in url")
)

// UpstreamError is a failure reported inside the Bilibili API payload, as
// opposed to a failure of the HTTP exchange itself.
type UpstreamError struct {
	Code    int
	Message string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("bilibili api code %d: %s", e.Code, e.Message)
}

// TransportError wraps failures of an outbound request: DNS, connect,
// timeouts, cancellation and truncated bodies.
type TransportError struct {
	Op  string
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
