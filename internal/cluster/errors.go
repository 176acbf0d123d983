package cluster

import "fmt"

// The three failure classes a fetch can produce. The refresh layer treats
// them uniformly; the types exist so callers that care can tell a dead
// connection from a surprising payload.

// TransportError wraps a failure to execute the HTTP request at all
// (connection refused, timeout, DNS).
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return fmt.Sprintf("request failed: %v", e.Err) }
func (e *TransportError) Unwrap() error { return e.Err }

// ProtocolError reports a non-2xx HTTP response.
type ProtocolError struct {
	Status int
	Path   string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("%s returned status %d", e.Path, e.Status)
}

// DecodeError wraps a response body that did not match the expected shape.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string { return fmt.Sprintf("invalid response json: %v", e.Err) }
func (e *DecodeError) Unwrap() error { return e.Err }
