package api

import "fmt"

// NetworkError reports a request that never produced an HTTP response:
// refused connections, DNS failures, timeouts and cancelled contexts.
type NetworkError struct {
	Op  string
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s %s: network error: %v", e.Op, e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ProtocolError reports a response that arrived but cannot be used, either
// because of a non-2xx status or because the body is not valid JSON.
type ProtocolError struct {
	Op         string
	URL        string
	StatusCode int
	Body       string
	Err        error
}

func (e *ProtocolError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s: protocol error (status %d): %v", e.Op, e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s %s: protocol error: unexpected status %d: %s", e.Op, e.URL, e.StatusCode, e.Body)
}

func (e *ProtocolError) Unwrap() error { return e.Err }
