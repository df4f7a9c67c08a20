package isdayoff

import "fmt"

// TransportError reports a failure before a response body was obtained:
// DNS, connection, timeout, cancellation or a non-2xx status.
type TransportError struct {
	URL        string
	StatusCode int    // 0 when no response was received
	Body       string // response body for non-2xx statuses, e.g. "100" for a bad date
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("isdayoff: request %s returned status %d: %s", e.URL, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("isdayoff: request %s failed: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError reports a response body that is not a valid status string
// for the call shape.
type DecodeError struct {
	Body   string
	Pos    int // offending byte position, -1 when the body length is wrong
	Reason string
}

func (e *DecodeError) Error() string {
	if e.Pos < 0 {
		return fmt.Sprintf("isdayoff: decode %q: %s", e.Body, e.Reason)
	}
	return fmt.Sprintf("isdayoff: decode %q: %s at position %d", e.Body, e.Reason, e.Pos)
}
