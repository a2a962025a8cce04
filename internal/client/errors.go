package client

import "fmt"

// RequestFailed reports a backend call that did not produce a usable body:
// network errors, timeouts, non-2xx responses and undecodable payloads.
type RequestFailed struct {
	Op         string
	Path       string
	StatusCode int // 0 when no response was received
	Err        error
}

func (e *RequestFailed) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s %s (status %d): %v", e.Op, e.Path, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *RequestFailed) Unwrap() error { return e.Err }
