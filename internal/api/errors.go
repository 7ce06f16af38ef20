package api

import (
	"encoding/json"
	"fmt"
)

// NetworkError indicates a transport failure or a non-success HTTP
// response from the inference service.
type NetworkError struct {
	Op         string // "create", "status", "answer", "delete"
	URL        string
	StatusCode int // 0 when the request never completed
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: HTTP %d for %s", e.Op, e.StatusCode, e.URL)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// InvalidResponseError indicates the service returned a body that does
// not conform to the documented wire contract.
type InvalidResponseError struct {
	Content json.RawMessage
	Err     error
}

func (e *InvalidResponseError) Error() string {
	return fmt.Sprintf("invalid service response: %v", e.Err)
}

func (e *InvalidResponseError) Unwrap() error { return e.Err }
