package service

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound is returned when a successful response holds no usable
// result.
var ErrNotFound = errors.New("postnl: no result in response")

// ResponseError is returned for every non-200 response. Err holds the SOAP
// fault when the body carried one.
type ResponseError struct {
	StatusCode int
	Body       []byte
	Header     http.Header
	// JSONBody is the decoded body of a REST error response, if it was JSON.
	JSONBody any
	Err      error
}

func (e *ResponseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("postnl: unexpected status %d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("postnl: unexpected status %d", e.StatusCode)
}

func (e *ResponseError) Unwrap() error {
	return e.Err
}
