package transport

import (
	"errors"
	"fmt"
	"net/http"
)

// HTTPError is a non-2xx response, with the body kept for context.
type HTTPError struct {
	Op         string
	StatusCode int
	Status     string
	Body       string
}

func (e *HTTPError) Error() string {
	switch {
	case e.Op != "" && e.Body != "":
		return fmt.Sprintf("%s failed with status %d: %s", e.Op, e.StatusCode, e.Body)
	case e.Op != "":
		return fmt.Sprintf("%s failed with status %d", e.Op, e.StatusCode)
	case e.Body != "":
		return fmt.Sprintf("http status %d: %s", e.StatusCode, e.Body)
	default:
		return fmt.Sprintf("http status %d", e.StatusCode)
	}
}

// NewHTTPError builds an HTTPError from a response and its read body.
func NewHTTPError(op string, resp *http.Response, body []byte) *HTTPError {
	status := ""
	code := 0
	if resp != nil {
		status = resp.Status
		code = resp.StatusCode
	}
	return &HTTPError{
		Op:         op,
		StatusCode: code,
		Status:     status,
		Body:       string(body),
	}
}

// IsHTTPStatus reports whether err is an HTTPError with the given status.
func IsHTTPStatus(err error, status int) bool {
	var he *HTTPError
	if errors.As(err, &he) {
		return he.StatusCode == status
	}
	return false
}
