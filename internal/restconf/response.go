package restconf

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
)

// Response is a fully read HTTP response.
type Response struct {
	Method     string
	URL        string
	StatusCode int
	Body       []byte
}

// OK reports a 2xx status.
func (r *Response) OK() bool {
	return r != nil && r.StatusCode >= 200 && r.StatusCode < 300
}

// NotFound reports a 404 status.
func (r *Response) NotFound() bool {
	return r != nil && r.StatusCode == http.StatusNotFound
}

// Err returns a *StatusError for non-2xx responses and nil otherwise.
func (r *Response) Err() error {
	if r == nil || r.OK() {
		return nil
	}
	return &StatusError{
		Method:     r.Method,
		URL:        r.URL,
		StatusCode: r.StatusCode,
		Body:       r.Body,
		Errors:     parseErrors(r.Body),
	}
}

// JSON returns the body as JSON for diagnostics. Empty bodies yield nil; bodies that
// are not valid JSON are returned as a JSON string.
func (r *Response) JSON() json.RawMessage {
	if r == nil {
		return nil
	}
	trimmed := bytes.TrimSpace(r.Body)
	if len(trimmed) == 0 {
		return nil
	}
	if json.Valid(trimmed) {
		return json.RawMessage(trimmed)
	}
	quoted, err := json.Marshal(string(trimmed))
	if err != nil {
		return nil
	}
	return quoted
}

// TransportError is a connection-level failure: DNS, TLS, refused connection, timeout.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

// Unwrap exposes the underlying error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// StatusError reports an unexpected HTTP status.
type StatusError struct {
	Method     string
	URL        string
	StatusCode int
	Body       []byte
	Errors     []ErrorInfo
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("%s %s: unexpected status %d", e.Method, e.URL, e.StatusCode)
	if len(e.Errors) > 0 && e.Errors[0].Message != "" {
		msg += ": " + e.Errors[0].Message
	}
	return msg
}

// ErrorInfo is one entry of an ietf-restconf:errors body.
type ErrorInfo struct {
	Type    string `json:"error-type"`
	Tag     string `json:"error-tag"`
	Path    string `json:"error-path,omitempty"`
	Message string `json:"error-message,omitempty"`
}

type errorsBody struct {
	Errors struct {
		Error []ErrorInfo `json:"error"`
	} `json:"ietf-restconf:errors"`
}

func parseErrors(body []byte) []ErrorInfo {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	var parsed errorsBody
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil
	}
	return parsed.Errors.Error
}
