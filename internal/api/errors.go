package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"syscall"
)

var (
	ErrNoFile  = errors.New("no file content to upload")
	ErrNoSaver = errors.New("no saver configured for download")

	// ErrConnectivity marks requests that never reached the backend
	ErrConnectivity = errors.New("backend unreachable")
)

// APIError is returned for any non-2xx response.
type APIError struct {
	StatusCode int
	Body       []byte

	// ErrorText and Message mirror the backend's JSON error envelope
	// ({"error": ...} from auth, {"message": ...} from documents).
	ErrorText string
	Message   string
}

func newAPIError(status int, body []byte) *APIError {
	e := &APIError{StatusCode: status, Body: body}

	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		e.ErrorText = payload.Error
		e.Message = payload.Message
	}
	return e
}

func (e *APIError) Error() string {
	switch {
	case e.Message != "":
		return fmt.Sprintf("request failed with status code %d: %s", e.StatusCode, e.Message)
	case e.ErrorText != "":
		return fmt.Sprintf("request failed with status code %d: %s", e.StatusCode, e.ErrorText)
	default:
		return fmt.Sprintf("request failed with status code %d", e.StatusCode)
	}
}

// ServerError returns the backend "error" field carried by err, or "".
func ServerError(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorText
	}
	return ""
}

// ServerMessage returns the backend "message" field carried by err, or "".
func ServerMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return ""
}

// IsConnectivityError reports whether err means the backend could not be
// reached at all: refused or reset connections, dial and DNS failures.
// Timeouts and cancellations are not connectivity errors.
func IsConnectivityError(err error) bool {
	if errors.Is(err, ErrConnectivity) {
		return true
	}
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.ECONNRESET) {
		return true
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return !opErr.Timeout()
	}

	var dnsErr *net.DNSError
	return errors.As(err, &dnsErr)
}
