package api

import (
	"net/http"

	"go.uber.org/zap"
)

// ConnectivityHint is logged whenever a request cannot reach the backend
const ConnectivityHint = "Backend server is not running. Please start the Spring Boot application on port 8080."

// faultTransport logs a diagnostic hint for connectivity failures and
// passes every response and error through untouched.
type faultTransport struct {
	next   http.RoundTripper
	logger *zap.Logger
}

func newFaultTransport(next http.RoundTripper, logger *zap.Logger) *faultTransport {
	if next == nil {
		next = http.DefaultTransport
	}
	return &faultTransport{next: next, logger: logger}
}

// RoundTrip implements http.RoundTripper
func (t *faultTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.next.RoundTrip(req)
	if err != nil && IsConnectivityError(err) {
		t.logger.Error(ConnectivityHint,
			zap.String("method", req.Method),
			zap.String("url", req.URL.Redacted()),
			zap.Error(err),
		)
	}
	return resp, err
}
