package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ytget/doc-vault/internal/model"
)

func modelID(id string) model.DocumentID {
	return model.DocumentID(id)
}

func TestNewAPIError_DecodesEnvelope(t *testing.T) {
	err := newAPIError(400, []byte(`{"error":"Username taken"}`))
	assert.Equal(t, "Username taken", err.ErrorText)
	assert.Equal(t, "request failed with status code 400: Username taken", err.Error())

	err = newAPIError(500, []byte(`{"message":"Storage unavailable"}`))
	assert.Equal(t, "Storage unavailable", err.Message)
	assert.Equal(t, "request failed with status code 500: Storage unavailable", err.Error())

	err = newAPIError(502, []byte(`<html>Bad Gateway</html>`))
	assert.Empty(t, err.ErrorText)
	assert.Empty(t, err.Message)
	assert.Equal(t, "request failed with status code 502", err.Error())
}

func TestServerFieldsThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("login: %w", newAPIError(401, []byte(`{"error":"Invalid credentials","message":"denied"}`)))
	assert.Equal(t, "Invalid credentials", ServerError(wrapped))
	assert.Equal(t, "denied", ServerMessage(wrapped))

	plain := errors.New("boom")
	assert.Empty(t, ServerError(plain))
	assert.Empty(t, ServerMessage(plain))
}

type timeoutError struct{}

func (timeoutError) Error() string   { return "i/o timeout" }
func (timeoutError) Timeout() bool   { return true }
func (timeoutError) Temporary() bool { return true }

func TestIsConnectivityError(t *testing.T) {
	refused := &net.OpError{Op: "dial", Net: "tcp", Err: os.NewSyscallError("connect", syscall.ECONNREFUSED)}

	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil", nil, false},
		{"refused", refused, true},
		{"wrapped refused", fmt.Errorf("list documents: %w", refused), true},
		{"reset", syscall.ECONNRESET, true},
		{"dns", &net.DNSError{Err: "no such host", Name: "vault.invalid"}, true},
		{"dial timeout", &net.OpError{Op: "dial", Net: "tcp", Err: timeoutError{}}, false},
		{"canceled", context.Canceled, false},
		{"deadline", fmt.Errorf("upload: %w", context.DeadlineExceeded), false},
		{"api error", newAPIError(500, nil), false},
		{"sentinel", fmt.Errorf("delete document 1: %w", ErrConnectivity), true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, IsConnectivityError(test.err))
		})
	}
}
