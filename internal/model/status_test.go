package model

import "testing"

func TestUploadStatus_IsActive(t *testing.T) {
	tests := []struct {
		status   UploadStatus
		expected bool
	}{
		{UploadStatusIdle, false},
		{UploadStatusUploading, true},
		{UploadStatusCompleted, false},
		{UploadStatusFailed, false},
	}

	for _, test := range tests {
		result := test.status.IsActive()
		if result != test.expected {
			t.Errorf("UploadStatus(%s).IsActive() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestUploadStatus_IsFinished(t *testing.T) {
	tests := []struct {
		status   UploadStatus
		expected bool
	}{
		{UploadStatusIdle, false},
		{UploadStatusUploading, false},
		{UploadStatusCompleted, true},
		{UploadStatusFailed, true},
	}

	for _, test := range tests {
		result := test.status.IsFinished()
		if result != test.expected {
			t.Errorf("UploadStatus(%s).IsFinished() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestAuthMode_Toggle(t *testing.T) {
	if AuthModeLogin.Toggle() != AuthModeRegister {
		t.Errorf("login should toggle to register")
	}
	if AuthModeRegister.Toggle() != AuthModeLogin {
		t.Errorf("register should toggle to login")
	}
}
