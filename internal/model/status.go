package model

// UploadStatus represents the state of the upload panel's draft
type UploadStatus string

const (
	// UploadStatusIdle means nothing is being submitted
	UploadStatusIdle UploadStatus = "Idle"

	// UploadStatusUploading means the upload request is in flight
	UploadStatusUploading UploadStatus = "Uploading"

	// UploadStatusCompleted means the server acknowledged the upload
	UploadStatusCompleted UploadStatus = "Completed"

	// UploadStatusFailed means the upload request was rejected or never reached the server
	UploadStatusFailed UploadStatus = "Failed"
)

// String returns the string representation of UploadStatus
func (us UploadStatus) String() string {
	return string(us)
}

// IsActive returns true while a submission is in flight
func (us UploadStatus) IsActive() bool {
	return us == UploadStatusUploading
}

// IsFinished returns true if the last submission ended (completed or failed)
func (us UploadStatus) IsFinished() bool {
	return us == UploadStatusCompleted || us == UploadStatusFailed
}

// AuthMode selects which credential call the auth panel issues
type AuthMode string

const (
	AuthModeLogin    AuthMode = "login"
	AuthModeRegister AuthMode = "register"
)

// Toggle returns the other mode
func (m AuthMode) Toggle() AuthMode {
	if m == AuthModeLogin {
		return AuthModeRegister
	}
	return AuthModeLogin
}
