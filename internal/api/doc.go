package api

// Package api is the client for the document vault backend. It resolves the
// base URL once, shapes list/auth/upload/delete/download requests, encodes
// multipart uploads, stages downloaded bytes in a temporary file until a
// Saver has persisted them, and logs a hint when the backend is unreachable.
