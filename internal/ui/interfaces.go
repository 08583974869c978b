package ui

import (
	"context"

	"github.com/ytget/doc-vault/internal/api"
	"github.com/ytget/doc-vault/internal/model"
)

// AuthAPI is the part of the API the auth panel needs
type AuthAPI interface {
	Login(ctx context.Context, username, password string) error
	Register(ctx context.Context, username, password string) error
}

// UploadAPI is the part of the API the upload panel needs
type UploadAPI interface {
	UploadDocument(ctx context.Context, req api.UploadRequest) (model.Document, error)
}

// DocumentActions is the part of the API the list panel needs
type DocumentActions interface {
	DeleteDocument(ctx context.Context, id model.DocumentID) error
	DownloadDocument(ctx context.Context, id model.DocumentID, title string, saver api.Saver) (*api.DownloadResult, error)
}

var (
	_ AuthAPI         = (api.DocumentAPI)(nil)
	_ UploadAPI       = (api.DocumentAPI)(nil)
	_ DocumentActions = (api.DocumentAPI)(nil)
)
