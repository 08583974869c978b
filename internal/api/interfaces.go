package api

import (
	"context"
	"io"

	"github.com/ytget/doc-vault/internal/model"
)

// DocumentAPI defines the operations the UI and the vault coordinator use.
type DocumentAPI interface {
	ListDocuments(ctx context.Context, filter model.DocumentFilter) ([]model.Document, error)
	Register(ctx context.Context, username, password string) error
	Login(ctx context.Context, username, password string) error
	UploadDocument(ctx context.Context, req UploadRequest) (model.Document, error)
	DeleteDocument(ctx context.Context, id model.DocumentID) error

	// DownloadDocument fetches the document bytes and hands them to saver
	// under a derived file name. title may be empty.
	DownloadDocument(ctx context.Context, id model.DocumentID, title string, saver Saver) (*DownloadResult, error)
}

// Saver persists a downloaded file. It returns where the file ended up.
type Saver interface {
	SaveFile(ctx context.Context, name, contentType string, src io.Reader) (string, error)
}

// SaverFunc adapts a plain function to Saver.
type SaverFunc func(ctx context.Context, name, contentType string, src io.Reader) (string, error)

// SaveFile calls f
func (f SaverFunc) SaveFile(ctx context.Context, name, contentType string, src io.Reader) (string, error) {
	return f(ctx, name, contentType, src)
}

var _ DocumentAPI = (*Client)(nil)
