package ui

import (
	"context"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/ytget/doc-vault/internal/api"
	"github.com/ytget/doc-vault/internal/model"
)

// syncDispatcher runs everything inline
type syncDispatcher struct{}

func (syncDispatcher) Background(fn func())            { fn() }
func (syncDispatcher) Main(fn func())                  { fn() }
func (syncDispatcher) After(_ time.Duration, fn func()) { fn() }

// queuedDispatcher holds background work until flushed
type queuedDispatcher struct {
	pending []func()
}

func (d *queuedDispatcher) Background(fn func())            { d.pending = append(d.pending, fn) }
func (d *queuedDispatcher) Main(fn func())                  { fn() }
func (d *queuedDispatcher) After(_ time.Duration, fn func()) { fn() }

func (d *queuedDispatcher) flush() {
	pending := d.pending
	d.pending = nil
	for _, fn := range pending {
		fn()
	}
}

type recordingNotifier struct {
	infos  []string
	errors []string
}

func (n *recordingNotifier) Info(message string)  { n.infos = append(n.infos, message) }
func (n *recordingNotifier) Error(message string) { n.errors = append(n.errors, message) }

type credentialCall struct {
	username string
	password string
}

type uploadCall struct {
	req     api.UploadRequest
	content string
}

type downloadCall struct {
	id    model.DocumentID
	title string
}

// fakeAPI records every call and answers with canned values
type fakeAPI struct {
	mu sync.Mutex

	listCalls []model.DocumentFilter
	listDocs  []model.Document
	listErr   error

	logins      []credentialCall
	loginErr    error
	registers   []credentialCall
	registerErr error

	uploads   []uploadCall
	uploadDoc model.Document
	uploadErr error

	deletes   []model.DocumentID
	deleteErr error

	downloads      []downloadCall
	downloadResult *api.DownloadResult
	downloadErr    error
}

func (f *fakeAPI) ListDocuments(_ context.Context, filter model.DocumentFilter) ([]model.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls = append(f.listCalls, filter)
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]model.Document(nil), f.listDocs...), nil
}

func (f *fakeAPI) Register(_ context.Context, username, password string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.registers = append(f.registers, credentialCall{username, password})
	return f.registerErr
}

func (f *fakeAPI) Login(_ context.Context, username, password string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.logins = append(f.logins, credentialCall{username, password})
	return f.loginErr
}

func (f *fakeAPI) UploadDocument(_ context.Context, req api.UploadRequest) (model.Document, error) {
	var content []byte
	if req.Content != nil {
		content, _ = io.ReadAll(req.Content)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.uploads = append(f.uploads, uploadCall{req: req, content: string(content)})
	if f.uploadErr != nil {
		return model.Document{}, f.uploadErr
	}
	return f.uploadDoc, nil
}

func (f *fakeAPI) DeleteDocument(_ context.Context, id model.DocumentID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletes = append(f.deletes, id)
	return f.deleteErr
}

func (f *fakeAPI) DownloadDocument(_ context.Context, id model.DocumentID, title string, _ api.Saver) (*api.DownloadResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.downloads = append(f.downloads, downloadCall{id, title})
	if f.downloadErr != nil {
		return nil, f.downloadErr
	}
	return f.downloadResult, nil
}

func textFile(name, content string) *model.SelectedFile {
	return &model.SelectedFile{
		Name: name,
		Size: int64(len(content)),
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader(content)), nil
		},
	}
}
