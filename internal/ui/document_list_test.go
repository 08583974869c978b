package ui

import (
	"errors"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ytget/doc-vault/internal/api"
	"github.com/ytget/doc-vault/internal/model"
)

var sampleDocs = []model.Document{
	{ID: "1", DocumentTitle: "Report", Category: "Reports", UploadDate: "2024-01-15"},
	{ID: "2", DocumentTitle: "Photo", Category: "Images", UploadDate: "2024-02-01"},
}

func newTestDocumentList(t *testing.T, fake *fakeAPI) (*DocumentList, *observer.ObservedLogs) {
	t.Helper()
	test.NewApp()
	core, logs := observer.New(zapcore.DebugLevel)
	return NewDocumentList(fake, api.SaverFunc(nil), syncDispatcher{}, NewLocalization(), zap.New(core)), logs
}

func TestDocumentListRendersHeadingAndEmptyText(t *testing.T) {
	list, _ := newTestDocumentList(t, &fakeAPI{})

	assert.Equal(t, "Documents (0)", list.headingLabel.Text)
	assert.True(t, list.emptyLabel.Visible())
	assert.Equal(t, "No documents uploaded yet.", list.emptyLabel.Text)

	list.SetDocuments(sampleDocs)
	assert.Equal(t, "Documents (2)", list.headingLabel.Text)
	assert.False(t, list.emptyLabel.Visible())
	assert.Equal(t, 2, list.list.Length())
}

func TestDocumentListRow(t *testing.T) {
	test.NewApp()
	row := NewDocumentRow(sampleDocs[0], NewLocalization())

	assert.Contains(t, row.titleLabel.Text, "Report")
	assert.Equal(t, "Reports · 2024-01-15", row.metaLabel.Text)
	assert.Equal(t, "Download", row.downloadBtn.Text)
	assert.Equal(t, "Delete", row.deleteBtn.Text)

	var deleted, downloaded []model.Document
	row.SetCallbacks(
		func(doc model.Document) { downloaded = append(downloaded, doc) },
		func(doc model.Document) { deleted = append(deleted, doc) },
	)
	row.UpdateDocument(sampleDocs[1])
	test.Tap(row.deleteBtn)
	test.Tap(row.downloadBtn)

	assert.Equal(t, []model.Document{sampleDocs[1]}, deleted)
	assert.Equal(t, []model.Document{sampleDocs[1]}, downloaded)
}

func TestDocumentListDelete(t *testing.T) {
	fake := &fakeAPI{}
	list, _ := newTestDocumentList(t, fake)
	var removed []model.DocumentID
	list.SetOnDelete(func(id model.DocumentID) { removed = append(removed, id) })

	list.Delete(sampleDocs[0])

	assert.Equal(t, []model.DocumentID{"1"}, fake.deletes)
	assert.Equal(t, []model.DocumentID{"1"}, removed)
}

func TestDocumentListDeleteFailure(t *testing.T) {
	fake := &fakeAPI{deleteErr: errors.New("boom")}
	list, logs := newTestDocumentList(t, fake)
	called := false
	list.SetOnDelete(func(model.DocumentID) { called = true })

	list.Delete(sampleDocs[0])

	assert.Equal(t, []model.DocumentID{"1"}, fake.deletes)
	assert.False(t, called)
	assert.Equal(t, 1, logs.FilterMessage("failed to delete document").Len())
}

func TestDocumentListDownload(t *testing.T) {
	result := &api.DownloadResult{Name: "Report.pdf", SavedPath: "/tmp/Report.pdf"}
	fake := &fakeAPI{downloadResult: result}
	list, _ := newTestDocumentList(t, fake)
	var got []*api.DownloadResult
	list.SetOnDownloaded(func(r *api.DownloadResult) { got = append(got, r) })

	list.Download(sampleDocs[0])

	require.Len(t, fake.downloads, 1)
	assert.Equal(t, downloadCall{id: "1", title: "Report"}, fake.downloads[0])
	assert.Equal(t, []*api.DownloadResult{result}, got)
}

func TestDocumentListDownloadFailureIsSwallowed(t *testing.T) {
	fake := &fakeAPI{downloadErr: errors.New("404")}
	list, logs := newTestDocumentList(t, fake)
	called := false
	list.SetOnDownloaded(func(*api.DownloadResult) { called = true })

	list.Download(sampleDocs[1])

	assert.False(t, called)
	assert.Equal(t, 1, logs.FilterMessage("failed to download document").Len())
}
