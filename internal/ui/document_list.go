package ui

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/doc-vault/internal/api"
	"github.com/ytget/doc-vault/internal/model"
)

// DocumentList renders the coordinator's document snapshot and runs the
// per-row delete and download actions
type DocumentList struct {
	api          DocumentActions
	saver        api.Saver
	dispatch     Dispatcher
	localization *Localization
	logger       *zap.Logger

	onDelete     func(id model.DocumentID)
	onDownloaded func(result *api.DownloadResult)

	docs []model.Document

	headingLabel *widget.Label
	emptyLabel   *widget.Label
	list         *widget.List
	content      *fyne.Container
}

// NewDocumentList creates the list panel. Downloads are written through saver.
func NewDocumentList(actions DocumentActions, saver api.Saver, dispatch Dispatcher, localization *Localization, logger *zap.Logger) *DocumentList {
	l := &DocumentList{
		api:          actions,
		saver:        saver,
		dispatch:     dispatch,
		localization: localization,
		logger:       logger,
	}

	l.headingLabel = widget.NewLabel("")
	l.headingLabel.TextStyle = fyne.TextStyle{Bold: true}
	l.emptyLabel = widget.NewLabel("")
	l.emptyLabel.Alignment = fyne.TextAlignCenter

	l.list = widget.NewList(
		func() int { return len(l.docs) },
		func() fyne.CanvasObject { return l.createRow() },
		func(id widget.ListItemID, obj fyne.CanvasObject) { l.updateRow(id, obj) },
	)

	l.content = container.NewBorder(l.headingLabel, nil, nil, nil, container.NewStack(l.list, l.emptyLabel))
	l.SetDocuments(nil)
	return l
}

// SetOnDelete sets the callback fired after the backend deleted a document
func (l *DocumentList) SetOnDelete(callback func(id model.DocumentID)) {
	l.onDelete = callback
}

// SetOnDownloaded sets the callback fired after a document was saved
func (l *DocumentList) SetOnDownloaded(callback func(result *api.DownloadResult)) {
	l.onDownloaded = callback
}

// Container returns the panel's root object
func (l *DocumentList) Container() fyne.CanvasObject {
	return l.content
}

// Documents returns the documents currently shown
func (l *DocumentList) Documents() []model.Document {
	return append([]model.Document(nil), l.docs...)
}

// SetDocuments replaces the rendered documents
func (l *DocumentList) SetDocuments(docs []model.Document) {
	l.docs = append([]model.Document(nil), docs...)
	l.RefreshTexts()
	if len(l.docs) == 0 {
		l.list.Hide()
		l.emptyLabel.Show()
	} else {
		l.emptyLabel.Hide()
		l.list.Show()
	}
	l.list.Refresh()
}

// RefreshTexts re-applies localized texts
func (l *DocumentList) RefreshTexts() {
	l.headingLabel.SetText(l.localization.GetTextf(KeyDocumentsCount, len(l.docs)))
	l.emptyLabel.SetText(l.localization.GetText(KeyNoDocuments))
	l.list.Refresh()
}

func (l *DocumentList) createRow() fyne.CanvasObject {
	row := NewDocumentRow(model.Document{}, l.localization)
	row.SetCallbacks(l.Download, l.Delete)
	return row
}

func (l *DocumentList) updateRow(id widget.ListItemID, obj fyne.CanvasObject) {
	if id < 0 || id >= len(l.docs) {
		return
	}
	if row, ok := obj.(*DocumentRow); ok {
		row.UpdateDocument(l.docs[id])
	}
}

// Delete removes doc on the backend. The row goes away only once the backend
// confirmed; failures are logged and leave the list unchanged.
func (l *DocumentList) Delete(doc model.Document) {
	l.dispatch.Background(func() {
		err := l.api.DeleteDocument(context.Background(), doc.ID)
		l.dispatch.Main(func() {
			if err != nil {
				l.logger.Error("failed to delete document", zap.String("id", doc.ID.String()), zap.Error(err))
				return
			}
			l.logger.Info("document deleted", zap.String("id", doc.ID.String()))
			if l.onDelete != nil {
				l.onDelete(doc.ID)
			}
		})
	})
}

// Download fetches doc and hands it to the saver under a name derived from
// its title. Failures are logged only.
func (l *DocumentList) Download(doc model.Document) {
	l.dispatch.Background(func() {
		result, err := l.api.DownloadDocument(context.Background(), doc.ID, doc.DocumentTitle, l.saver)
		l.dispatch.Main(func() {
			if err != nil {
				l.logger.Error("failed to download document", zap.String("id", doc.ID.String()), zap.Error(err))
				return
			}
			if l.onDownloaded != nil {
				l.onDownloaded(result)
			}
		})
	})
}
