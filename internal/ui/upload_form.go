package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/doc-vault/internal/api"
	"github.com/ytget/doc-vault/internal/model"
	"github.com/ytget/doc-vault/internal/progress"
)

// UploadForm is the panel that submits a new document
type UploadForm struct {
	api          UploadAPI
	tracker      progress.Tracker
	dispatch     Dispatcher
	notifier     Notifier
	localization *Localization
	logger       *zap.Logger
	window       fyne.Window

	// scope is asked for a sink when a submission starts; the sink receives
	// the uploaded document
	scope func() func(doc model.Document)

	draft model.UploadDraft

	// attempt changes on every submission and every Reset; results of an
	// older attempt are ignored
	attempt uint64

	// UI components
	headingLabel  *widget.Label
	hintLabel     *widget.Label
	titleEntry    *widget.Entry
	categoryEntry *widget.SelectEntry
	fileLabel     *widget.Label
	fileSizeLabel *widget.Label
	removeFileBtn *widget.Button
	browseBtn     *widget.Button
	formatsLabel  *widget.Label
	progressBar   *widget.ProgressBar
	submitBtn     *widget.Button
	content       *fyne.Container
}

// NewUploadForm creates the upload panel. window is the parent of the file
// picker and may be nil in tests.
func NewUploadForm(uploadAPI UploadAPI, tracker progress.Tracker, dispatch Dispatcher, notifier Notifier,
	localization *Localization, logger *zap.Logger, window fyne.Window) *UploadForm {
	f := &UploadForm{
		api:          uploadAPI,
		tracker:      tracker,
		dispatch:     dispatch,
		notifier:     notifier,
		localization: localization,
		logger:       logger,
		window:       window,
		draft:        model.UploadDraft{Status: model.UploadStatusIdle},
	}
	tracker.SetUpdateCallback(func(value float64) {
		f.dispatch.Main(func() {
			if !f.draft.Status.IsActive() {
				return
			}
			f.draft.Progress = value
			f.progressBar.SetValue(value / progress.Done)
		})
	})
	f.createUI()
	return f
}

// SetOnUpload sets the callback that receives each uploaded document
func (f *UploadForm) SetOnUpload(callback func(doc model.Document)) {
	f.scope = func() func(model.Document) { return callback }
}

// SetUploadScope sets a function called when a submission starts. The sink
// it returns receives the document once the server accepted it, so the
// caller can bind the upload to the state current at submit time.
func (f *UploadForm) SetUploadScope(scope func() func(doc model.Document)) {
	f.scope = scope
}

// Reset discards the draft, the entries and any submission in flight
func (f *UploadForm) Reset() {
	if f.draft.Status.IsActive() {
		f.tracker.Cancel()
		f.logger.Info("upload abandoned", zap.String("title", f.draft.Title))
	}
	f.attempt++
	f.draft.Reset()
	f.titleEntry.SetText("")
	f.categoryEntry.SetText("")
	f.progressBar.SetValue(0)
	f.progressBar.Hide()
	f.setEditable(true)
	f.updateFileRow()
	f.updateSubmitButton()
}

// Container returns the panel's root object
func (f *UploadForm) Container() fyne.CanvasObject {
	return f.content
}

// Draft returns a copy of the current draft
func (f *UploadForm) Draft() model.UploadDraft {
	f.syncDraft()
	return f.draft
}

func (f *UploadForm) createUI() {
	f.headingLabel = widget.NewLabel("")
	f.headingLabel.TextStyle = fyne.TextStyle{Bold: true}
	f.hintLabel = widget.NewLabel("")

	f.titleEntry = widget.NewEntry()
	f.categoryEntry = widget.NewSelectEntry(CategorySuggestions)

	f.fileLabel = widget.NewLabel("")
	f.fileLabel.Truncation = fyne.TextTruncateEllipsis
	f.fileSizeLabel = widget.NewLabel("")
	f.fileSizeLabel.TextStyle = fyne.TextStyle{Monospace: true}
	f.removeFileBtn = widget.NewButton(IconRemove, f.ClearFile)
	f.removeFileBtn.Importance = widget.LowImportance

	f.browseBtn = widget.NewButton("", f.showFilePicker)
	f.formatsLabel = widget.NewLabel("")
	f.formatsLabel.Importance = widget.LowImportance

	f.progressBar = widget.NewProgressBar()
	f.progressBar.TextFormatter = func() string {
		return f.localization.GetTextf(KeyUploadProgress, int(f.progressBar.Value*progress.Done))
	}
	f.progressBar.Hide()

	f.submitBtn = widget.NewButton("", f.Submit)
	f.submitBtn.Importance = widget.HighImportance

	fileRow := container.NewBorder(nil, nil,
		container.NewHBox(widget.NewLabel(IconDocument), f.browseBtn), container.NewHBox(f.fileSizeLabel, f.removeFileBtn),
		f.fileLabel)

	f.content = container.NewVBox(
		f.headingLabel,
		f.hintLabel,
		f.titleEntry,
		f.categoryEntry,
		fileRow,
		f.formatsLabel,
		f.progressBar,
		f.submitBtn,
	)
	f.RefreshTexts()
	f.updateFileRow()
}

// RefreshTexts re-applies localized texts
func (f *UploadForm) RefreshTexts() {
	l := f.localization
	f.headingLabel.SetText(IconFolder + " " + l.GetText(KeyUploadHeading))
	f.hintLabel.SetText(l.GetText(KeyUploadHint))
	f.titleEntry.SetPlaceHolder(l.GetText(KeyDocumentTitle))
	f.categoryEntry.SetPlaceHolder(l.GetText(KeyCategory))
	f.browseBtn.SetText(l.GetText(KeyBrowse))
	f.formatsLabel.SetText(l.GetText(KeySupportedFormats))
	f.updateFileRow()
	f.updateSubmitButton()
}

// SelectFile makes file the draft's file. It is the common sink of the file
// picker and drag and drop. The title is filled from the file name only when empty.
func (f *UploadForm) SelectFile(file *model.SelectedFile) {
	if file == nil || f.draft.Status.IsActive() {
		return
	}
	f.syncDraft()
	if f.draft.Status.IsFinished() {
		f.draft.Status = model.UploadStatusIdle
	}
	f.draft.SelectFile(file)
	f.titleEntry.SetText(f.draft.Title)
	f.updateFileRow()
	f.logger.Debug("file selected", zap.String("name", file.Name), zap.Int64("bytes", file.Size))
}

// ClearFile drops the selected file
func (f *UploadForm) ClearFile() {
	if f.draft.Status.IsActive() {
		return
	}
	f.draft.ClearFile()
	f.updateFileRow()
}

// HandleDrop selects the first dropped URI
func (f *UploadForm) HandleDrop(uris []fyne.URI) {
	if len(uris) == 0 {
		return
	}
	f.SelectFile(SelectedFileFromURI(uris[0]))
}

func (f *UploadForm) showFilePicker() {
	if f.window == nil {
		return
	}
	picker := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			f.logger.Warn("file picker failed", zap.Error(err))
			return
		}
		if reader == nil {
			return
		}
		uri := reader.URI()
		reader.Close()
		f.SelectFile(SelectedFileFromURI(uri))
	}, f.window)
	picker.SetFilter(storage.NewExtensionFileFilter(AcceptedExtensions))
	picker.Show()
}

// SelectedFileFromURI wraps a picked or dropped URI. The size is only known
// for local files.
func SelectedFileFromURI(uri fyne.URI) *model.SelectedFile {
	var size int64
	if uri.Scheme() == "file" {
		if info, err := os.Stat(uri.Path()); err == nil {
			size = info.Size()
		}
	}
	return &model.SelectedFile{
		Name: uri.Name(),
		Size: size,
		Open: func() (io.ReadCloser, error) {
			return storage.Reader(uri)
		},
	}
}

// syncDraft copies the entry texts into the draft as typed
func (f *UploadForm) syncDraft() {
	f.draft.Title = f.titleEntry.Text
	f.draft.Category = f.categoryEntry.Text
}

// Submit uploads the draft. Incomplete drafts only raise a notice.
func (f *UploadForm) Submit() {
	if f.draft.Status.IsActive() {
		return
	}

	f.syncDraft()
	if !f.draft.Ready() {
		f.notifier.Error(f.localization.GetText(KeyFillAllFields))
		return
	}

	req := api.UploadRequest{
		Title:    f.draft.Title,
		Category: f.draft.Category,
		FileName: f.draft.File.Name,
	}
	file := f.draft.File
	var sink func(model.Document)
	if f.scope != nil {
		sink = f.scope()
	}
	f.attempt++
	attempt := f.attempt

	f.draft.Status = model.UploadStatusUploading
	f.draft.Progress = 0
	f.progressBar.SetValue(0)
	f.progressBar.Show()
	f.setEditable(false)
	f.updateSubmitButton()
	f.tracker.Start()

	f.dispatch.Background(func() {
		doc, err := f.upload(req, file)
		f.dispatch.Main(func() {
			if attempt != f.attempt {
				f.logger.Debug("ignoring result of an abandoned upload", zap.String("title", req.Title))
				return
			}
			f.finishUpload(sink, doc, err)
		})
	})
}

func (f *UploadForm) upload(req api.UploadRequest, file *model.SelectedFile) (model.Document, error) {
	rc, err := file.Open()
	if err != nil {
		return model.Document{}, fmt.Errorf("open %s: %w", file.Name, err)
	}
	defer rc.Close()

	req.Content = rc
	return f.api.UploadDocument(context.Background(), req)
}

func (f *UploadForm) finishUpload(sink func(model.Document), doc model.Document, err error) {
	if err != nil {
		f.tracker.Cancel()
		f.draft.Status = model.UploadStatusFailed
		f.draft.Progress = 0
		f.progressBar.SetValue(0)
		f.logger.Error("upload failed", zap.String("title", f.draft.Title), zap.Error(err))
		f.notifier.Error(f.localization.GetTextf(KeyUploadFailed, uploadErrorText(err)))
	} else {
		f.tracker.Complete()
		f.draft.Progress = progress.Done
		f.progressBar.SetValue(1)
		f.notifier.Info(f.localization.GetText(KeyUploadSuccess))
		if sink != nil {
			sink(doc)
		}
		f.draft.Reset()
		f.draft.Status = model.UploadStatusCompleted
		f.titleEntry.SetText("")
		f.categoryEntry.SetText("")
	}

	f.progressBar.Hide()
	f.setEditable(true)
	f.updateFileRow()
	f.updateSubmitButton()
}

// uploadErrorText prefers the backend message, then the status line, then the raw error
func uploadErrorText(err error) string {
	if msg := api.ServerMessage(err); msg != "" {
		return msg
	}
	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Error()
	}
	return err.Error()
}

func (f *UploadForm) setEditable(editable bool) {
	for _, w := range []fyne.Disableable{f.titleEntry, f.categoryEntry, f.browseBtn, f.removeFileBtn} {
		if editable {
			w.Enable()
		} else {
			w.Disable()
		}
	}
}

func (f *UploadForm) updateFileRow() {
	if f.draft.File == nil {
		f.fileLabel.SetText(f.localization.GetText(KeyDropHere))
		f.fileSizeLabel.SetText("")
		f.removeFileBtn.Hide()
		return
	}
	f.fileLabel.SetText(f.draft.File.Name)
	if f.draft.File.Size > 0 {
		f.fileSizeLabel.SetText(formatFileSize(f.draft.File.Size))
	} else {
		f.fileSizeLabel.SetText(DashPlaceholder)
	}
	f.removeFileBtn.Show()
}

func (f *UploadForm) updateSubmitButton() {
	if f.draft.Status.IsActive() {
		f.submitBtn.SetText(f.localization.GetText(KeyUploading))
		f.submitBtn.Disable()
		return
	}
	f.submitBtn.SetText(f.localization.GetText(KeyUpload))
	f.submitBtn.Enable()
}

// File size formatting constants
const (
	FileSizeUnit  = 1024
	FileSizeUnits = "KMGTPE"
)

// formatFileSize formats file size in bytes to human readable format
func formatFileSize(bytes int64) string {
	if bytes < FileSizeUnit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(FileSizeUnit), 0
	for n := bytes / FileSizeUnit; n >= FileSizeUnit; n /= FileSizeUnit {
		div *= FileSizeUnit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), FileSizeUnits[exp])
}
