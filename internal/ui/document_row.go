package ui

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/doc-vault/internal/model"
)

// DocumentRow is one compact entry of the document list
type DocumentRow struct {
	widget.BaseWidget

	doc          model.Document
	localization *Localization

	// UI components
	titleLabel  *widget.Label
	metaLabel   *widget.Label
	downloadBtn *widget.Button
	deleteBtn   *widget.Button

	// Callbacks
	onDownload func(doc model.Document)
	onDelete   func(doc model.Document)
}

// NewDocumentRow creates a row showing doc
func NewDocumentRow(doc model.Document, localization *Localization) *DocumentRow {
	r := &DocumentRow{
		doc:          doc,
		localization: localization,
	}
	r.ExtendBaseWidget(r)
	r.createUI()
	r.updateFromDocument()
	return r
}

// SetCallbacks sets the action callbacks
func (r *DocumentRow) SetCallbacks(onDownload, onDelete func(doc model.Document)) {
	r.onDownload = onDownload
	r.onDelete = onDelete
}

// UpdateDocument points the row at another document
func (r *DocumentRow) UpdateDocument(doc model.Document) {
	r.doc = doc
	r.updateFromDocument()
	r.Refresh()
}

// Document returns the document shown by the row
func (r *DocumentRow) Document() model.Document {
	return r.doc
}

func (r *DocumentRow) createUI() {
	r.titleLabel = widget.NewLabel("")
	r.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	r.titleLabel.Truncation = fyne.TextTruncateEllipsis

	r.metaLabel = widget.NewLabel("")
	r.metaLabel.Importance = widget.LowImportance

	// Buttons read r.doc at click time; list rows are recycled
	r.downloadBtn = widget.NewButton("", func() {
		if r.onDownload != nil {
			r.onDownload(r.doc)
		}
	})
	r.deleteBtn = widget.NewButton("", func() {
		if r.onDelete != nil {
			r.onDelete(r.doc)
		}
	})
	r.deleteBtn.Importance = widget.DangerImportance
}

func (r *DocumentRow) updateFromDocument() {
	r.titleLabel.SetText(IconDocument + " " + singleLine(r.doc.DocumentTitle))

	var meta []string
	for _, part := range []string{r.doc.Category, r.doc.UploadDate} {
		if part = singleLine(part); part != "" {
			meta = append(meta, part)
		}
	}
	if len(meta) == 0 {
		r.metaLabel.SetText(DashPlaceholder)
	} else {
		r.metaLabel.SetText(strings.Join(meta, MiddleDotSeparator))
	}

	r.downloadBtn.SetText(r.localization.GetText(KeyDownload))
	r.deleteBtn.SetText(r.localization.GetText(KeyDelete))
}

// singleLine flattens control whitespace so a row keeps one line per field
func singleLine(s string) string {
	return strings.TrimSpace(strings.NewReplacer("\n", " ", "\r", " ", "\t", " ").Replace(s))
}

// CreateRenderer creates the widget renderer
func (r *DocumentRow) CreateRenderer() fyne.WidgetRenderer {
	return &documentRowRenderer{row: r}
}

// documentRowRenderer renders the document row widget
type documentRowRenderer struct {
	row    *DocumentRow
	layout *fyne.Container
}

// Layout arranges the components
func (r *documentRowRenderer) Layout(size fyne.Size) {
	if r.layout == nil {
		r.createLayout()
	}
	if size.Width < RowMinWidth {
		size.Width = RowMinWidth
	}
	if size.Height < RowMinHeight {
		size.Height = RowMinHeight
	}
	r.layout.Resize(size)
}

// MinSize returns the minimum size
func (r *documentRowRenderer) MinSize() fyne.Size {
	if r.layout == nil {
		r.createLayout()
	}
	return r.layout.MinSize().Max(fyne.NewSize(RowMinWidth, RowMinHeight))
}

// Refresh refreshes the renderer
func (r *documentRowRenderer) Refresh() {
	if r.layout == nil {
		r.createLayout()
	}
	r.layout.Refresh()
}

// Objects returns the container objects
func (r *documentRowRenderer) Objects() []fyne.CanvasObject {
	if r.layout == nil {
		r.createLayout()
	}
	return []fyne.CanvasObject{r.layout}
}

// Destroy cleans up the renderer
func (r *documentRowRenderer) Destroy() {}

// createLayout pins the action buttons to the right edge and lets the
// title and metadata take the remaining width
func (r *documentRowRenderer) createLayout() {
	row := r.row
	info := container.NewVBox(row.titleLabel, row.metaLabel)
	actions := container.NewHBox(row.downloadBtn, row.deleteBtn)

	r.layout = container.NewVBox(
		container.NewBorder(nil, nil, nil, actions, info),
		widget.NewSeparator(),
	)
}
