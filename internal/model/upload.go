package model

import (
	"io"
	"strings"
)

// SelectedFile is the file handle shared by the file picker, drag and drop,
// and tests. Open is called once per upload attempt.
type SelectedFile struct {
	Name string
	Size int64
	Open func() (io.ReadCloser, error)
}

// UploadDraft is the local state of the upload panel
type UploadDraft struct {
	Title    string
	Category string
	File     *SelectedFile
	Status   UploadStatus
	Progress float64 // 0 to 100
}

// SelectFile sets the file and fills the title from the file name only when
// the title is still empty
func (d *UploadDraft) SelectFile(file *SelectedFile) {
	if file == nil {
		return
	}
	d.File = file
	if d.Title == "" {
		d.Title = TitleFromFileName(file.Name)
	}
}

// ClearFile drops the selected file and keeps the other fields
func (d *UploadDraft) ClearFile() {
	d.File = nil
}

// Ready reports whether the draft satisfies the submission preconditions.
// Whitespace alone does not count as a title or category.
func (d *UploadDraft) Ready() bool {
	return d.File != nil && strings.TrimSpace(d.Title) != "" && strings.TrimSpace(d.Category) != ""
}

// Reset discards every field of the draft
func (d *UploadDraft) Reset() {
	*d = UploadDraft{Status: UploadStatusIdle}
}

// TitleFromFileName returns the part of name before the first dot
func TitleFromFileName(name string) string {
	title, _, _ := strings.Cut(name, ".")
	return title
}

// FieldErrors maps a form field to its validation message
type FieldErrors map[string]string

// Empty reports whether there are no violations
func (fe FieldErrors) Empty() bool {
	return len(fe) == 0
}
