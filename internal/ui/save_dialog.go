package ui

import (
	"context"
	"errors"
	"fmt"
	"io"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
)

// ErrSaveCancelled is returned when the user dismisses the save dialog
var ErrSaveCancelled = errors.New("save cancelled")

// DialogSaver asks the user where to write each download
type DialogSaver struct {
	window   fyne.Window
	dispatch Dispatcher
}

// NewDialogSaver creates a saver that shows a save dialog on window
func NewDialogSaver(window fyne.Window, dispatch Dispatcher) *DialogSaver {
	return &DialogSaver{window: window, dispatch: dispatch}
}

type saveTarget struct {
	writer fyne.URIWriteCloser
	err    error
}

// SaveFile blocks until the user picked a target or ctx ends, then copies src there
func (s *DialogSaver) SaveFile(ctx context.Context, name, _ string, src io.Reader) (string, error) {
	picked := make(chan saveTarget, 1)
	s.dispatch.Main(func() {
		d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
			picked <- saveTarget{writer: writer, err: err}
		}, s.window)
		d.SetFileName(name)
		d.Show()
	})

	var target saveTarget
	select {
	case <-ctx.Done():
		go func() {
			if late := <-picked; late.writer != nil {
				late.writer.Close()
			}
		}()
		return "", ctx.Err()
	case target = <-picked:
	}

	if target.err != nil {
		return "", fmt.Errorf("save dialog: %w", target.err)
	}
	if target.writer == nil {
		return "", ErrSaveCancelled
	}
	defer target.writer.Close()

	if _, err := io.Copy(target.writer, src); err != nil {
		return "", fmt.Errorf("write %s: %w", target.writer.URI(), err)
	}
	return target.writer.URI().Path(), nil
}
