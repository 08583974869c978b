package ui

import (
	"errors"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
)

// Notifier shows blocking messages to the user
type Notifier interface {
	Info(message string)
	Error(message string)
}

// dialogNotifier shows messages as fyne dialogs on window
type dialogNotifier struct {
	window fyne.Window
	title  func() string
}

// NewDialogNotifier creates a notifier that uses dialogs on window
func NewDialogNotifier(window fyne.Window, localization *Localization) Notifier {
	return &dialogNotifier{
		window: window,
		title:  func() string { return localization.GetText(KeyNotice) },
	}
}

func (n *dialogNotifier) Info(message string) {
	dialog.ShowInformation(n.title(), message, n.window)
}

func (n *dialogNotifier) Error(message string) {
	dialog.ShowError(errors.New(message), n.window)
}
