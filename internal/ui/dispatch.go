package ui

import (
	"time"

	"fyne.io/fyne/v2"
)

// Dispatcher decides where panel work runs. Network calls go to Background;
// their results are applied with Main.
type Dispatcher interface {
	Background(fn func())
	Main(fn func())
	After(d time.Duration, fn func())
}

// FyneDispatcher runs background work on goroutines and UI work via fyne.Do
type FyneDispatcher struct{}

// NewFyneDispatcher returns the dispatcher used by the running application
func NewFyneDispatcher() Dispatcher {
	return FyneDispatcher{}
}

// Background runs fn on a new goroutine
func (FyneDispatcher) Background(fn func()) {
	go fn()
}

// Main runs fn on the fyne main goroutine
func (FyneDispatcher) Main(fn func()) {
	fyne.Do(fn)
}

// After runs fn on the fyne main goroutine once d has elapsed
func (FyneDispatcher) After(d time.Duration, fn func()) {
	time.AfterFunc(d, func() { fyne.Do(fn) })
}
