package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// SearchBar emits a query on Enter or the Search button. Typing alone
// never triggers a search.
type SearchBar struct {
	localization *Localization
	onSearch     func(query string)

	headingLabel *widget.Label
	entry        *widget.Entry
	searchBtn    *widget.Button
	clearBtn     *widget.Button
	content      *fyne.Container
}

// NewSearchBar creates the search panel
func NewSearchBar(localization *Localization) *SearchBar {
	b := &SearchBar{localization: localization}

	b.headingLabel = widget.NewLabel("")
	b.headingLabel.TextStyle = fyne.TextStyle{Bold: true}
	b.entry = widget.NewEntry()
	b.entry.OnSubmitted = func(string) { b.Search() }
	b.searchBtn = widget.NewButton("", b.Search)
	b.clearBtn = widget.NewButton("", b.Clear)
	b.clearBtn.Importance = widget.LowImportance

	b.content = container.NewVBox(
		b.headingLabel,
		container.NewBorder(nil, nil, nil, container.NewHBox(b.searchBtn, b.clearBtn), b.entry),
	)
	b.RefreshTexts()
	return b
}

// SetOnSearch sets the query callback
func (b *SearchBar) SetOnSearch(callback func(query string)) {
	b.onSearch = callback
}

// Container returns the panel's root object
func (b *SearchBar) Container() fyne.CanvasObject {
	return b.content
}

// RefreshTexts re-applies localized texts
func (b *SearchBar) RefreshTexts() {
	b.headingLabel.SetText(IconSearch + " " + b.localization.GetText(KeySearchHeading))
	b.entry.SetPlaceHolder(b.localization.GetText(KeySearchPlaceholder))
	b.searchBtn.SetText(b.localization.GetText(KeySearch))
	b.clearBtn.SetText(IconClear + " " + b.localization.GetText(KeyClear))
}

// Search emits the current query as typed
func (b *SearchBar) Search() {
	b.emit(b.entry.Text)
}

// Reset empties the entry without emitting
func (b *SearchBar) Reset() {
	b.entry.SetText("")
}

// Clear empties the entry and emits an empty query
func (b *SearchBar) Clear() {
	b.entry.SetText("")
	b.emit("")
}

func (b *SearchBar) emit(query string) {
	if b.onSearch != nil {
		b.onSearch(query)
	}
}
