package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
)

func TestSearchBar(t *testing.T) {
	test.NewApp()
	bar := NewSearchBar(NewLocalization())

	var queries []string
	bar.SetOnSearch(func(q string) { queries = append(queries, q) })

	bar.entry.SetText("invoice")
	assert.Empty(t, queries, "typing must not search")

	test.Tap(bar.searchBtn)
	assert.Equal(t, []string{"invoice"}, queries)

	bar.entry.SetText("  tax  ")
	bar.entry.OnSubmitted(bar.entry.Text)
	assert.Equal(t, []string{"invoice", "  tax  "}, queries)

	test.Tap(bar.clearBtn)
	assert.Equal(t, []string{"invoice", "  tax  ", ""}, queries)
	assert.Empty(t, bar.entry.Text)

	bar.entry.SetText("alice secret")
	bar.Reset()
	assert.Empty(t, bar.entry.Text)
	assert.Len(t, queries, 3, "reset must not search")
}
