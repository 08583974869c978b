// Package ui contains the Fyne-based desktop user interface of the document
// vault. RootUI wires the auth, upload, search and list panels to the vault
// coordinator and the API client. All UI strings are localized via Localization.
package ui
