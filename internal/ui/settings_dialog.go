package ui

import (
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/doc-vault/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog

	onLanguageChange func(code string)

	// language display name -> code
	languageCodes map[string]string

	// UI components
	downloadDirEntry *widget.Entry
	askWhereCheck    *widget.Check
	revealCheck      *widget.Check
	openCheck        *widget.Check
	apiURLEntry      *widget.Entry
	languageSelect   *widget.Select
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window) *SettingsDialog {
	sd := &SettingsDialog{
		settings:      settings,
		localization:  localization,
		window:        window,
		languageCodes: make(map[string]string),
	}

	sd.createUI()
	return sd
}

// SetOnLanguageChange sets the callback fired when a saved language differs from the current one
func (sd *SettingsDialog) SetOnLanguageChange(callback func(code string)) {
	sd.onLanguageChange = callback
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	l := sd.localization

	sd.downloadDirEntry = widget.NewEntry()
	browseDirBtn := widget.NewButton(l.GetText(KeyBrowse), sd.onBrowseDirectory)
	downloadDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.downloadDirEntry)

	sd.askWhereCheck = widget.NewCheck(l.GetText(KeyAskWhereToSave), nil)
	sd.revealCheck = widget.NewCheck(l.GetText(KeyRevealAfterDownload), nil)
	sd.openCheck = widget.NewCheck(l.GetText(KeyOpenAfterDownload), nil)

	sd.apiURLEntry = widget.NewEntry()
	sd.apiURLEntry.SetPlaceHolder(l.GetText(KeyAPIURLHint))

	var languageNames []string
	for code, name := range sd.settings.GetLanguageOptions() {
		sd.languageCodes[name] = code
		languageNames = append(languageNames, name)
	}
	sort.Strings(languageNames)
	sd.languageSelect = widget.NewSelect(languageNames, nil)
	sd.languageSelect.PlaceHolder = l.GetText(KeySelectLanguage)

	form := container.NewVBox(
		widget.NewLabel(l.GetText(KeyDownloadSettings)),
		widget.NewSeparator(),

		widget.NewLabel(l.GetText(KeyDownloadDirectory)),
		downloadDirRow,
		sd.askWhereCheck,
		sd.revealCheck,
		sd.openCheck,

		widget.NewSeparator(),
		widget.NewLabel(l.GetText(KeyConnectionSettings)),
		widget.NewSeparator(),

		widget.NewLabel(l.GetText(KeyAPIURL)),
		sd.apiURLEntry,

		widget.NewSeparator(),
		widget.NewLabel(l.GetText(KeyInterfaceSettings)),
		widget.NewSeparator(),

		widget.NewLabel(l.GetText(KeyLanguage)),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		l.GetText(KeySettings),
		l.GetText(KeySave),
		l.GetText(KeyCancel),
		form,
		sd.onConfirm,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.downloadDirEntry.SetText(sd.settings.GetDownloadDirectory())
	sd.askWhereCheck.SetChecked(sd.settings.GetAskWhereToSave())
	sd.revealCheck.SetChecked(sd.settings.GetRevealAfterDownload())
	sd.openCheck.SetChecked(sd.settings.GetOpenAfterDownload())
	sd.apiURLEntry.SetText(sd.settings.GetAPIURL())
	sd.languageSelect.SetSelected(sd.settings.GetLanguageOptions()[sd.settings.GetLanguage()])
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.downloadDirEntry.SetText(uri.Path())
	}, sd.window)
}

func (sd *SettingsDialog) onConfirm(confirmed bool) {
	if !confirmed {
		return
	}
	sd.Save()
	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}

// Save writes the dialog's values to the preferences. The API URL takes
// effect on the next start.
func (sd *SettingsDialog) Save() {
	if dir := sd.downloadDirEntry.Text; dir != "" {
		sd.settings.SetDownloadDirectory(dir)
	}
	sd.settings.SetAskWhereToSave(sd.askWhereCheck.Checked)
	sd.settings.SetRevealAfterDownload(sd.revealCheck.Checked)
	sd.settings.SetOpenAfterDownload(sd.openCheck.Checked)
	sd.settings.SetAPIURL(sd.apiURLEntry.Text)

	code, ok := sd.languageCodes[sd.languageSelect.Selected]
	if !ok || code == sd.settings.GetLanguage() {
		return
	}
	sd.settings.SetLanguage(code)
	if sd.onLanguageChange != nil {
		sd.onLanguageChange(code)
	}
}
