package ui

import (
	"context"
	"errors"
	"io"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/doc-vault/internal/api"
	"github.com/ytget/doc-vault/internal/config"
	"github.com/ytget/doc-vault/internal/model"
	"github.com/ytget/doc-vault/internal/platform"
	"github.com/ytget/doc-vault/internal/progress"
	"github.com/ytget/doc-vault/internal/vault"
)

// RootUI is the main window: the auth screen while signed out, the vault
// screen otherwise
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	vault        vault.Coordinator
	api          api.DocumentAPI
	localization *Localization
	logger       *zap.Logger
	dispatch     Dispatcher
	notifier     Notifier
	saver        api.Saver
	tracker      progress.Tracker
	reveal       func(path string) error
	open         func(path string) error

	state vault.State

	// Panels
	authForm     *AuthForm
	uploadForm   *UploadForm
	searchBar    *SearchBar
	documentList *DocumentList

	// Header
	titleLabel    *widget.Label
	subtitleLabel *widget.Label
	welcomeLabel  *widget.Label
	logoutBtn     *widget.Button
	settingsBtn   *widget.Button

	authScreen *fyne.Container
	mainScreen *fyne.Container
}

// RootOption configures a RootUI
type RootOption func(*RootUI)

// WithLogger sets the logger shared by all panels
func WithLogger(logger *zap.Logger) RootOption {
	return func(ui *RootUI) {
		if logger != nil {
			ui.logger = logger
		}
	}
}

// WithDispatcher replaces the fyne dispatcher
func WithDispatcher(dispatch Dispatcher) RootOption {
	return func(ui *RootUI) {
		if dispatch != nil {
			ui.dispatch = dispatch
		}
	}
}

// WithNotifier replaces the dialog notifier
func WithNotifier(notifier Notifier) RootOption {
	return func(ui *RootUI) {
		if notifier != nil {
			ui.notifier = notifier
		}
	}
}

// WithSaver replaces the preference-driven download saver
func WithSaver(saver api.Saver) RootOption {
	return func(ui *RootUI) {
		if saver != nil {
			ui.saver = saver
		}
	}
}

// WithTracker replaces the upload progress simulator
func WithTracker(tracker progress.Tracker) RootOption {
	return func(ui *RootUI) {
		if tracker != nil {
			ui.tracker = tracker
		}
	}
}

// WithRevealer replaces the file manager call made after a download
func WithRevealer(reveal func(path string) error) RootOption {
	return func(ui *RootUI) {
		if reveal != nil {
			ui.reveal = reveal
		}
	}
}

// WithOpener replaces the default-application call made after a download
func WithOpener(open func(path string) error) RootOption {
	return func(ui *RootUI) {
		if open != nil {
			ui.open = open
		}
	}
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, settings *config.Settings, coordinator vault.Coordinator,
	documentAPI api.DocumentAPI, opts ...RootOption) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		settings:     settings,
		vault:        coordinator,
		api:          documentAPI,
		localization: localization,
		logger:       zap.NewNop(),
		dispatch:     NewFyneDispatcher(),
		reveal:       platform.OpenFileInManager,
		open:         platform.OpenFileWithDefaultApp,
	}
	for _, opt := range opts {
		opt(ui)
	}
	if ui.notifier == nil {
		ui.notifier = NewDialogNotifier(window, localization)
	}
	if ui.tracker == nil {
		ui.tracker = progress.New()
	}
	if ui.saver == nil {
		ui.saver = ui.preferredSaver()
	}

	window.SetTitle(localization.GetText(KeyAppTitle))
	ui.setupUI()

	ui.vault.SetUpdateCallback(func(state vault.State) {
		ui.dispatch.Main(func() { ui.applyState(state) })
	})
	ui.applyState(ui.vault.State())
	return ui
}

// Start restores the previous session in the background
func (ui *RootUI) Start() {
	ui.dispatch.Background(func() {
		if err := ui.vault.Restore(context.Background()); err != nil {
			ui.logger.Warn("failed to restore session", zap.Error(err))
		}
	})
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.titleLabel = widget.NewLabel("")
	ui.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	ui.titleLabel.Alignment = fyne.TextAlignCenter
	ui.subtitleLabel = widget.NewLabel("")
	ui.subtitleLabel.Alignment = fyne.TextAlignCenter
	ui.welcomeLabel = widget.NewLabel("")

	ui.logoutBtn = widget.NewButton("", ui.onLogout)
	ui.settingsBtn = widget.NewButton(IconSettings, ui.onShowSettings)
	ui.settingsBtn.Importance = widget.LowImportance

	ui.authForm = NewAuthForm(ui.api, ui.dispatch, ui.notifier, ui.localization, ui.logger)
	ui.authForm.SetOnLogin(ui.onLogin)

	ui.uploadForm = NewUploadForm(ui.api, ui.tracker, ui.dispatch, ui.notifier, ui.localization, ui.logger, ui.window)
	ui.uploadForm.SetUploadScope(ui.uploadSink)

	ui.searchBar = NewSearchBar(ui.localization)
	ui.searchBar.SetOnSearch(ui.onSearch)

	ui.documentList = NewDocumentList(ui.api, ui.saver, ui.dispatch, ui.localization, ui.logger)
	ui.documentList.SetOnDelete(ui.vault.RemoveDocument)
	ui.documentList.SetOnDownloaded(ui.onDownloaded)

	ui.authScreen = container.NewVBox(
		ui.subtitleLabel,
		container.NewPadded(ui.authForm.Container()),
	)

	header := container.NewBorder(nil, nil, ui.welcomeLabel, container.NewHBox(ui.settingsBtn, ui.logoutBtn))
	ui.mainScreen = container.NewBorder(
		container.NewVBox(
			header,
			widget.NewSeparator(),
			ui.uploadForm.Container(),
			widget.NewSeparator(),
			ui.searchBar.Container(),
			widget.NewSeparator(),
		),
		nil, nil, nil,
		ui.documentList.Container(),
	)

	content := container.NewBorder(ui.titleLabel, nil, nil, nil,
		container.NewStack(container.NewVScroll(ui.authScreen), ui.mainScreen))
	ui.window.SetContent(content)

	ui.window.SetOnDropped(func(_ fyne.Position, uris []fyne.URI) {
		if ui.state.Session.Active() {
			ui.uploadForm.HandleDrop(uris)
		}
	})

	ui.refreshUITexts()
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	l := ui.localization
	ui.window.SetTitle(l.GetText(KeyAppTitle))
	ui.titleLabel.SetText(l.GetText(KeyAppTitle))
	ui.subtitleLabel.SetText(l.GetText(KeyAppSubtitle))
	ui.logoutBtn.SetText(IconDoor + " " + l.GetText(KeyLogout))
	ui.updateWelcome()

	ui.authForm.RefreshTexts()
	ui.uploadForm.RefreshTexts()
	ui.searchBar.RefreshTexts()
	ui.documentList.RefreshTexts()
}

func (ui *RootUI) updateWelcome() {
	if ui.state.Session.Active() {
		ui.welcomeLabel.SetText(ui.localization.GetTextf(KeyWelcomeUser, ui.state.Session.Username))
	} else {
		ui.welcomeLabel.SetText("")
	}
}

// applyState renders a vault snapshot. Must run on the UI goroutine.
// Panels holding a draft or query are emptied when the session ends.
func (ui *RootUI) applyState(state vault.State) {
	if ui.state.Session.Active() && state.Session != ui.state.Session {
		ui.uploadForm.Reset()
		ui.searchBar.Reset()
	}
	ui.state = state
	ui.updateWelcome()
	ui.documentList.SetDocuments(state.Documents)

	if state.Session.Active() {
		ui.authScreen.Hide()
		ui.mainScreen.Show()
	} else {
		ui.mainScreen.Hide()
		ui.authScreen.Show()
	}
}

// State returns the last rendered snapshot
func (ui *RootUI) State() vault.State {
	return ui.state
}

func (ui *RootUI) onLogin(username string) {
	ui.dispatch.Background(func() {
		if err := ui.vault.SignIn(context.Background(), username); err != nil {
			ui.logger.Warn("failed to load documents after login", zap.String("user", username), zap.Error(err))
		}
	})
}

// uploadSink binds an upload to the session current at submit time
func (ui *RootUI) uploadSink() func(model.Document) {
	generation := ui.vault.Generation()
	return func(doc model.Document) {
		if !ui.vault.AddDocument(generation, doc) {
			ui.logger.Info("upload finished after its session ended", zap.String("id", doc.ID.String()))
		}
	}
}

func (ui *RootUI) onLogout() {
	ui.vault.SignOut()
}

func (ui *RootUI) onSearch(query string) {
	ui.dispatch.Background(func() {
		if err := ui.vault.Search(context.Background(), query); err != nil {
			ui.logger.Warn("search failed", zap.String("query", query), zap.Error(err))
		}
	})
}

// onDownloaded reveals or opens the saved file as the preferences ask
func (ui *RootUI) onDownloaded(result *api.DownloadResult) {
	if result == nil || result.SavedPath == "" {
		return
	}
	if ui.settings.GetRevealAfterDownload() {
		if err := ui.reveal(result.SavedPath); err != nil {
			ui.logger.Warn("failed to reveal downloaded file", zap.String("path", result.SavedPath), zap.Error(err))
		}
	}
	if ui.settings.GetOpenAfterDownload() {
		if err := ui.open(result.SavedPath); err != nil {
			ui.logger.Warn("failed to open downloaded file", zap.String("path", result.SavedPath), zap.Error(err))
		}
	}
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	settingsDialog := NewSettingsDialog(ui.settings, ui.localization, ui.window)
	settingsDialog.SetOnLanguageChange(ui.onLanguageChange)
	settingsDialog.Show()
}

// preferredSaver writes downloads into the download directory, or asks for
// a target when the preference says so
func (ui *RootUI) preferredSaver() api.Saver {
	dirSaver := platform.NewDirSaver(ui.settings.GetDownloadDirectory)
	dialogSaver := NewDialogSaver(ui.window, ui.dispatch)

	return api.SaverFunc(func(ctx context.Context, name, contentType string, src io.Reader) (string, error) {
		if !ui.settings.GetAskWhereToSave() {
			return dirSaver.SaveFile(ctx, name, contentType, src)
		}
		path, err := dialogSaver.SaveFile(ctx, name, contentType, src)
		if errors.Is(err, ErrSaveCancelled) {
			ui.logger.Info("download not saved", zap.String("name", name))
		}
		return path, err
	})
}
