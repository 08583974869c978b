package config

import (
	"os"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"

	"github.com/ytget/doc-vault/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyUser                = "user"
	KeyDownloadDir         = "download_directory"
	KeyLanguage            = "app_language"
	KeyAskWhereToSave      = "ask_where_to_save"
	KeyRevealAfterDownload = "reveal_after_download"
	KeyOpenAfterDownload   = "open_after_download"
	KeyAPIURL              = "api_url"
)

// Default values
const (
	DefaultLanguage            = "system"
	DefaultAskWhereToSave      = false
	DefaultRevealAfterDownload = true
	DefaultOpenAfterDownload   = false
	DefaultDownloadSubdir      = "DocumentVault"
)

// Settings manages runtime configuration stored in fyne preferences.
// It also serves as the persisted session slot.
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// LoadSession returns the persisted username, or "" when signed out
func (s *Settings) LoadSession() string {
	return s.app.Preferences().String(KeyUser)
}

// SaveSession persists the signed-in username
func (s *Settings) SaveSession(username string) {
	s.app.Preferences().SetString(KeyUser, username)
}

// ClearSession removes the persisted username
func (s *Settings) ClearSession() {
	s.app.Preferences().RemoveValue(KeyUser)
}

// GetDownloadDirectory returns the configured download directory
func (s *Settings) GetDownloadDirectory() string {
	dir := s.app.Preferences().String(KeyDownloadDir)
	if dir == "" {
		defaultDir, err := platform.GetHomeDownloadsDir()
		if err != nil {
			defaultDir = filepath.Join(os.TempDir(), DefaultDownloadSubdir)
		}
		s.SetDownloadDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetDownloadDirectory sets the download directory
func (s *Settings) SetDownloadDirectory(dir string) {
	s.app.Preferences().SetString(KeyDownloadDir, dir)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// GetAskWhereToSave returns whether downloads open a save dialog
func (s *Settings) GetAskWhereToSave() bool {
	return s.app.Preferences().BoolWithFallback(KeyAskWhereToSave, DefaultAskWhereToSave)
}

// SetAskWhereToSave sets whether downloads open a save dialog
func (s *Settings) SetAskWhereToSave(ask bool) {
	s.app.Preferences().SetBool(KeyAskWhereToSave, ask)
}

// GetRevealAfterDownload returns whether saved files are shown in the file manager
func (s *Settings) GetRevealAfterDownload() bool {
	return s.app.Preferences().BoolWithFallback(KeyRevealAfterDownload, DefaultRevealAfterDownload)
}

// SetRevealAfterDownload sets whether saved files are shown in the file manager
func (s *Settings) SetRevealAfterDownload(reveal bool) {
	s.app.Preferences().SetBool(KeyRevealAfterDownload, reveal)
}

// GetOpenAfterDownload returns whether saved files are opened with the default application
func (s *Settings) GetOpenAfterDownload() bool {
	return s.app.Preferences().BoolWithFallback(KeyOpenAfterDownload, DefaultOpenAfterDownload)
}

// SetOpenAfterDownload sets whether saved files are opened with the default application
func (s *Settings) SetOpenAfterDownload(open bool) {
	s.app.Preferences().SetBool(KeyOpenAfterDownload, open)
}

// GetAPIURL returns the user's documents endpoint override, or ""
func (s *Settings) GetAPIURL() string {
	return strings.TrimSpace(s.app.Preferences().String(KeyAPIURL))
}

// SetAPIURL stores a documents endpoint override. Empty restores detection.
func (s *Settings) SetAPIURL(url string) {
	url = strings.TrimSpace(url)
	if url == "" {
		s.app.Preferences().RemoveValue(KeyAPIURL)
		return
	}
	s.app.Preferences().SetString(KeyAPIURL, url)
}
