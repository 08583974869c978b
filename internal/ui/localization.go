package ui

import "fmt"

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle    = "app_title"
	KeyAppSubtitle = "app_subtitle"
	KeyWelcomeUser = "welcome_user"
	KeyLogout      = "logout"
	KeySettings    = "settings"
	KeyFile        = "file"
	KeyLanguage    = "language"
	KeyNotice      = "notice"

	// Authentication panel
	KeyWelcomeBack         = "welcome_back"
	KeyJoinUs              = "join_us"
	KeySignInSubtitle      = "sign_in_subtitle"
	KeyRegisterSubtitle    = "register_subtitle"
	KeyUsername            = "username"
	KeyPassword            = "password"
	KeySignIn              = "sign_in"
	KeyCreateAccount       = "create_account"
	KeyProcessing          = "processing"
	KeyNewToPlatform       = "new_to_platform"
	KeyHaveAccount         = "have_account"
	KeyUsernameRequired    = "username_required"
	KeyUsernameTooShort    = "username_too_short"
	KeyPasswordRequired    = "password_required"
	KeyPasswordTooShort    = "password_too_short"
	KeyRegistrationSuccess = "registration_success"
	KeyAuthFailed          = "auth_failed"

	// Upload panel
	KeyUploadHeading    = "upload_heading"
	KeyUploadHint       = "upload_hint"
	KeyDocumentTitle    = "document_title"
	KeyCategory         = "category"
	KeyBrowse           = "browse"
	KeyDropHere         = "drop_here"
	KeySupportedFormats = "supported_formats"
	KeyUpload           = "upload"
	KeyUploading        = "uploading"
	KeyUploadProgress   = "upload_progress"
	KeyFillAllFields    = "fill_all_fields"
	KeyUploadSuccess    = "upload_success"
	KeyUploadFailed     = "upload_failed"

	// Search panel
	KeySearchHeading     = "search_heading"
	KeySearchPlaceholder = "search_placeholder"
	KeySearch            = "search"
	KeyClear             = "clear"

	// List panel
	KeyDocumentsCount = "documents_count"
	KeyNoDocuments    = "no_documents"
	KeyDelete         = "delete"
	KeyDownload       = "download"

	// Settings dialog
	KeyDownloadSettings    = "download_settings"
	KeyInterfaceSettings   = "interface_settings"
	KeyConnectionSettings  = "connection_settings"
	KeyDownloadDirectory   = "download_directory"
	KeyAskWhereToSave      = "ask_where_to_save"
	KeyRevealAfterDownload = "reveal_after_download"
	KeyOpenAfterDownload   = "open_after_download"
	KeyAPIURL              = "api_url"
	KeyAPIURLHint          = "api_url_hint"
	KeySelectLanguage      = "select_language"
	KeySave                = "save"
	KeyCancel              = "cancel"
	KeySettingsSaved       = "settings_saved"
	KeyErrorOpeningFile    = "error_opening_file"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetTextf formats the localized text for key with args
func (l *Localization) GetTextf(key string, args ...interface{}) string {
	return fmt.Sprintf(l.GetText(key), args...)
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:    "Digital Document Vault System",
		KeyAppSubtitle: "Secure, organized, and accessible document management",
		KeyWelcomeUser: "Welcome, %s!",
		KeyLogout:      "Logout",
		KeySettings:    "Settings",
		KeyFile:        "File",
		KeyLanguage:    "Language",
		KeyNotice:      "Document Vault",

		KeyWelcomeBack:         "Welcome Back",
		KeyJoinUs:              "Join Us",
		KeySignInSubtitle:      "Sign in to access your documents",
		KeyRegisterSubtitle:    "Create your account to get started",
		KeyUsername:            "Username",
		KeyPassword:            "Password",
		KeySignIn:              "Sign In",
		KeyCreateAccount:       "Create Account",
		KeyProcessing:          "Processing...",
		KeyNewToPlatform:       "New to our platform?",
		KeyHaveAccount:         "Already have an account?",
		KeyUsernameRequired:    "Username is required",
		KeyUsernameTooShort:    "Username must be at least 3 characters",
		KeyPasswordRequired:    "Password is required",
		KeyPasswordTooShort:    "Password must be at least 6 characters",
		KeyRegistrationSuccess: "Registration successful! Please login.",
		KeyAuthFailed:          "Authentication failed",

		KeyUploadHeading:    "Upload New Document",
		KeyUploadHint:       "Drag and drop your file or click to browse",
		KeyDocumentTitle:    "Document Title",
		KeyCategory:         "Category",
		KeyBrowse:           "Browse",
		KeyDropHere:         "Drop your file here",
		KeySupportedFormats: "Supports: PDF, DOC, DOCX, TXT, JPG, PNG, GIF",
		KeyUpload:           "Upload",
		KeyUploading:        "Uploading...",
		KeyUploadProgress:   "Uploading... %d%%",
		KeyFillAllFields:    "Please fill all fields and select a file.",
		KeyUploadSuccess:    "Document uploaded successfully!",
		KeyUploadFailed:     "Failed to upload document: %s",

		KeySearchHeading:     "Search & Filter",
		KeySearchPlaceholder: "Search documents by title...",
		KeySearch:            "Search",
		KeyClear:             "Clear",

		KeyDocumentsCount: "Documents (%d)",
		KeyNoDocuments:    "No documents uploaded yet.",
		KeyDelete:         "Delete",
		KeyDownload:       "Download",

		KeyDownloadSettings:    "Download Settings",
		KeyInterfaceSettings:   "Interface Settings",
		KeyConnectionSettings:  "Connection",
		KeyDownloadDirectory:   "Download Directory",
		KeyAskWhereToSave:      "Ask where to save each download",
		KeyRevealAfterDownload: "Show downloaded files in the file manager",
		KeyOpenAfterDownload:   "Open downloaded files with the default application",
		KeyAPIURL:              "Documents API URL",
		KeyAPIURLHint:          "Leave empty for automatic selection. Applies after restart.",
		KeySelectLanguage:      "Select language",
		KeySave:                "Save",
		KeyCancel:              "Cancel",
		KeySettingsSaved:       "Settings saved successfully!",
		KeyErrorOpeningFile:    "Error opening file",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:    "Цифровое хранилище документов",
		KeyAppSubtitle: "Надёжное, упорядоченное и доступное управление документами",
		KeyWelcomeUser: "Добро пожаловать, %s!",
		KeyLogout:      "Выйти",
		KeySettings:    "Настройки",
		KeyFile:        "Файл",
		KeyLanguage:    "Язык",
		KeyNotice:      "Хранилище документов",

		KeyWelcomeBack:         "С возвращением",
		KeyJoinUs:              "Присоединяйтесь",
		KeySignInSubtitle:      "Войдите, чтобы открыть свои документы",
		KeyRegisterSubtitle:    "Создайте учётную запись, чтобы начать",
		KeyUsername:            "Имя пользователя",
		KeyPassword:            "Пароль",
		KeySignIn:              "Войти",
		KeyCreateAccount:       "Создать аккаунт",
		KeyProcessing:          "Обработка...",
		KeyNewToPlatform:       "Впервые здесь?",
		KeyHaveAccount:         "Уже есть аккаунт?",
		KeyUsernameRequired:    "Введите имя пользователя",
		KeyUsernameTooShort:    "Имя пользователя должно содержать не менее 3 символов",
		KeyPasswordRequired:    "Введите пароль",
		KeyPasswordTooShort:    "Пароль должен содержать не менее 6 символов",
		KeyRegistrationSuccess: "Регистрация прошла успешно! Войдите в систему.",
		KeyAuthFailed:          "Ошибка аутентификации",

		KeyUploadHeading:    "Загрузить документ",
		KeyUploadHint:       "Перетащите файл или нажмите, чтобы выбрать",
		KeyDocumentTitle:    "Название документа",
		KeyCategory:         "Категория",
		KeyBrowse:           "Обзор",
		KeyDropHere:         "Перетащите файл сюда",
		KeySupportedFormats: "Поддерживается: PDF, DOC, DOCX, TXT, JPG, PNG, GIF",
		KeyUpload:           "Загрузить",
		KeyUploading:        "Загрузка...",
		KeyUploadProgress:   "Загрузка... %d%%",
		KeyFillAllFields:    "Заполните все поля и выберите файл.",
		KeyUploadSuccess:    "Документ успешно загружен!",
		KeyUploadFailed:     "Не удалось загрузить документ: %s",

		KeySearchHeading:     "Поиск и фильтр",
		KeySearchPlaceholder: "Поиск документов по названию...",
		KeySearch:            "Найти",
		KeyClear:             "Очистить",

		KeyDocumentsCount: "Документы (%d)",
		KeyNoDocuments:    "Документы ещё не загружены.",
		KeyDelete:         "Удалить",
		KeyDownload:       "Скачать",

		KeyDownloadSettings:    "Настройки загрузки",
		KeyInterfaceSettings:   "Настройки интерфейса",
		KeyConnectionSettings:  "Подключение",
		KeyDownloadDirectory:   "Папка загрузки",
		KeyAskWhereToSave:      "Спрашивать, куда сохранять",
		KeyRevealAfterDownload: "Показывать скачанные файлы в файловом менеджере",
		KeyOpenAfterDownload:   "Открывать скачанные файлы в программе по умолчанию",
		KeyAPIURL:              "URL API документов",
		KeyAPIURLHint:          "Оставьте пустым для автоматического выбора. Применяется после перезапуска.",
		KeySelectLanguage:      "Выберите язык",
		KeySave:                "Сохранить",
		KeyCancel:              "Отмена",
		KeySettingsSaved:       "Настройки успешно сохранены!",
		KeyErrorOpeningFile:    "Ошибка открытия файла",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:    "Sistema de Cofre Digital de Documentos",
		KeyAppSubtitle: "Gestão de documentos segura, organizada e acessível",
		KeyWelcomeUser: "Bem-vindo, %s!",
		KeyLogout:      "Sair",
		KeySettings:    "Configurações",
		KeyFile:        "Arquivo",
		KeyLanguage:    "Idioma",
		KeyNotice:      "Cofre de Documentos",

		KeyWelcomeBack:         "Bem-vindo de volta",
		KeyJoinUs:              "Junte-se a nós",
		KeySignInSubtitle:      "Entre para acessar seus documentos",
		KeyRegisterSubtitle:    "Crie sua conta para começar",
		KeyUsername:            "Usuário",
		KeyPassword:            "Senha",
		KeySignIn:              "Entrar",
		KeyCreateAccount:       "Criar conta",
		KeyProcessing:          "Processando...",
		KeyNewToPlatform:       "Novo na plataforma?",
		KeyHaveAccount:         "Já tem uma conta?",
		KeyUsernameRequired:    "O usuário é obrigatório",
		KeyUsernameTooShort:    "O usuário deve ter pelo menos 3 caracteres",
		KeyPasswordRequired:    "A senha é obrigatória",
		KeyPasswordTooShort:    "A senha deve ter pelo menos 6 caracteres",
		KeyRegistrationSuccess: "Cadastro realizado! Faça login.",
		KeyAuthFailed:          "Falha na autenticação",

		KeyUploadHeading:    "Enviar novo documento",
		KeyUploadHint:       "Arraste e solte seu arquivo ou clique para procurar",
		KeyDocumentTitle:    "Título do documento",
		KeyCategory:         "Categoria",
		KeyBrowse:           "Procurar",
		KeyDropHere:         "Solte seu arquivo aqui",
		KeySupportedFormats: "Suporta: PDF, DOC, DOCX, TXT, JPG, PNG, GIF",
		KeyUpload:           "Enviar",
		KeyUploading:        "Enviando...",
		KeyUploadProgress:   "Enviando... %d%%",
		KeyFillAllFields:    "Preencha todos os campos e selecione um arquivo.",
		KeyUploadSuccess:    "Documento enviado com sucesso!",
		KeyUploadFailed:     "Falha ao enviar documento: %s",

		KeySearchHeading:     "Pesquisar e filtrar",
		KeySearchPlaceholder: "Pesquisar documentos por título...",
		KeySearch:            "Pesquisar",
		KeyClear:             "Limpar",

		KeyDocumentsCount: "Documentos (%d)",
		KeyNoDocuments:    "Nenhum documento enviado ainda.",
		KeyDelete:         "Excluir",
		KeyDownload:       "Baixar",

		KeyDownloadSettings:    "Configurações de download",
		KeyInterfaceSettings:   "Configurações de interface",
		KeyConnectionSettings:  "Conexão",
		KeyDownloadDirectory:   "Diretório de Download",
		KeyAskWhereToSave:      "Perguntar onde salvar cada download",
		KeyRevealAfterDownload: "Mostrar arquivos baixados no gerenciador de arquivos",
		KeyOpenAfterDownload:   "Abrir arquivos baixados com o aplicativo padrão",
		KeyAPIURL:              "URL da API de documentos",
		KeyAPIURLHint:          "Deixe vazio para seleção automática. Aplica-se após reiniciar.",
		KeySelectLanguage:      "Selecione o idioma",
		KeySave:                "Salvar",
		KeyCancel:              "Cancelar",
		KeySettingsSaved:       "Configurações salvas com sucesso!",
		KeyErrorOpeningFile:    "Erro ao abrir arquivo",
	}
}
