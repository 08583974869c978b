package ui

import (
	"context"
	"errors"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"go.uber.org/zap"

	"github.com/ytget/doc-vault/internal/api"
	"github.com/ytget/doc-vault/internal/model"
)

// Auth form field names used in FieldErrors
const (
	FieldUsername = "username"
	FieldPassword = "password"
)

// credentials carries the validation rules of the auth panel
type credentials struct {
	Username string `validate:"notblank,min=3"`
	Password string `validate:"required,min=6"`
}

// AuthForm is the login/register panel
type AuthForm struct {
	api          AuthAPI
	dispatch     Dispatcher
	notifier     Notifier
	localization *Localization
	logger       *zap.Logger
	validate     *validator.Validate

	onLogin func(username string)

	mode       model.AuthMode
	submitting bool
	errors     model.FieldErrors

	// UI components
	headingLabel  *widget.Label
	subtitleLabel *widget.Label
	usernameEntry *widget.Entry
	passwordEntry *widget.Entry
	usernameError *widget.Label
	passwordError *widget.Label
	submitBtn     *widget.Button
	switchLabel   *widget.Label
	switchBtn     *widget.Button
	content       *fyne.Container
}

// NewAuthForm creates the auth panel in login mode
func NewAuthForm(authAPI AuthAPI, dispatch Dispatcher, notifier Notifier, localization *Localization, logger *zap.Logger) *AuthForm {
	validate := validator.New()
	// registration of a built-in validator cannot fail
	_ = validate.RegisterValidation("notblank", validators.NotBlank)

	f := &AuthForm{
		api:          authAPI,
		dispatch:     dispatch,
		notifier:     notifier,
		localization: localization,
		logger:       logger,
		validate:     validate,
		mode:         model.AuthModeLogin,
		errors:       model.FieldErrors{},
	}
	f.createUI()
	return f
}

// SetOnLogin sets the callback fired after a successful login
func (f *AuthForm) SetOnLogin(callback func(username string)) {
	f.onLogin = callback
}

// Container returns the panel's root object
func (f *AuthForm) Container() fyne.CanvasObject {
	return f.content
}

// Mode returns the current mode
func (f *AuthForm) Mode() model.AuthMode {
	return f.mode
}

// Errors returns the validation errors currently shown
func (f *AuthForm) Errors() model.FieldErrors {
	out := model.FieldErrors{}
	for k, v := range f.errors {
		out[k] = v
	}
	return out
}

func (f *AuthForm) createUI() {
	f.headingLabel = widget.NewLabel("")
	f.headingLabel.TextStyle = fyne.TextStyle{Bold: true}
	f.headingLabel.Alignment = fyne.TextAlignCenter
	f.subtitleLabel = widget.NewLabel("")
	f.subtitleLabel.Alignment = fyne.TextAlignCenter

	f.usernameEntry = widget.NewEntry()
	f.usernameEntry.OnChanged = func(string) { f.clearErrors() }
	f.passwordEntry = widget.NewPasswordEntry()
	f.passwordEntry.OnChanged = func(string) { f.clearErrors() }
	f.passwordEntry.OnSubmitted = func(string) { f.Submit() }

	f.usernameError = widget.NewLabel("")
	f.usernameError.Importance = widget.DangerImportance
	f.usernameError.Hide()
	f.passwordError = widget.NewLabel("")
	f.passwordError.Importance = widget.DangerImportance
	f.passwordError.Hide()

	f.submitBtn = widget.NewButton("", f.Submit)
	f.submitBtn.Importance = widget.HighImportance

	f.switchLabel = widget.NewLabel("")
	f.switchBtn = widget.NewButton("", f.SwitchMode)
	f.switchBtn.Importance = widget.LowImportance

	f.content = container.NewVBox(
		f.headingLabel,
		f.subtitleLabel,
		container.NewBorder(nil, nil, widget.NewLabel(IconUser), nil, f.usernameEntry),
		f.usernameError,
		container.NewBorder(nil, nil, widget.NewLabel(IconLock), nil, f.passwordEntry),
		f.passwordError,
		f.submitBtn,
		container.NewCenter(container.NewHBox(f.switchLabel, f.switchBtn)),
	)
	f.RefreshTexts()
}

// RefreshTexts re-applies localized texts for the current mode
func (f *AuthForm) RefreshTexts() {
	l := f.localization
	f.usernameEntry.SetPlaceHolder(l.GetText(KeyUsername))
	f.passwordEntry.SetPlaceHolder(l.GetText(KeyPassword))

	if f.mode == model.AuthModeLogin {
		f.headingLabel.SetText(IconWave + " " + l.GetText(KeyWelcomeBack))
		f.subtitleLabel.SetText(l.GetText(KeySignInSubtitle))
		f.switchLabel.SetText(l.GetText(KeyNewToPlatform))
		f.switchBtn.SetText(l.GetText(KeyCreateAccount))
	} else {
		f.headingLabel.SetText(IconRocket + " " + l.GetText(KeyJoinUs))
		f.subtitleLabel.SetText(l.GetText(KeyRegisterSubtitle))
		f.switchLabel.SetText(l.GetText(KeyHaveAccount))
		f.switchBtn.SetText(l.GetText(KeySignIn))
	}
	f.updateSubmitButton()
}

func (f *AuthForm) updateSubmitButton() {
	l := f.localization
	switch {
	case f.submitting:
		f.submitBtn.SetText(l.GetText(KeyProcessing))
		f.submitBtn.Disable()
	case f.mode == model.AuthModeLogin:
		f.submitBtn.SetText(IconKey + " " + l.GetText(KeySignIn))
		f.submitBtn.Enable()
	default:
		f.submitBtn.SetText(IconSparkles + " " + l.GetText(KeyCreateAccount))
		f.submitBtn.Enable()
	}
}

// Validate checks username and password and returns every violation at once
func (f *AuthForm) Validate(username, password string) model.FieldErrors {
	errs := model.FieldErrors{}

	err := f.validate.Struct(credentials{Username: username, Password: password})
	var violations validator.ValidationErrors
	if !errors.As(err, &violations) {
		return errs
	}

	for _, v := range violations {
		switch v.Field() {
		case "Username":
			if v.Tag() == "min" {
				errs[FieldUsername] = f.localization.GetText(KeyUsernameTooShort)
			} else {
				errs[FieldUsername] = f.localization.GetText(KeyUsernameRequired)
			}
		case "Password":
			if v.Tag() == "min" {
				errs[FieldPassword] = f.localization.GetText(KeyPasswordTooShort)
			} else {
				errs[FieldPassword] = f.localization.GetText(KeyPasswordRequired)
			}
		}
	}
	return errs
}

// Submit validates the fields and issues login or register for the current mode
func (f *AuthForm) Submit() {
	if f.submitting {
		return
	}

	username, password := f.usernameEntry.Text, f.passwordEntry.Text
	errs := f.Validate(username, password)
	if !errs.Empty() {
		f.showErrors(errs)
		return
	}
	f.clearErrors()

	mode := f.mode
	f.submitting = true
	f.updateSubmitButton()

	f.dispatch.Background(func() {
		var err error
		if mode == model.AuthModeLogin {
			err = f.api.Login(context.Background(), username, password)
		} else {
			err = f.api.Register(context.Background(), username, password)
		}

		f.dispatch.Main(func() {
			f.submitting = false
			f.finishSubmit(mode, username, err)
			f.updateSubmitButton()
		})
	})
}

func (f *AuthForm) finishSubmit(mode model.AuthMode, username string, err error) {
	if err != nil {
		f.logger.Warn("authentication failed", zap.String("mode", string(mode)), zap.String("user", username), zap.Error(err))
		message := api.ServerError(err)
		if message == "" {
			message = f.localization.GetText(KeyAuthFailed)
		}
		f.notifier.Error(message)
		return
	}

	if mode == model.AuthModeLogin {
		f.logger.Info("login succeeded", zap.String("user", username))
		if f.onLogin != nil {
			f.onLogin(username)
		}
	} else {
		f.logger.Info("registration succeeded", zap.String("user", username))
		f.notifier.Info(f.localization.GetText(KeyRegistrationSuccess))
		f.mode = model.AuthModeLogin
		f.RefreshTexts()
	}
	f.clearFields()
}

// SwitchMode toggles between login and register after a short cosmetic delay
func (f *AuthForm) SwitchMode() {
	f.switchBtn.Disable()
	f.dispatch.After(ModeSwitchDelay, func() {
		f.mode = f.mode.Toggle()
		f.clearErrors()
		f.RefreshTexts()
		f.switchBtn.Enable()
	})
}

func (f *AuthForm) showErrors(errs model.FieldErrors) {
	f.errors = errs
	setErrorLabel(f.usernameError, errs[FieldUsername])
	setErrorLabel(f.passwordError, errs[FieldPassword])
}

func (f *AuthForm) clearErrors() {
	if len(f.errors) == 0 {
		return
	}
	f.showErrors(model.FieldErrors{})
}

func (f *AuthForm) clearFields() {
	f.usernameEntry.SetText("")
	f.passwordEntry.SetText("")
	f.clearErrors()
}

func setErrorLabel(label *widget.Label, message string) {
	label.SetText(message)
	if message == "" {
		label.Hide()
	} else {
		label.Show()
	}
}
