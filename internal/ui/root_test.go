package ui

import (
	"errors"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/doc-vault/internal/api"
	"github.com/ytget/doc-vault/internal/config"
	"github.com/ytget/doc-vault/internal/model"
	"github.com/ytget/doc-vault/internal/progress"
	"github.com/ytget/doc-vault/internal/vault"
)

type rootFixture struct {
	ui       *RootUI
	api      *fakeAPI
	settings *config.Settings
	notifier *recordingNotifier
	revealed []string
	opened   []string
}

func newRootFixture(t *testing.T, fake *fakeAPI, persisted string, opts ...vault.Option) *rootFixture {
	t.Helper()
	return newRootFixtureWith(t, fake, persisted, syncDispatcher{}, opts...)
}

func newRootFixtureWith(t *testing.T, fake *fakeAPI, persisted string, dispatch Dispatcher, opts ...vault.Option) *rootFixture {
	t.Helper()
	app := test.NewApp()
	settings := config.NewSettings(app)
	if persisted != "" {
		settings.SaveSession(persisted)
	}

	f := &rootFixture{api: fake, settings: settings, notifier: &recordingNotifier{}}
	window := test.NewWindow(nil)
	t.Cleanup(window.Close)

	f.ui = NewRootUI(window, settings, vault.NewService(fake, settings, opts...), fake,
		WithDispatcher(dispatch),
		WithNotifier(f.notifier),
		WithTracker(progress.New(progress.WithInterval(0))),
		WithSaver(api.SaverFunc(nil)),
		WithRevealer(func(path string) error {
			f.revealed = append(f.revealed, path)
			return nil
		}),
		WithOpener(func(path string) error {
			f.opened = append(f.opened, path)
			return nil
		}),
	)
	f.ui.Start()
	return f
}

func (f *rootFixture) login(t *testing.T, username, password string) {
	t.Helper()
	f.ui.authForm.usernameEntry.SetText(username)
	f.ui.authForm.passwordEntry.SetText(password)
	test.Tap(f.ui.authForm.submitBtn)
}

func TestRootShowsAuthScreenWithoutSession(t *testing.T) {
	f := newRootFixture(t, &fakeAPI{}, "")

	assert.True(t, f.ui.authScreen.Visible())
	assert.False(t, f.ui.mainScreen.Visible())
	assert.Equal(t, "Digital Document Vault System", f.ui.titleLabel.Text)
	assert.Empty(t, f.api.listCalls)
}

func TestRootLoginPersistsSessionAndFetchesOnce(t *testing.T) {
	fake := &fakeAPI{listDocs: sampleDocs}
	f := newRootFixture(t, fake, "")

	f.login(t, "alice", "secret1")

	assert.Equal(t, "alice", f.settings.LoadSession())
	require.Len(t, fake.listCalls, 1)
	assert.True(t, fake.listCalls[0].IsZero())

	assert.True(t, f.ui.mainScreen.Visible())
	assert.False(t, f.ui.authScreen.Visible())
	assert.Equal(t, "Welcome, alice!", f.ui.welcomeLabel.Text)
	assert.Equal(t, sampleDocs, f.ui.documentList.Documents())
}

func TestRootInvalidLoginMakesNoCall(t *testing.T) {
	fake := &fakeAPI{}
	f := newRootFixture(t, fake, "")

	f.login(t, "al", "123")

	assert.Empty(t, fake.logins)
	assert.Empty(t, fake.listCalls)
	assert.Empty(t, f.settings.LoadSession())
	assert.False(t, f.ui.authForm.Errors().Empty())
}

func TestRootRestoresPersistedSession(t *testing.T) {
	fake := &fakeAPI{listDocs: sampleDocs}
	f := newRootFixture(t, fake, "bob")

	assert.True(t, f.ui.mainScreen.Visible())
	assert.Equal(t, "Welcome, bob!", f.ui.welcomeLabel.Text)
	assert.Len(t, fake.listCalls, 1)
	assert.Equal(t, "Documents (2)", f.ui.documentList.headingLabel.Text)
}

func TestRootSkipAuthUsesGuest(t *testing.T) {
	fake := &fakeAPI{}
	f := newRootFixture(t, fake, "", vault.WithSkipAuth(true))

	assert.True(t, f.ui.mainScreen.Visible())
	assert.Equal(t, vault.GuestUsername, f.ui.State().Session.Username)
	assert.Empty(t, f.settings.LoadSession())
	assert.Len(t, fake.listCalls, 1)
}

func TestRootListFailureStillRenders(t *testing.T) {
	fake := &fakeAPI{listErr: errors.New("connection refused")}
	f := newRootFixture(t, fake, "carol")

	assert.Equal(t, "Digital Document Vault System", f.ui.titleLabel.Text)
	assert.True(t, f.ui.mainScreen.Visible())
	assert.Empty(t, f.ui.documentList.Documents())
	assert.True(t, f.ui.documentList.emptyLabel.Visible())
	assert.Empty(t, f.notifier.errors)
}

func TestRootSearchAndClear(t *testing.T) {
	fake := &fakeAPI{}
	f := newRootFixture(t, fake, "alice")

	f.ui.searchBar.entry.SetText("invoice")
	test.Tap(f.ui.searchBar.searchBtn)
	test.Tap(f.ui.searchBar.clearBtn)

	require.Len(t, fake.listCalls, 3)
	assert.Equal(t, model.DocumentFilter{Search: "invoice"}, fake.listCalls[1])
	assert.True(t, fake.listCalls[2].IsZero())
}

func TestRootUploadAddsDocumentOnce(t *testing.T) {
	created := model.Document{ID: "9", DocumentTitle: "Lease", Category: "Documents", UploadDate: "2024-05-05"}
	fake := &fakeAPI{uploadDoc: created}
	f := newRootFixture(t, fake, "alice")

	f.ui.uploadForm.SelectFile(textFile("lease.pdf", "%PDF"))
	f.ui.uploadForm.categoryEntry.SetText("Documents")
	test.Tap(f.ui.uploadForm.submitBtn)

	require.Len(t, fake.uploads, 1)
	assert.Equal(t, "lease", fake.uploads[0].req.Title)
	assert.Equal(t, []model.Document{created}, f.ui.documentList.Documents())
	assert.Len(t, fake.listCalls, 1)
	assert.Empty(t, f.ui.uploadForm.titleEntry.Text)
	assert.Nil(t, f.ui.uploadForm.Draft().File)
}

func TestRootDelete(t *testing.T) {
	fake := &fakeAPI{listDocs: sampleDocs}
	f := newRootFixture(t, fake, "alice")

	fake.deleteErr = errors.New("forbidden")
	f.ui.documentList.Delete(sampleDocs[0])
	assert.Equal(t, sampleDocs, f.ui.documentList.Documents())

	fake.deleteErr = nil
	f.ui.documentList.Delete(sampleDocs[0])
	assert.Equal(t, []model.DocumentID{"1", "1"}, fake.deletes)
	assert.Equal(t, sampleDocs[1:], f.ui.documentList.Documents())
}

func TestRootDownloadRevealFollowsPreference(t *testing.T) {
	fake := &fakeAPI{
		listDocs:       sampleDocs,
		downloadResult: &api.DownloadResult{Name: "Report.pdf", SavedPath: "/home/alice/Downloads/Report.pdf"},
	}
	f := newRootFixture(t, fake, "alice")

	f.ui.documentList.Download(sampleDocs[0])
	assert.Equal(t, []string{"/home/alice/Downloads/Report.pdf"}, f.revealed)

	assert.Empty(t, f.opened)

	f.settings.SetRevealAfterDownload(false)
	f.settings.SetOpenAfterDownload(true)
	f.ui.documentList.Download(sampleDocs[0])
	assert.Len(t, f.revealed, 1)
	assert.Equal(t, []string{"/home/alice/Downloads/Report.pdf"}, f.opened)
	assert.Len(t, fake.downloads, 2)
}

func TestRootLogout(t *testing.T) {
	fake := &fakeAPI{listDocs: sampleDocs}
	f := newRootFixture(t, fake, "alice")

	f.ui.uploadForm.SelectFile(textFile("alice-salary.pdf", "x"))
	f.ui.uploadForm.categoryEntry.SetText("Private")
	f.ui.searchBar.entry.SetText("alice secret")

	test.Tap(f.ui.logoutBtn)

	assert.True(t, f.ui.authScreen.Visible())
	assert.False(t, f.ui.mainScreen.Visible())
	assert.Empty(t, f.settings.LoadSession())
	assert.Empty(t, f.ui.documentList.Documents())
	assert.Empty(t, f.ui.welcomeLabel.Text)

	f.login(t, "bob", "secret2")
	require.Equal(t, "bob", f.ui.State().Session.Username)

	draft := f.ui.uploadForm.Draft()
	assert.Empty(t, draft.Title)
	assert.Empty(t, draft.Category)
	assert.Nil(t, draft.File)
	assert.Empty(t, f.ui.searchBar.entry.Text)
}

func TestRootUploadFromEndedSessionIsDropped(t *testing.T) {
	fake := &fakeAPI{uploadDoc: model.Document{ID: "9", DocumentTitle: "alice-private"}}
	dispatch := &queuedDispatcher{}
	f := newRootFixtureWith(t, fake, "alice", dispatch)
	dispatch.flush()
	require.Equal(t, "alice", f.ui.State().Session.Username)

	f.ui.uploadForm.SelectFile(textFile("alice-private.pdf", "x"))
	f.ui.uploadForm.categoryEntry.SetText("Private")
	test.Tap(f.ui.uploadForm.submitBtn)

	test.Tap(f.ui.logoutBtn)
	f.login(t, "bob", "secret2")
	for len(dispatch.pending) > 0 {
		dispatch.flush()
	}

	require.Equal(t, "bob", f.ui.State().Session.Username)
	assert.Len(t, fake.uploads, 1)
	assert.Empty(t, f.ui.State().Documents)
	assert.Empty(t, f.ui.documentList.Documents())
}

func TestRootUploadSinkBoundToSession(t *testing.T) {
	f := newRootFixture(t, &fakeAPI{}, "alice")
	sink := f.ui.uploadSink()

	test.Tap(f.ui.logoutBtn)
	f.login(t, "bob", "secret2")
	sink(model.Document{ID: "9", DocumentTitle: "alice-private"})
	assert.Empty(t, f.ui.documentList.Documents())

	f.ui.uploadSink()(model.Document{ID: "10", DocumentTitle: "bob-notes"})
	require.Len(t, f.ui.documentList.Documents(), 1)
	assert.Equal(t, "bob-notes", f.ui.documentList.Documents()[0].DocumentTitle)
}

func TestRootLanguageChange(t *testing.T) {
	f := newRootFixture(t, &fakeAPI{}, "alice")

	f.ui.onLanguageChange("pt")

	assert.Equal(t, "pt", f.settings.GetLanguage())
	assert.Equal(t, "pt", f.ui.localization.GetCurrentLanguage())
	assert.NotEqual(t, "Welcome, alice!", f.ui.welcomeLabel.Text)
	assert.Contains(t, f.ui.welcomeLabel.Text, "alice")
}
