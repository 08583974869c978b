// Package vault owns the client-side state of the document vault: the
// signed-in session and the document collection shown to the user. Every
// mutation goes through Service, which notifies the UI with a snapshot.
package vault
