package vault

import (
	"context"

	"github.com/ytget/doc-vault/internal/model"
)

// Lister fetches the document collection from the backend
type Lister interface {
	ListDocuments(ctx context.Context, filter model.DocumentFilter) ([]model.Document, error)
}

// SessionStore persists the signed-in username between runs
type SessionStore interface {
	LoadSession() string
	SaveSession(username string)
	ClearSession()
}

// Coordinator defines the operations the UI performs on the vault state.
type Coordinator interface {
	SetUpdateCallback(func(State))
	Restore(ctx context.Context) error
	SignIn(ctx context.Context, username string) error
	SignOut()
	Fetch(ctx context.Context, filter model.DocumentFilter) error
	Search(ctx context.Context, query string) error
	Generation() uint64
	AddDocument(generation uint64, doc model.Document) bool
	RemoveDocument(id model.DocumentID)
	State() State
}

var _ Coordinator = (*Service)(nil)
