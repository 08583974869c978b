package vault

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/ytget/doc-vault/internal/model"
)

// GuestUsername is the session assumed when authentication is skipped
const GuestUsername = "guest"

var (
	ErrSignedOut     = errors.New("no active session")
	ErrEmptyUsername = errors.New("username is empty")
)

// State is a snapshot of the vault handed to the UI
type State struct {
	Session   model.Session
	Documents []model.Document
}

// Service is the single owner of the session and the document collection
type Service struct {
	lister   Lister
	store    SessionStore
	logger   *zap.Logger
	skipAuth bool

	mu        sync.RWMutex
	session   model.Session
	documents []model.Document

	// generation changes with every session change; fetches started under
	// an older generation are discarded
	generation uint64

	onUpdate func(State) // callback for UI updates
}

// Option configures a Service
type Option func(*Service)

// WithSkipAuth makes Restore assume the guest session when nothing is persisted
func WithSkipAuth(skip bool) Option {
	return func(s *Service) {
		s.skipAuth = skip
	}
}

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewService creates a signed-out vault
func NewService(lister Lister, store SessionStore, opts ...Option) *Service {
	s := &Service{
		lister:    lister,
		store:     store,
		logger:    zap.NewNop(),
		documents: []model.Document{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetUpdateCallback sets the callback function for state updates
func (s *Service) SetUpdateCallback(callback func(State)) {
	s.mu.Lock()
	s.onUpdate = callback
	s.mu.Unlock()
}

// Restore resumes the persisted session, or the guest session when
// authentication is skipped, and fetches its documents. Without either it
// leaves the vault signed out.
func (s *Service) Restore(ctx context.Context) error {
	username := strings.TrimSpace(s.store.LoadSession())
	if username == "" && s.skipAuth {
		username = GuestUsername
	}
	if username == "" {
		s.notifyUpdate()
		return nil
	}

	s.logger.Info("session restored", zap.String("user", username))
	s.setSession(username)
	return s.Fetch(ctx, model.DocumentFilter{})
}

// SignIn starts a session for username, persists it and fetches documents
func (s *Service) SignIn(ctx context.Context, username string) error {
	if username == "" {
		return ErrEmptyUsername
	}

	s.store.SaveSession(username)
	s.setSession(username)
	s.logger.Info("signed in", zap.String("user", username))
	return s.Fetch(ctx, model.DocumentFilter{})
}

// SignOut clears the persisted slot, the session and the collection
func (s *Service) SignOut() {
	s.mu.Lock()
	s.store.ClearSession()
	user := s.session.Username
	s.session = model.Session{}
	s.documents = []model.Document{}
	s.generation++
	s.mu.Unlock()

	s.logger.Info("signed out", zap.String("user", user))
	s.notifyUpdate()
}

// Fetch replaces the collection with the server's view for filter. On error
// the collection is kept. A result arriving after the session changed is
// dropped.
func (s *Service) Fetch(ctx context.Context, filter model.DocumentFilter) error {
	s.mu.RLock()
	generation := s.generation
	active := s.session.Active()
	s.mu.RUnlock()

	if !active {
		return ErrSignedOut
	}

	docs, err := s.lister.ListDocuments(ctx, filter)
	if err != nil {
		s.logger.Error("failed to fetch documents",
			zap.String("search", filter.Search),
			zap.String("sort", filter.Sort),
			zap.Error(err),
		)
		return fmt.Errorf("fetch documents: %w", err)
	}

	s.mu.Lock()
	if generation != s.generation {
		s.mu.Unlock()
		s.logger.Debug("discarding stale document list", zap.Int("count", len(docs)))
		return nil
	}
	s.documents = append([]model.Document{}, docs...)
	s.mu.Unlock()

	s.logger.Debug("documents fetched", zap.Int("count", len(docs)), zap.String("search", filter.Search))
	s.notifyUpdate()
	return nil
}

// Search fetches the documents matching query on the server. An empty
// query lists everything.
func (s *Service) Search(ctx context.Context, query string) error {
	return s.Fetch(ctx, model.DocumentFilter{Search: query})
}

// Generation identifies the current session. Work started under one
// generation is stale once it changes.
func (s *Service) Generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generation
}

// AddDocument appends a document uploaded under generation. It reports false
// and drops doc when that session has ended.
func (s *Service) AddDocument(generation uint64, doc model.Document) bool {
	s.mu.Lock()
	if generation != s.generation || !s.session.Active() {
		s.mu.Unlock()
		s.logger.Debug("discarding upload from an ended session", zap.String("id", doc.ID.String()))
		return false
	}
	s.documents = append(s.documents, doc)
	s.mu.Unlock()

	s.notifyUpdate()
	return true
}

// RemoveDocument drops the document with id from the collection
func (s *Service) RemoveDocument(id model.DocumentID) {
	s.mu.Lock()
	s.documents = model.RemoveDocument(s.documents, id)
	s.mu.Unlock()

	s.notifyUpdate()
}

// State returns a snapshot of the session and the collection
func (s *Service) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot()
}

// Documents returns a copy of the collection
func (s *Service) Documents() []model.Document {
	return s.State().Documents
}

// Session returns the current session
func (s *Service) Session() model.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

func (s *Service) setSession(username string) {
	s.mu.Lock()
	s.session = model.Session{Username: username}
	s.documents = []model.Document{}
	s.generation++
	s.mu.Unlock()

	s.notifyUpdate()
}

// snapshot must be called with mu held
func (s *Service) snapshot() State {
	docs := make([]model.Document, len(s.documents))
	copy(docs, s.documents)
	return State{Session: s.session, Documents: docs}
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate() {
	s.mu.RLock()
	state := s.snapshot()
	callback := s.onUpdate
	s.mu.RUnlock()

	if callback != nil {
		callback(state)
	}
}
