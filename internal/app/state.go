package app

import "sync"

// State wraps an App in a single mutex. Documents have no internal locking;
// every collaborator that touches them does so through one of these
// accessors while holding the lock.
type State struct {
	mu  sync.Mutex
	app *App
}

// NewState wraps app for concurrent use.
func NewState(app *App) *State {
	return &State{app: app}
}

// Lock runs fn with exclusive access to the application.
func (s *State) Lock(fn func(*App)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.app)
}

// LockErr runs fn with exclusive access and returns its error.
func (s *State) LockErr(fn func(*App) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.app)
}

// ReferencedTexturePaths snapshots the referenced frame paths under the
// lock, for collaborators that run outside it.
func (s *State) ReferencedTexturePaths() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.app.ReferencedTexturePaths()
}
