// Package session holds the process-wide slot for the one active session.
//
// Every read or write of a session's fields goes through the store so that
// RSVP writes, status reads and scheduler checkpoints share a single
// reader/writer lock. Callbacks passed to View and Mutate must not block on
// the network; take a Snapshot first and talk to Discord afterwards.
package session

import (
	"sync"

	"github.com/KirkDiggler/hostbot/internal/common/clock"
	"github.com/KirkDiggler/hostbot/internal/models"
)

// Config holds the dependencies of the store
type Config struct {
	Clock clock.Clock
}

// Store is a single-slot holder for at most one session
type Store struct {
	mu      sync.RWMutex
	current *models.Session
	clock   clock.Clock
}

// NewStore creates an empty store
func NewStore(cfg *Config) (*Store, error) {
	if cfg == nil || cfg.Clock == nil {
		return nil, ErrNilClock
	}

	return &Store{
		clock: cfg.Clock,
	}, nil
}

// Present reports whether a session occupies the slot
func (s *Store) Present() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current != nil
}

// Started reports whether a session is present and its start time has passed
func (s *Store) Started() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current != nil && s.current.Started(s.clock.Now())
}

// Create installs sess if the slot is empty. It never overwrites.
func (s *Store) Create(sess *models.Session) error {
	if sess == nil {
		return ErrNilSession
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current != nil {
		return ErrSessionAlreadyRunning
	}

	if sess.Participants == nil {
		sess.Participants = make(map[string]models.RSVP)
	}
	s.current = sess
	return nil
}

// View runs fn with the current session under the read lock
func (s *Store) View(fn func(sess *models.Session)) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return ErrNoSession
	}

	fn(s.current)
	return nil
}

// Mutate runs fn with the current session under the write lock.
// An error returned by fn is passed through.
func (s *Store) Mutate(fn func(sess *models.Session) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return ErrNoSession
	}

	return fn(s.current)
}

// Snapshot returns a copy of the current session
func (s *Store) Snapshot() (*models.Session, error) {
	var snapshot *models.Session
	err := s.View(func(sess *models.Session) {
		snapshot = sess.Clone()
	})
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}

// SetRSVP records state for userID, replacing any earlier response
func (s *Store) SetRSVP(userID string, state models.RSVP) error {
	return s.Mutate(func(sess *models.Session) error {
		sess.Participants[userID] = state
		return nil
	})
}

// Clear empties the slot and returns the session that was in it, if any.
// The caller must cancel the session's timer first.
func (s *Store) Clear() *models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.current
	s.current = nil
	return sess
}
