package config

import (
	"context"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// StoreConfig holds configuration for the config store
type StoreConfig struct {
	Path   string
	Logger zerolog.Logger
}

// Store serves the current config snapshot and swaps it on reload.
// Readers never see a partially applied file.
type Store struct {
	path    string
	logger  zerolog.Logger
	current atomic.Pointer[File]

	// serializes reloads; guards modTime
	mu      sync.Mutex
	modTime time.Time
}

// NewStore loads the file at cfg.Path. A file that fails to load is fatal here.
func NewStore(cfg *StoreConfig) (*Store, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Path == "" {
		return nil, ErrEmptyPath
	}

	s := &Store{
		path:   cfg.Path,
		logger: cfg.Logger,
	}

	if err := s.load(); err != nil {
		return nil, err
	}

	return s, nil
}

// Current returns the active snapshot
func (s *Store) Current() *File {
	return s.current.Load()
}

// Reload re-reads the file. On failure the previous snapshot stays active and
// the error is logged and returned.
func (s *Store) Reload() error {
	if err := s.load(); err != nil {
		s.logger.Warn().Err(err).Str("path", s.path).Msg("config reload failed, keeping previous config")
		return err
	}

	s.logger.Info().Str("path", s.path).Msg("config reloaded")
	return nil
}

// Watch reloads the file whenever its modification time changes. It returns
// when ctx is cancelled.
func (s *Store) Watch(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if s.changed() {
				_ = s.Reload()
			}
		}
	}
}

func (s *Store) changed() bool {
	info, err := os.Stat(s.path)
	if err != nil {
		s.logger.Warn().Err(err).Str("path", s.path).Msg("failed to stat config file")
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return !info.ModTime().Equal(s.modTime)
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	info, err := os.Stat(s.path)
	if err != nil {
		return fmt.Errorf("failed to stat config file: %w", err)
	}

	f, err := Load(s.path)
	if err != nil {
		// remember the broken version so Watch does not retry it every tick
		s.modTime = info.ModTime()
		return err
	}

	s.modTime = info.ModTime()
	s.current.Store(f)

	return nil
}
