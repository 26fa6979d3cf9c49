package config

import (
	"sync"

	"github.com/maksimkurb/keen-log/src/internal/errors"
)

// Store holds the single live Configuration.
//
// Every call is one short critical section. If a holder panics inside it, the
// store is marked poisoned and the panic continues; from then on Read and
// Replace fail with a CONFIG_LOCK_ERROR instead of handing out state that may
// be half-written.
type Store struct {
	mu       sync.Mutex
	current  *Configuration
	poisoned bool
}

// NewStore returns a store publishing cfg. A nil cfg leaves the store empty,
// and Read fails until something is published.
func NewStore(cfg *Configuration) *Store {
	return &Store{current: cfg}
}

// Read returns the published configuration. The returned value must not be
// modified.
func (s *Store) Read() (*Configuration, error) {
	var cfg *Configuration
	err := s.locked(func() error {
		if s.current == nil {
			return errors.NewConfigLockError("no configuration has been published", nil)
		}
		cfg = s.current
		return nil
	})
	return cfg, err
}

// Replace atomically publishes cfg. cfg must not be modified afterwards.
func (s *Store) Replace(cfg *Configuration) error {
	if cfg == nil {
		return errors.NewValidationError("cannot publish a nil configuration", nil)
	}
	return s.locked(func() error {
		s.current = cfg
		return nil
	})
}

// Poisoned reports whether a holder has panicked inside the store.
func (s *Store) Poisoned() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.poisoned
}

func (s *Store) locked(fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.poisoned {
		return errors.NewConfigLockError("configuration store is poisoned", nil)
	}

	defer func() {
		if r := recover(); r != nil {
			s.poisoned = true
			panic(r)
		}
	}()

	return fn()
}
