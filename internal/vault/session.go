package vault

import (
	"sync"

	"github.com/mshevelev/vault-hub/internal/crypto"
)

// session holds the in-memory master key for an unlocked vault session.
// The key lives nowhere else: it is never persisted, logged or sent over
// the network, and clear wipes it in place.
type session struct {
	mu  sync.RWMutex
	key []byte
}

// unlocked reports whether a key is currently held.
func (s *session) unlocked() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.key != nil
}

// store takes ownership of key and makes the session unlocked. Any previous
// key is wiped first.
func (s *session) store(key []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	crypto.Zero(s.key)
	s.key = key
}

// clear wipes the key and makes the session locked. Safe when already
// locked.
func (s *session) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	crypto.Zero(s.key)
	s.key = nil
}

// withKey runs fn with the session key under a read lock, so a concurrent
// clear cannot wipe the key mid-use. Returns ErrVaultLocked without calling
// fn when no key is held. fn must not retain the slice.
func (s *session) withKey(fn func(key []byte) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.key == nil {
		return ErrVaultLocked
	}

	return fn(s.key)
}
