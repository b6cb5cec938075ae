// Package session implements an in-memory store of opaque session tokens.
// Sessions are intentionally not durable: a restart logs everyone out.
package session

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Identity is the resolved owner of a session token.
type Identity struct {
	UserID   uuid.UUID
	Username string
}

type entry struct {
	identity  Identity
	expiresAt time.Time
}

type Store struct {
	mu       sync.Mutex
	sessions map[string]entry
	ttl      time.Duration
	done     chan struct{}
	stopOnce sync.Once
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]entry),
		ttl:      ttl,
		done:     make(chan struct{}),
	}
}

// Create issues a new opaque token bound to the given user.
func (s *Store) Create(userID uuid.UUID, username string) string {
	token := newToken()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = entry{
		identity:  Identity{UserID: userID, Username: username},
		expiresAt: time.Now().Add(s.ttl),
	}
	return token
}

// Resolve returns the identity bound to token, or false if the token is
// unknown or expired. Expired entries are removed on the spot.
func (s *Store) Resolve(token string) (Identity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[token]
	if !ok {
		return Identity{}, false
	}
	if time.Now().After(e.expiresAt) {
		delete(s.sessions, token)
		return Identity{}, false
	}
	return e.identity, true
}

// Destroy invalidates token. Destroying an unknown token is a no-op.
func (s *Store) Destroy(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

// DestroyByUserID invalidates every session belonging to userID.
func (s *Store) DestroyByUserID(userID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for token, e := range s.sessions {
		if e.identity.UserID == userID {
			delete(s.sessions, token)
		}
	}
}

// StartSweeper periodically drops expired sessions until Stop is called.
func (s *Store) StartSweeper(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.sweep()
			case <-s.done:
				return
			}
		}
	}()
}

// Stop shuts down the sweeper goroutine.
func (s *Store) Stop() {
	s.stopOnce.Do(func() {
		close(s.done)
	})
}

func (s *Store) sweep() {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()
	for token, e := range s.sessions {
		if now.After(e.expiresAt) {
			delete(s.sessions, token)
		}
	}
}

func newToken() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand never fails on supported platforms
		panic(err)
	}
	return hex.EncodeToString(b)
}
