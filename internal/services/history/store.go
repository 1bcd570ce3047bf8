// Package history keeps per-sender conversation history in memory.
// History is process-local and is lost on restart.
package history

import (
	"context"
	"encoding/json"
	"time"

	"github.com/patrickmn/go-cache"
)

const defaultCleanupInterval = 10 * time.Minute

// History is the ordered list of turns for one sender.
// Each turn is kept exactly as the AI backend returned it.
type History []json.RawMessage

// Clone returns a deep copy of h. The result is never nil.
func (h History) Clone() History {
	out := make(History, len(h))
	for i, turn := range h {
		out[i] = append(json.RawMessage(nil), turn...)
	}
	return out
}

// Store is an in-memory history store keyed by sender identifier.
// Concurrent writers for the same sender race; the last Put wins.
type Store struct {
	cache *cache.Cache
}

// NewStore creates a store. A ttl of zero keeps history for the process lifetime.
func NewStore(ttl time.Duration) *Store {
	expiration := cache.NoExpiration
	cleanup := time.Duration(0)
	if ttl > 0 {
		expiration = ttl
		cleanup = min(ttl, defaultCleanupInterval)
	}
	return &Store{
		cache: cache.New(expiration, cleanup),
	}
}

// Get returns a copy of the history stored for senderID, or an empty history.
func (s *Store) Get(_ context.Context, senderID string) (History, error) {
	stored, found := s.cache.Get(senderID)
	if !found {
		return History{}, nil
	}
	return stored.(History).Clone(), nil
}

// Put replaces the history stored for senderID.
func (s *Store) Put(_ context.Context, senderID string, h History) error {
	s.cache.Set(senderID, h.Clone(), cache.DefaultExpiration)
	return nil
}

// Len returns the number of senders with stored history.
func (s *Store) Len() int {
	return s.cache.ItemCount()
}
