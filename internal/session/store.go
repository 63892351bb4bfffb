package session

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store keeps live sessions in memory, keyed by session id. There is no
// backing storage; an expired or lost session simply starts over empty.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
}

// NewStore creates a store whose sessions expire after ttl of inactivity.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
	}
}

// New mints a fresh session.
func (st *Store) New() *Session {
	st.mu.Lock()
	defer st.mu.Unlock()

	sess := newSession(uuid.NewString())
	st.sessions[sess.ID] = sess
	return sess
}

// GetOrCreate returns the session for id, recreating an empty one when the
// id is unknown. A valid token whose state was lost to a restart or sweep
// gets a blank session rather than an error.
func (st *Store) GetOrCreate(id string) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()

	if sess, ok := st.sessions[id]; ok {
		return sess
	}
	sess := newSession(id)
	st.sessions[id] = sess
	return sess
}

// Len is the number of live sessions.
func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

// Prune drops sessions idle longer than the ttl and returns how many went.
func (st *Store) Prune() int {
	st.mu.Lock()
	defer st.mu.Unlock()

	cutoff := time.Now().Add(-st.ttl)
	removed := 0
	for id, sess := range st.sessions {
		sess.mu.Lock()
		idle := sess.lastSeen.Before(cutoff)
		sess.mu.Unlock()
		if idle {
			delete(st.sessions, id)
			removed++
		}
	}
	return removed
}

// StartSweeper prunes idle sessions on an interval until ctx is done.
func (st *Store) StartSweeper(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if removed := st.Prune(); removed > 0 {
					log.Printf("[SESSION] [INFO] pruned %d idle sessions", removed)
				}
			}
		}
	}()
}
