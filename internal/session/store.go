package session

import (
	"sync"
	"time"

	"stock-organizer/internal/logger"
	"stock-organizer/internal/model"

	"github.com/google/uuid"
)

// Store keeps live sessions by id. Idle sessions are swept on access.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time
}

// NewStore creates a store; ttl <= 0 disables expiry
func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Create registers a new session for an organized upload
func (st *Store) Create(source string, records []model.ProductRecord) *Session {
	s := New(records)
	s.ID = uuid.NewString()
	s.Source = source

	now := st.now()
	s.Created = now
	s.Touch(now)

	st.mu.Lock()
	defer st.mu.Unlock()

	st.sweepLocked(now)
	st.sessions[s.ID] = s

	logger.Debug("Session %s created for %q (%d records)", s.ID, source, len(records))
	return s
}

// Get returns a live session and refreshes its idle timer
func (st *Store) Get(id string) (*Session, error) {
	now := st.now()

	st.mu.Lock()
	defer st.mu.Unlock()

	st.sweepLocked(now)
	s, ok := st.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	s.Touch(now)
	return s, nil
}

// Delete drops a session
func (st *Store) Delete(id string) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	if _, ok := st.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(st.sessions, id)
	logger.Debug("Session %s deleted", id)
	return nil
}

// Len returns the number of live sessions
func (st *Store) Len() int {
	now := st.now()

	st.mu.Lock()
	defer st.mu.Unlock()

	st.sweepLocked(now)
	return len(st.sessions)
}

func (st *Store) sweepLocked(now time.Time) {
	if st.ttl <= 0 {
		return
	}
	for id, s := range st.sessions {
		if s.idleSince(now) > st.ttl {
			delete(st.sessions, id)
			logger.Debug("Session %s expired", id)
		}
	}
}
