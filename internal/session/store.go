// Package session keeps the current context board per session. A newer
// phrase supersedes an in-flight one: only the latest ticket may commit.
package session

import (
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/ppiankov/contextboard/internal/model"
)

// DefaultTTL is how long an untouched board survives
const DefaultTTL = 30 * time.Minute

// Ticket identifies one interpretation request within a session
type Ticket struct {
	Session string
	Seq     uint64
}

// Store holds at most one board per session, expiring after a TTL
type Store struct {
	boards *gocache.Cache
	ttl    time.Duration

	mu      sync.Mutex
	tickets map[string]uint64
}

// NewStore creates a store. Expired boards are purged lazily on Begin, so
// no janitor goroutine is started.
func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		boards:  gocache.New(ttl, 0),
		ttl:     ttl,
		tickets: make(map[string]uint64),
	}
}

// Begin issues a ticket that supersedes every earlier ticket for session
func (s *Store) Begin(session string) Ticket {
	s.boards.DeleteExpired()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.tickets[session]++
	return Ticket{Session: session, Seq: s.tickets[session]}
}

// Commit installs board as the session's current board unless t was
// superseded. It reports whether the board was installed.
func (s *Store) Commit(t Ticket, board *model.ContextBoard) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.tickets[t.Session] != t.Seq {
		return false
	}
	s.boards.Set(t.Session, board, s.ttl)
	return true
}

// Current returns the session's board, if any
func (s *Store) Current(session string) (*model.ContextBoard, bool) {
	val, found := s.boards.Get(session)
	if !found {
		return nil, false
	}
	return val.(*model.ContextBoard), true
}

// Clear destroys the session's board and invalidates in-flight tickets
func (s *Store) Clear(session string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.boards.Delete(session)
	if _, ok := s.tickets[session]; ok {
		s.tickets[session]++
	}
}
