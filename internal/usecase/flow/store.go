package flow

import (
	"sync"

	"tablebook/internal/domain/reservation"
	"tablebook/internal/usecase/commands"
	"tablebook/internal/usecase/queries"
)

// Store keeps one wizard controller per browsing session. Drafts are
// ephemeral: a server restart forgets them and the customer starts over.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Controller
	promos   queries.PromotionQueries
	booking  commands.BookingCommands
}

func NewStore(promos queries.PromotionQueries, booking commands.BookingCommands) *Store {
	return &Store{
		sessions: make(map[string]*Controller),
		promos:   promos,
		booking:  booking,
	}
}

// Start begins a fresh wizard for the session, replacing any draft in
// progress.
func (s *Store) Start(sessionID string, channel reservation.Channel) *Controller {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := NewController(channel, s.promos, s.booking)
	s.sessions[sessionID] = c
	return c
}

func (s *Store) Get(sessionID string) (*Controller, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.sessions[sessionID]
	return c, ok
}

func (s *Store) End(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}
