package state

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/gharkeseva/vendor-dashboard/internal/models"
)

// Action is a typed state mutation. Reducers cannot fail; an action that
// finds nothing to change is a no-op.
type Action interface {
	apply(s *Store)
}

// Subscriber receives a snapshot after every committed action.
type Subscriber func(AppState)

// Store owns the application state. All mutation flows through Apply, either
// directly or via the Dispatch channel drained by Run, so commits are
// serialized the same way whichever path delivers them.
type Store struct {
	mu      sync.RWMutex
	state   AppState
	actions chan Action

	// pendingProfile keeps the pre-patch profile per in-flight optimistic
	// edit so a failed request can roll back exactly what it changed.
	pendingProfile map[uuid.UUID]*models.VendorProfile

	subMu  sync.Mutex
	subs   map[int]Subscriber
	nextID int
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		state: AppState{
			Connection: ConnDisconnected,
			Flags:      make(map[string]bool),
		},
		actions:        make(chan Action, 64),
		pendingProfile: make(map[uuid.UUID]*models.VendorProfile),
		subs:           make(map[int]Subscriber),
	}
}

// Run drains the dispatch channel until the context ends.
func (s *Store) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case a := <-s.actions:
			s.Apply(a)
		}
	}
}

// Dispatch queues an action for the run loop.
func (s *Store) Dispatch(a Action) {
	s.actions <- a
}

// Apply commits an action synchronously and notifies subscribers.
func (s *Store) Apply(a Action) {
	s.mu.Lock()
	a.apply(s)
	snap := s.state.clone()
	s.mu.Unlock()

	s.notify(snap)
}

// TrySetFlag atomically sets a flag, returning false when it was already
// set. This is the duplicate-submission guard for in-flight operations.
func (s *Store) TrySetFlag(key string) bool {
	s.mu.Lock()
	if s.state.Flags[key] {
		s.mu.Unlock()
		return false
	}
	s.state.Flags[key] = true
	snap := s.state.clone()
	s.mu.Unlock()

	s.notify(snap)
	return true
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() AppState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.clone()
}

// Subscribe registers a callback; the returned function removes it.
func (s *Store) Subscribe(fn Subscriber) func() {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	id := s.nextID
	s.nextID++
	s.subs[id] = fn

	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subs, id)
	}
}

func (s *Store) notify(snap AppState) {
	s.subMu.Lock()
	subs := make([]Subscriber, 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.subMu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
}
