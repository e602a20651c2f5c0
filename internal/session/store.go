// Package session holds the in-memory session state of the client and the
// on-disk mirror of the anti-forgery token.
//
// The store is the only shared mutable state in the process. Login and
// logout own every field; the add-to-cart flow owns only the draft order id.
// All mutations funnel through the named transitions below so that rule
// stays enforceable.
package session

import "sync"

// State is a snapshot of the session fields.
type State struct {
	UserLogin    string
	IsStaff      bool
	IsSuperuser  bool
	IsCook       bool
	DraftOrderID int // 0 means "no known draft"
}

// Authenticated reports whether a user is logged in.
func (s State) Authenticated() bool { return s.UserLogin != "" }

// RoleFlags carries the role fields the login response reports.
type RoleFlags struct {
	IsStaff     bool
	IsSuperuser bool
	IsCook      bool
}

// Store is the process-wide session store.
type Store struct {
	mu    sync.RWMutex
	state State
}

// NewStore returns an empty (unauthenticated) store.
func NewStore() *Store { return &Store{} }

// Login replaces every session field atomically.
func (s *Store) Login(login string, roles RoleFlags, draftOrderID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = State{
		UserLogin:    login,
		IsStaff:      roles.IsStaff,
		IsSuperuser:  roles.IsSuperuser,
		IsCook:       roles.IsCook,
		DraftOrderID: draftOrderID,
	}
}

// Logout resets the store to the empty session regardless of prior state.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = State{}
}

// SetDraftOrderID updates only the draft order id.
func (s *Store) SetDraftOrderID(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.DraftOrderID = id
}

// ClearDraftOrderID resets the draft order id to the "no known draft" value.
func (s *Store) ClearDraftOrderID() {
	s.SetDraftOrderID(0)
}

// Snapshot returns a value copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}
