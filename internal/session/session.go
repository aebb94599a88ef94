// Package session owns all per-visitor state: the cart, the favorites set,
// the admin flag, the checkout flow stage and the single confirmed-order
// slot. Nothing here survives the session.
package session

import (
	"sync"

	"github.com/google/uuid"

	"github.com/dnicolas/tienda/internal/domain"
)

// State is the session context object. One instance per visitor, guarded by
// its own mutex so every flow transition completes before the next one runs.
type State struct {
	mu        sync.Mutex
	cart      domain.Cart
	favorites map[uuid.UUID]bool
	stage     Stage
	details   domain.CustomerDetails
	order     *domain.ConfirmedOrder
	admin     bool

	// view state: what the visitor is looking at, never alters the cart
	category string
	query    string
}

func NewState() *State {
	return &State{stage: StageBrowsing, favorites: map[uuid.UUID]bool{}, category: domain.CategoryAll}
}

// --- cart ---

func (s *State) AddItem(productID uuid.UUID, qty int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Add(productID, qty)
}

func (s *State) SetQuantity(productID uuid.UUID, qty int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.SetQuantity(productID, qty)
}

func (s *State) RemoveItem(productID uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Remove(productID)
}

func (s *State) CartItems() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]domain.CartItem, len(s.cart.Items))
	copy(cp, s.cart.Items)
	return cp
}

func (s *State) CartLines(lookup domain.PriceLookup) ([]domain.CartLine, float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Lines(lookup), s.cart.Total(lookup)
}

func (s *State) CartQuantity(productID uuid.UUID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Quantity(productID)
}

func (s *State) CartSize() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, it := range s.cart.Items {
		n += it.Quantity
	}
	return n
}

// --- favorites ---

// ToggleFavorite flips membership and reports the new state.
func (s *State) ToggleFavorite(productID uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.favorites[productID] {
		delete(s.favorites, productID)
		return false
	}
	s.favorites[productID] = true
	return true
}

func (s *State) IsFavorite(productID uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.favorites[productID]
}

// Favorites returns a copy, usable as domain.ProductFilter.Favorites.
func (s *State) Favorites() map[uuid.UUID]bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make(map[uuid.UUID]bool, len(s.favorites))
	for id := range s.favorites {
		cp[id] = true
	}
	return cp
}

// --- view state and admin flag ---

func (s *State) SetView(category, query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if category != "" {
		s.category = category
	}
	s.query = query
}

func (s *State) View() (category, query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.category, s.query
}

// ToggleAdmin flips the session capability flag. There is no stronger
// authorization behind it; see DESIGN.md.
func (s *State) ToggleAdmin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.admin = !s.admin
	return s.admin
}

func (s *State) IsAdmin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.admin
}

// Registry maps session tokens to live states. The session manager owns
// cookie lifecycle; this owns the state objects.
type Registry struct {
	mu     sync.Mutex
	states map[string]*State
}

func NewRegistry() *Registry {
	return &Registry{states: map[string]*State{}}
}

// Get returns the state for a token, creating it on first sight.
func (r *Registry) Get(token string) *State {
	r.mu.Lock()
	defer r.mu.Unlock()
	st, ok := r.states[token]
	if !ok {
		st = NewState()
		r.states[token] = st
	}
	return st
}

// Drop tears a session down, e.g. when the manager expires its token.
func (r *Registry) Drop(token string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.states, token)
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.states)
}
