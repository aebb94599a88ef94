package session

import (
	"github.com/dnicolas/tienda/internal/checkout"
	"github.com/dnicolas/tienda/internal/domain"
)

// Stage is the checkout flow position of a session.
type Stage string

const (
	StageBrowsing        Stage = "browsing"
	StageReviewingCart   Stage = "reviewing_cart"
	StageEnteringDetails Stage = "entering_details"
	StageConfirming      Stage = "confirming_order"
	StageOrderPlaced     Stage = "order_placed"
)

func (s *State) Stage() Stage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stage
}

// ViewCart moves the session onto the cart review screen. Leaving the
// confirmation view goes through EditDetails, and a placed order goes
// through BackToStore first.
func (s *State) ViewCart() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.stage {
	case StageBrowsing, StageReviewingCart, StageEnteringDetails:
		s.stage = StageReviewingCart
		return nil
	default:
		return domain.ErrInvalidTransition
	}
}

// BeginCheckout enters the details form. Checkout with an empty cart is a
// disallowed transition; callers must guard, so reaching it here is a
// contract error.
func (s *State) BeginCheckout() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.stage {
	case StageBrowsing, StageReviewingCart, StageEnteringDetails:
	default:
		return domain.ErrInvalidTransition
	}
	if s.cart.IsEmpty() {
		return domain.ErrEmptyCart
	}
	s.stage = StageEnteringDetails
	return nil
}

// SubmitDetails runs the strict submit validation and, only on zero errors,
// records the details and opens the read-only confirmation view. Field
// errors keep the session on the form with previous values retained.
func (s *State) SubmitDetails(d domain.CustomerDetails) ([]checkout.FieldError, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stage != StageEnteringDetails {
		return nil, domain.ErrInvalidTransition
	}
	if errs := checkout.ValidateForSubmit(d); len(errs) > 0 {
		return errs, nil
	}
	s.details = d
	s.stage = StageConfirming
	return nil, nil
}

// EditDetails steps back from confirmation to the editable form. Nothing is
// discarded; the entered values stay put.
func (s *State) EditDetails() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stage != StageConfirming {
		return domain.ErrInvalidTransition
	}
	s.stage = StageEnteringDetails
	return nil
}

func (s *State) Details() domain.CustomerDetails {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.details
}

// Finalize is the point of no return. Under the session lock it snapshots
// cart, details and total into a ConfirmedOrder, clears the cart, fills the
// single order slot and moves to the confirmation screen as one step. The
// stage guard makes a duplicate submit a no-op error rather than a second
// order or a double clear.
func (s *State) Finalize(lookup domain.PriceLookup) (*domain.ConfirmedOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stage != StageConfirming {
		return nil, domain.ErrInvalidTransition
	}
	if s.cart.IsEmpty() {
		return nil, domain.ErrEmptyCart
	}
	order := domain.NewConfirmedOrder(&s.cart, s.details, lookup)
	s.cart.Clear()
	s.order = order
	s.details = domain.CustomerDetails{}
	s.stage = StageOrderPlaced
	return order, nil
}

// BackToStore returns to browsing with an empty cart. The confirmed order
// stays in its slot until a future order overwrites it.
func (s *State) BackToStore() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stage != StageOrderPlaced {
		return domain.ErrInvalidTransition
	}
	s.stage = StageBrowsing
	return nil
}

// CurrentOrder returns the session's confirmed order, nil when none was
// placed yet.
func (s *State) CurrentOrder() *domain.ConfirmedOrder {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.order
}
