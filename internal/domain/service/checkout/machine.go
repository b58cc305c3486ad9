package checkout

import (
	"fmt"
	"time"

	"robux_topup/internal/domain"
	"robux_topup/internal/domain/entity"
	"robux_topup/internal/domain/value"
	"robux_topup/pkg/errcodes"
)

// The checkout flow moves Idle -> Submitting -> AwaitingPayment -> Closed and
// back to Idle. A failed submit goes from Submitting back to Idle. Every step below takes a session by value and returns the
// next one, so transitions can be tested without a store.

func NewSession(id value.SessionID, at time.Time) entity.Session {
	return entity.Session{
		ID:        id,
		State:     value.StateIdle,
		CreatedAt: at,
		UpdatedAt: at,
	}
}

// Edit replaces the form contents. Inputs are only editable while Idle.
func Edit(s entity.Session, params entity.CheckoutParams, quote entity.Quote, at time.Time) (entity.Session, error) {
	if err := expect(s, "edit", value.StateIdle); err != nil {
		return s, err
	}

	s.Params = params
	s.Quote = &quote
	s.UpdatedAt = at

	return s, nil
}

// Submit locks the inputs.
func Submit(s entity.Session, at time.Time) (entity.Session, error) {
	if err := expect(s, "submit", value.StateIdle); err != nil {
		return s, err
	}

	if s.Quote == nil || s.Params.IsZero() {
		return s, domain.NewError(errcodes.InvalidStateTransition, "cannot submit an empty order")
	}

	s.State = value.StateSubmitting
	s.UpdatedAt = at

	return s, nil
}

// Complete attaches the created order and waits for payment.
func Complete(s entity.Session, order entity.Order, at time.Time) (entity.Session, error) {
	if err := expect(s, "complete", value.StateSubmitting); err != nil {
		return s, err
	}

	s.State = value.StateAwaitingPayment
	s.Order = &order
	s.UpdatedAt = at

	return s, nil
}

// Abort unlocks the inputs when an order could not be created. The form is
// kept so the buyer can retry.
func Abort(s entity.Session, at time.Time) (entity.Session, error) {
	if err := expect(s, "abort", value.StateSubmitting); err != nil {
		return s, err
	}

	s.State = value.StateIdle
	s.Order = nil
	s.UpdatedAt = at

	return s, nil
}

// Close dismisses the payment dialog.
func Close(s entity.Session, at time.Time) (entity.Session, error) {
	if err := expect(s, "close", value.StateAwaitingPayment); err != nil {
		return s, err
	}

	s.State = value.StateClosed
	s.UpdatedAt = at

	return s, nil
}

// Reset starts a new order with every field cleared.
func Reset(s entity.Session, at time.Time) (entity.Session, error) {
	if err := expect(s, "reset", value.StateClosed); err != nil {
		return s, err
	}

	next := NewSession(s.ID, s.CreatedAt)
	next.UpdatedAt = at

	return next, nil
}

func expect(s entity.Session, op string, want value.CheckoutState) error {
	if s.State != want {
		return domain.NewError(
			errcodes.InvalidStateTransition,
			fmt.Sprintf("cannot %s a checkout in state %s", op, s.State),
		)
	}

	return nil
}
