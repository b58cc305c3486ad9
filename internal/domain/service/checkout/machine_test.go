package checkout_test

import (
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"robux_topup/internal/domain"
	"robux_topup/internal/domain/entity"
	"robux_topup/internal/domain/service/checkout"
	"robux_topup/internal/domain/value"
	"robux_topup/pkg/errcodes"
)

func TestMachineHappyPath(t *testing.T) {
	rq := require.New(t)

	at := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	id := value.NewSessionID()

	s := checkout.NewSession(id, at)
	rq.Equal(value.StateIdle, s.State)

	quote := entity.Quote{NetAmount: 400, GrossAmount: 572, TotalPayment: 57100}

	s, err := checkout.Edit(s, testParams(), quote, at.Add(time.Second))
	rq.NoError(err)
	rq.Equal(testParams(), s.Params)
	rq.Equal(int64(572), s.Quote.GrossAmount)

	s, err = checkout.Submit(s, at.Add(2*time.Second))
	rq.NoError(err)
	rq.Equal(value.StateSubmitting, s.State)

	order := entity.Order{ID: value.NewOrderID(value.OrderIDPrefix, at.UnixMilli()), Status: value.OrderPending}

	s, err = checkout.Complete(s, order, at.Add(4*time.Second))
	rq.NoError(err)
	rq.Equal(value.StateAwaitingPayment, s.State)
	rq.Equal(order.ID, s.Order.ID)

	s, err = checkout.Close(s, at.Add(5*time.Second))
	rq.NoError(err)
	rq.Equal(value.StateClosed, s.State)

	s, err = checkout.Reset(s, at.Add(6*time.Second))
	rq.NoError(err)
	rq.Equal(value.StateIdle, s.State)
	rq.Equal(id, s.ID)
	rq.True(s.Params.IsZero())
	rq.Nil(s.Quote)
	rq.Nil(s.Order)
	rq.Equal(at, s.CreatedAt)
	rq.Equal(at.Add(6*time.Second), s.UpdatedAt)
}

func TestMachineRejectsInvalidTransitions(t *testing.T) {
	rq := require.New(t)

	at := time.Now()
	quote := entity.Quote{NetAmount: 400}
	order := entity.Order{ID: value.NewOrderID(value.OrderIDPrefix, 1)}

	steps := map[string]func(entity.Session) (entity.Session, error){
		"edit":     func(s entity.Session) (entity.Session, error) { return checkout.Edit(s, testParams(), quote, at) },
		"submit":   func(s entity.Session) (entity.Session, error) { return checkout.Submit(s, at) },
		"complete": func(s entity.Session) (entity.Session, error) { return checkout.Complete(s, order, at) },
		"abort":    func(s entity.Session) (entity.Session, error) { return checkout.Abort(s, at) },
		"close":    func(s entity.Session) (entity.Session, error) { return checkout.Close(s, at) },
		"reset":    func(s entity.Session) (entity.Session, error) { return checkout.Reset(s, at) },
	}

	allowed := map[value.CheckoutState][]string{
		value.StateIdle:            {"edit", "submit"},
		value.StateSubmitting:      {"complete", "abort"},
		value.StateAwaitingPayment: {"close"},
		value.StateClosed:          {"reset"},
	}

	for state, ok := range allowed {
		for name, step := range steps {
			t.Run(state.String()+"/"+name, func(*testing.T) {
				s := entity.Session{
					ID:     value.NewSessionID(),
					State:  state,
					Params: testParams(),
					Quote:  &quote,
				}

				next, err := step(s)

				if slices.Contains(ok, name) {
					rq.NoError(err)
					return
				}

				rq.True(domain.HasCode(err, errcodes.InvalidStateTransition))
				rq.Equal(s, next)
			})
		}
	}
}

func TestMachineSubmitRequiresOrder(t *testing.T) {
	rq := require.New(t)

	s := checkout.NewSession(value.NewSessionID(), time.Now())

	_, err := checkout.Submit(s, time.Now())
	rq.True(domain.HasCode(err, errcodes.InvalidStateTransition))
}

func TestMachineAbortKeepsForm(t *testing.T) {
	rq := require.New(t)

	at := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	quote := entity.Quote{NetAmount: 400, GrossAmount: 572, TotalPayment: 57100}

	s, err := checkout.Edit(checkout.NewSession(value.NewSessionID(), at), testParams(), quote, at)
	rq.NoError(err)

	s, err = checkout.Submit(s, at)
	rq.NoError(err)

	s, err = checkout.Abort(s, at.Add(time.Second))
	rq.NoError(err)
	rq.Equal(value.StateIdle, s.State)
	rq.Equal(testParams(), s.Params)
	rq.Nil(s.Order)

	_, err = checkout.Submit(s, at.Add(2*time.Second))
	rq.NoError(err)
}
