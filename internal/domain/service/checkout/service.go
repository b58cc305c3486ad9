package checkout

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"robux_topup/internal/domain"
	"robux_topup/internal/domain/entity"
	"robux_topup/internal/domain/service/pricing"
	"robux_topup/internal/domain/value"
	"robux_topup/pkg/contextx"
	"robux_topup/pkg/errcodes"
	"robux_topup/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

const (
	DefaultSubmitDelay   = 2 * time.Second
	DefaultPaymentExpiry = 5 * time.Minute
	PaymentMethodQRIS    = "QRIS"
)

type SessionStore interface {
	Save(ctx context.Context, session entity.Session) error
	Get(ctx context.Context, id value.SessionID) (entity.Session, error)
}

type OrderLog interface {
	Add(ctx context.Context, order entity.Order) error
	Recent(ctx context.Context, limit int) ([]entity.Order, error)
}

type Metrics interface {
	SessionTransition(from, to value.CheckoutState)
	OrderCreated()
	SubmitDuration(d time.Duration)
}

type nopMetrics struct{}

func (nopMetrics) SessionTransition(_, _ value.CheckoutState) {}
func (nopMetrics) OrderCreated()                               {}
func (nopMetrics) SubmitDuration(time.Duration)                {}

type Options struct {
	SubmitDelay   time.Duration
	PaymentExpiry time.Duration
	PaymentCode   string
}

type Service struct {
	calculator *pricing.Calculator
	sessions   SessionStore
	orders     OrderLog
	orderIDs   *OrderIDGenerator
	metrics    Metrics
	opts       Options

	now   func() time.Time
	after func(time.Duration) <-chan time.Time

	// mu serialises read-modify-write cycles on sessions.
	mu sync.Mutex
}

func NewService(
	calculator *pricing.Calculator,
	sessions SessionStore,
	orders OrderLog,
	orderIDs *OrderIDGenerator,
	opts Options,
) *Service {
	return &Service{
		calculator: calculator,
		sessions:   sessions,
		orders:     orders,
		orderIDs:   orderIDs,
		metrics:    nopMetrics{},
		opts:       opts,
		now:        time.Now,
		after:      time.After,
	}
}

func (s *Service) WithMetrics(m Metrics) *Service {
	s.metrics = m
	return s
}

func (s *Service) WithClock(now func() time.Time, after func(time.Duration) <-chan time.Time) *Service {
	s.now = now
	s.after = after

	return s
}

// Open starts a checkout. Empty params give a blank top-up form; otherwise
// the handed over figures must match a fresh quote.
func (s *Service) Open(ctx context.Context, params entity.CheckoutParams) (entity.Session, error) {
	now := s.now()
	session := NewSession(value.NewSessionID(), now)

	if !params.IsZero() {
		quote, err := s.calculator.Quote(params.RobuxAmount)
		if err != nil {
			return entity.Session{}, fmt.Errorf("calculator.Quote: %w", err)
		}

		if quote.GrossAmount != params.GamepassPrice || quote.TotalPayment != params.TotalPayment {
			return entity.Session{}, domain.NewError(
				errcodes.QuoteMismatch,
				fmt.Sprintf(
					"order details are out of date: %d Robux needs game pass price %d and total %d",
					params.RobuxAmount, quote.GrossAmount, quote.TotalPayment,
				),
			)
		}

		session, _ = Edit(session, params, quote, now) //nolint:errcheck // fresh session is Idle
	}

	if err := s.sessions.Save(ctx, session); err != nil {
		return entity.Session{}, fmt.Errorf("sessions.Save: %w", err)
	}

	logger(ctx).Info("checkout opened",
		logx.Stringer(logx.FieldSessionID, session.ID),
		slog.Int64(logx.FieldRobuxAmount, params.RobuxAmount),
	)

	return session, nil
}

func (s *Service) Get(ctx context.Context, id value.SessionID) (entity.Session, error) {
	session, err := s.sessions.Get(ctx, id)
	if err != nil {
		return entity.Session{}, fmt.Errorf("sessions.Get: %w", err)
	}

	return session, nil
}

// Edit updates the form of an Idle checkout and recomputes its quote. The
// game pass price and total always come from the quote.
func (s *Service) Edit(ctx context.Context, id value.SessionID, params entity.CheckoutParams) (entity.Session, error) {
	quote, err := s.calculator.Quote(params.RobuxAmount)
	if err != nil {
		return entity.Session{}, fmt.Errorf("calculator.Quote: %w", err)
	}

	params.GamepassPrice = quote.GrossAmount
	params.TotalPayment = quote.TotalPayment

	return s.update(ctx, id, func(session entity.Session, now time.Time) (entity.Session, error) {
		return Edit(session, params, quote, now)
	})
}

// Submit locks the checkout, waits the artificial processing delay and puts
// the order up for payment. Once started the wait is not cancelled by the
// caller going away.
func (s *Service) Submit(ctx context.Context, id value.SessionID) (entity.Session, error) {
	start := s.now()

	_, err := s.update(ctx, id, func(session entity.Session, now time.Time) (entity.Session, error) {
		next, err := Submit(session, now)
		if err != nil {
			return session, err
		}

		if err := ValidateForm(next.Params); err != nil {
			return session, err
		}

		return next, nil
	})
	if err != nil {
		return entity.Session{}, err
	}

	ctx = context.WithoutCancel(ctx)

	<-s.after(s.opts.SubmitDelay)

	session, err := s.update(ctx, id, func(session entity.Session, now time.Time) (entity.Session, error) {
		order := s.newOrder(session.Params, now)

		next, err := Complete(session, order, now)
		if err != nil {
			return session, err
		}

		if err := s.orders.Add(ctx, order); err != nil {
			return session, fmt.Errorf("orders.Add: %w", err)
		}

		return next, nil
	})
	if err != nil {
		s.abort(ctx, id)
		return entity.Session{}, err
	}

	s.metrics.OrderCreated()
	s.metrics.SubmitDuration(s.now().Sub(start))

	logger(ctx).Info("order ready for payment",
		logx.Stringer(logx.FieldSessionID, session.ID),
		logx.Stringer(logx.FieldOrderID, session.Order.ID),
		slog.Int64(logx.FieldRobuxAmount, session.Order.RobuxAmount),
	)

	return session, nil
}

// Close dismisses the payment step and returns the checkout to a blank Idle
// form. Closing and resetting are two separate writes, not one atomic step.
func (s *Service) Close(ctx context.Context, id value.SessionID) (entity.Session, error) {
	if _, err := s.update(ctx, id, Close); err != nil {
		return entity.Session{}, err
	}

	return s.update(ctx, id, Reset)
}

// abort returns a session stuck in Submitting to Idle after a failed submit.
func (s *Service) abort(ctx context.Context, id value.SessionID) {
	if _, err := s.update(ctx, id, Abort); err != nil {
		logger(ctx).Error("checkout abort failed",
			logx.Stringer(logx.FieldSessionID, id),
			logx.Error(err),
		)
	}
}

func (s *Service) RecentOrders(ctx context.Context, limit int) ([]entity.Order, error) {
	orders, err := s.orders.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("orders.Recent: %w", err)
	}

	return orders, nil
}

func (s *Service) Calculator() *pricing.Calculator {
	return s.calculator
}

func (s *Service) update(
	ctx context.Context,
	id value.SessionID,
	step func(entity.Session, time.Time) (entity.Session, error),
) (entity.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.sessions.Get(ctx, id)
	if err != nil {
		return entity.Session{}, fmt.Errorf("sessions.Get: %w", err)
	}

	next, err := step(session, s.now())
	if err != nil {
		return entity.Session{}, err
	}

	if err := s.sessions.Save(ctx, next); err != nil {
		return entity.Session{}, fmt.Errorf("sessions.Save: %w", err)
	}

	if next.State != session.State {
		s.metrics.SessionTransition(session.State, next.State)

		logger(ctx).Debug("checkout state changed",
			logx.Stringer(logx.FieldSessionID, id),
			slog.String(logx.FieldState, next.State.String()),
		)
	}

	return next, nil
}

func (s *Service) newOrder(params entity.CheckoutParams, now time.Time) entity.Order {
	return entity.Order{
		ID:              s.orderIDs.Next(),
		Username:        params.Username,
		RobuxAmount:     params.RobuxAmount,
		GamepassPrice:   params.GamepassPrice,
		GamepassURL:     params.GamepassURL,
		DiscordUsername: params.DiscordUsername,
		TotalPayment:    params.TotalPayment,
		Status:          value.OrderPending,
		PaymentMethod:   PaymentMethodQRIS,
		PaymentCode:     s.opts.PaymentCode,
		CreatedAt:       now,
		ExpiresAt:       now.Add(s.opts.PaymentExpiry),
	}
}
