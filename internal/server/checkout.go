package server

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"git.appkode.ru/pub/go/failure"

	"robux_topup/internal/domain/entity"
	"robux_topup/internal/domain/service/checkout"
	"robux_topup/internal/domain/service/pricing"
	"robux_topup/internal/domain/value"
	"robux_topup/internal/infrastructure/metrics"
	"robux_topup/pkg/errcodes"
	"robux_topup/pkg/httpx/reply"
	"robux_topup/pkg/httpx/req"
	"robux_topup/pkg/lox"
	"robux_topup/pkg/rest"
)

const (
	defaultOrdersLimit = 20
	maxOrdersLimit     = 100
)

type checkoutService interface {
	Open(ctx context.Context, params entity.CheckoutParams) (entity.Session, error)
	Get(ctx context.Context, id value.SessionID) (entity.Session, error)
	Edit(ctx context.Context, id value.SessionID, params entity.CheckoutParams) (entity.Session, error)
	Submit(ctx context.Context, id value.SessionID) (entity.Session, error)
	Close(ctx context.Context, id value.SessionID) (entity.Session, error)
	RecentOrders(ctx context.Context, limit int) ([]entity.Order, error)
}

type CheckoutServer struct {
	service    checkoutService
	calculator *pricing.Calculator
	metrics    quoteMetrics
	baseURL    string
}

func NewCheckoutServer(
	service checkoutService,
	calculator *pricing.Calculator,
	metrics quoteMetrics,
	baseURL string,
) CheckoutServer {
	return CheckoutServer{
		service:    service,
		calculator: calculator,
		metrics:    metrics,
		baseURL:    baseURL,
	}
}

// postV1CheckoutLinks turns a filled top-up form into the checkout link.
func (s CheckoutServer) postV1CheckoutLinks(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.TopUpForm

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	params := newDomainParams(request)

	if err := checkout.ValidateForm(params); err != nil {
		return fmt.Errorf("checkout.ValidateForm: %w", err)
	}

	quote, err := s.calculator.Quote(params.RobuxAmount)
	if err != nil {
		s.metrics.QuoteComputed(metrics.QuoteRejected)
		return fmt.Errorf("calculator.Quote: %w", err)
	}

	s.metrics.QuoteComputed(metrics.QuoteOK)

	params.GamepassPrice = quote.GrossAmount
	params.TotalPayment = quote.TotalPayment

	reply.JSON(ctx, w, http.StatusOK, rest.CheckoutLink{
		URL:   checkout.CheckoutURL(s.baseURL, params),
		Quote: newRESTQuote(quote),
	})

	return nil
}

func (s CheckoutServer) postV1CheckoutSessions(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var params entity.CheckoutParams

	if query := r.URL.Query(); len(query) > 0 {
		var err error

		params, err = checkout.ParseParams(query)
		if err != nil {
			return fmt.Errorf("checkout.ParseParams: %w", err)
		}
	}

	session, err := s.service.Open(ctx, params)
	if err != nil {
		return fmt.Errorf("service.Open: %w", err)
	}

	reply.JSON(ctx, w, http.StatusCreated, newRESTSession(session))

	return nil
}

func (s CheckoutServer) getV1CheckoutSession(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	id, err := value.ParseSessionID(r.PathValue("id"))
	if err != nil {
		return fmt.Errorf("value.ParseSessionID: %w", err)
	}

	session, err := s.service.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("service.Get: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTSession(session))

	return nil
}

func (s CheckoutServer) putV1CheckoutSession(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	id, err := value.ParseSessionID(r.PathValue("id"))
	if err != nil {
		return fmt.Errorf("value.ParseSessionID: %w", err)
	}

	var request rest.SessionForm

	if err = req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	session, err := s.service.Edit(ctx, id, newDomainSessionParams(request))
	if err != nil {
		return fmt.Errorf("service.Edit: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTSession(session))

	return nil
}

func (s CheckoutServer) postV1CheckoutSessionSubmit(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	id, err := value.ParseSessionID(r.PathValue("id"))
	if err != nil {
		return fmt.Errorf("value.ParseSessionID: %w", err)
	}

	session, err := s.service.Submit(ctx, id)
	if err != nil {
		return fmt.Errorf("service.Submit: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTSession(session))

	return nil
}

func (s CheckoutServer) postV1CheckoutSessionClose(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	id, err := value.ParseSessionID(r.PathValue("id"))
	if err != nil {
		return fmt.Errorf("value.ParseSessionID: %w", err)
	}

	session, err := s.service.Close(ctx, id)
	if err != nil {
		return fmt.Errorf("service.Close: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTSession(session))

	return nil
}

func (s CheckoutServer) getV1Orders(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	limit, err := parseLimit(r.URL.Query().Get("limit"))
	if err != nil {
		return err
	}

	orders, err := s.service.RecentOrders(ctx, limit)
	if err != nil {
		return fmt.Errorf("service.RecentOrders: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.OrderList{
		Orders: lox.Map(orders, newRESTOrder),
	})

	return nil
}

func parseLimit(raw string) (int, error) {
	if raw == "" {
		return defaultOrdersLimit, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 || limit > maxOrdersLimit {
		return 0, failure.NewInvalidArgumentError(
			fmt.Sprintf("invalid limit %q", raw),
			failure.WithCode(errcodes.InvalidPaging),
			failure.WithDescription(fmt.Sprintf("limit must be between 1 and %d", maxOrdersLimit)),
		)
	}

	return limit, nil
}
