package server

import (
	"fmt"
	"net/http"

	"robux_topup/internal/domain/service/pricing"
	"robux_topup/internal/infrastructure/metrics"
	"robux_topup/pkg/httpx/reply"
	"robux_topup/pkg/httpx/req"
	"robux_topup/pkg/rest"
)

type quoteMetrics interface {
	QuoteComputed(result string)
}

type PricingServer struct {
	calculator *pricing.Calculator
	metrics    quoteMetrics
}

func NewPricingServer(calculator *pricing.Calculator, metrics quoteMetrics) PricingServer {
	return PricingServer{
		calculator: calculator,
		metrics:    metrics,
	}
}

func (s PricingServer) getV1Tiers(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	tiers, err := newRESTTierList(s.calculator)
	if err != nil {
		return fmt.Errorf("newRESTTierList: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, tiers)

	return nil
}

func (s PricingServer) postV1Quotes(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.QuoteRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	quote, err := s.calculator.Quote(request.RobuxAmount)
	if err != nil {
		s.metrics.QuoteComputed(metrics.QuoteRejected)
		return fmt.Errorf("calculator.Quote: %w", err)
	}

	s.metrics.QuoteComputed(metrics.QuoteOK)

	reply.JSON(ctx, w, http.StatusOK, newRESTQuote(quote))

	return nil
}
