package server

import (
	"fmt"

	"robux_topup/internal/domain/entity"
	"robux_topup/internal/domain/service/pricing"
	"robux_topup/pkg/lox"
	"robux_topup/pkg/numfmt"
	"robux_topup/pkg/rest"
)

func rupiah(n int64) string {
	return "Rp " + numfmt.Rupiah(n)
}

func newRESTQuote(quote entity.Quote) rest.Quote {
	return rest.Quote{
		RobuxAmount:       quote.NetAmount,
		FeeRate:           quote.FeeRate.String(),
		GamepassPrice:     quote.GrossAmount,
		FeeAmount:         quote.FeeAmount,
		UnitPrice:         quote.UnitPrice.String(),
		TotalPayment:      quote.TotalPayment,
		TierThreshold:     quote.Tier.Threshold,
		ExactTier:         quote.ExactTier,
		RobuxAmountText:   numfmt.Amount(quote.NetAmount),
		GamepassPriceText: numfmt.Amount(quote.GrossAmount),
		TotalPaymentText:  rupiah(quote.TotalPayment),
	}
}

func newRESTTierList(calculator *pricing.Calculator) (rest.TierList, error) {
	tiers, err := lox.MapErr(calculator.Tiers().Tiers(), func(tier entity.Tier) (rest.Tier, error) {
		gross, err := pricing.ComputeGrossAmount(tier.Threshold, calculator.FeeRate())
		if err != nil {
			return rest.Tier{}, fmt.Errorf("pricing.ComputeGrossAmount: %w", err)
		}

		return rest.Tier{
			RobuxAmount:     tier.Threshold,
			Price:           tier.Price,
			GamepassPrice:   gross,
			DiscountLabel:   tier.DiscountLabel,
			RobuxAmountText: numfmt.Amount(tier.Threshold),
			PriceText:       rupiah(tier.Price),
		}, nil
	})
	if err != nil {
		return rest.TierList{}, err
	}

	return rest.TierList{
		MinAmount: calculator.MinAmount(),
		MaxAmount: calculator.MaxAmount(),
		FeeRate:   calculator.FeeRate().String(),
		Tiers:     tiers,
	}, nil
}

func newDomainParams(form rest.TopUpForm) entity.CheckoutParams {
	return entity.CheckoutParams{
		Username:        form.Username,
		RobuxAmount:     form.RobuxAmount,
		GamepassURL:     form.GamepassURL,
		DiscordUsername: form.DiscordUsername,
	}
}

func newDomainSessionParams(form rest.SessionForm) entity.CheckoutParams {
	return entity.CheckoutParams{
		Username:        form.Username,
		RobuxAmount:     form.RobuxAmount,
		GamepassURL:     form.GamepassURL,
		DiscordUsername: form.DiscordUsername,
	}
}

func newRESTParams(params entity.CheckoutParams) rest.CheckoutParams {
	return rest.CheckoutParams{
		Username:        params.Username,
		RobuxAmount:     params.RobuxAmount,
		GamepassPrice:   params.GamepassPrice,
		GamepassURL:     params.GamepassURL,
		DiscordUsername: params.DiscordUsername,
		TotalPayment:    params.TotalPayment,
	}
}

func newRESTOrder(order entity.Order) rest.Order {
	return rest.Order{
		ID:               order.ID.String(),
		Username:         order.Username,
		RobuxAmount:      order.RobuxAmount,
		GamepassPrice:    order.GamepassPrice,
		GamepassURL:      order.GamepassURL,
		DiscordUsername:  order.DiscordUsername,
		TotalPayment:     order.TotalPayment,
		TotalPaymentText: rupiah(order.TotalPayment),
		Status:           order.Status.String(),
		PaymentMethod:    order.PaymentMethod,
		PaymentCode:      order.PaymentCode,
		CreatedAt:        order.CreatedAt,
		ExpiresAt:        order.ExpiresAt,
	}
}

func newRESTSession(session entity.Session) rest.Session {
	response := rest.Session{
		ID:        session.ID.String(),
		State:     session.State.String(),
		Params:    newRESTParams(session.Params),
		CreatedAt: session.CreatedAt,
		UpdatedAt: session.UpdatedAt,
	}

	if session.Quote != nil {
		quote := newRESTQuote(*session.Quote)
		response.Quote = &quote
	}

	if session.Order != nil {
		order := newRESTOrder(*session.Order)
		response.Order = &order
	}

	return response
}
