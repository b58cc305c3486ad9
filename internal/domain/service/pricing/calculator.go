// Package pricing turns a requested Robux amount into the game pass listing
// price and the rupiah total the buyer pays.
package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"robux_topup/internal/domain"
	"robux_topup/internal/domain/entity"
	"robux_topup/pkg/errcodes"
)

const unitPricePlaces = 4

// DefaultFeeRate is the share of a game pass sale the platform keeps.
var DefaultFeeRate = decimal.RequireFromString("0.30") //nolint:gochecknoglobals

// ComputeGrossAmount returns the smallest listing price g such that
// g*(1-feeRate) >= netAmount.
func ComputeGrossAmount(netAmount int64, feeRate decimal.Decimal) (int64, error) {
	if netAmount <= 0 {
		return 0, domain.NewError(errcodes.InvalidRobuxAmount, "robux amount must be positive")
	}

	if feeRate.IsNegative() || feeRate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return 0, domain.NewError(errcodes.InvalidFeeRate, fmt.Sprintf("fee rate %s is outside [0, 1)", feeRate))
	}

	keep := decimal.NewFromInt(1).Sub(feeRate)

	gross, err := ceilDiv(decimal.NewFromInt(netAmount), keep)
	if err != nil {
		return 0, fmt.Errorf("gross amount of %d: %w", netAmount, err)
	}

	return gross, nil
}

// ComputeFeeAmount is the part of the listing price the platform deducts.
func ComputeFeeAmount(netAmount, grossAmount int64) (int64, error) {
	if grossAmount < netAmount {
		return 0, domain.NewError(
			errcodes.InternalServerError,
			fmt.Sprintf("gross amount %d is below net amount %d", grossAmount, netAmount),
		)
	}

	return grossAmount - netAmount, nil
}

// ComputeTotalPayment prices netAmount from the tier table. An exact tier hit
// costs the tier price. Any other amount is charged at the per-unit rate of
// the largest tier at or below it (the top tier above the table), rounded up.
func ComputeTotalPayment(netAmount int64, table entity.TierTable) (int64, error) {
	total, _, _, err := totalPayment(netAmount, table)

	return total, err
}

func totalPayment(netAmount int64, table entity.TierTable) (int64, entity.Tier, bool, error) {
	if table.Len() == 0 {
		return 0, entity.Tier{}, false, domain.NewError(errcodes.InvalidTierTable, "tier table is empty")
	}

	if tier, ok := table.Exact(netAmount); ok {
		return tier.Price, tier, true, nil
	}

	tier, ok := table.Floor(netAmount)
	if !ok {
		return 0, entity.Tier{}, false, domain.NewError(
			errcodes.AmountBelowMinimum,
			fmt.Sprintf("minimum %d Robux", table.Min()),
		)
	}

	total, err := tierTotal(netAmount, tier)
	if err != nil {
		return 0, entity.Tier{}, false, err
	}

	return total, tier, false, nil
}

func tierTotal(netAmount int64, tier entity.Tier) (int64, error) {
	product := decimal.NewFromInt(netAmount).Mul(decimal.NewFromInt(tier.Price))

	total, err := ceilDiv(product, decimal.NewFromInt(tier.Threshold))
	if err != nil {
		return 0, fmt.Errorf("total payment of %d: %w", netAmount, err)
	}

	return total, nil
}

// ceilDiv divides without rounding drift: the integer quotient is bumped only
// when the exact remainder is positive. Results outside int64 are an error.
func ceilDiv(dividend, divisor decimal.Decimal) (int64, error) {
	q, r := dividend.QuoRem(divisor, 0)
	if r.IsPositive() {
		q = q.Add(decimal.NewFromInt(1))
	}

	if !q.BigInt().IsInt64() {
		return 0, domain.NewError(errcodes.AmountAboveMaximum, "amount is outside the supported range")
	}

	return q.IntPart(), nil
}

// Calculator quotes amounts against an injected fee rate and tier table.
type Calculator struct {
	feeRate   decimal.Decimal
	tiers     entity.TierTable
	maxAmount int64
}

func NewCalculator(feeRate decimal.Decimal, tiers entity.TierTable, maxAmount int64) (*Calculator, error) {
	if tiers.Len() == 0 {
		return nil, domain.NewError(errcodes.InvalidTierTable, "tier table is empty")
	}

	if _, err := ComputeGrossAmount(tiers.Min(), feeRate); err != nil {
		return nil, fmt.Errorf("check fee rate: %w", err)
	}

	if maxAmount < tiers.Min() {
		return nil, domain.NewError(
			errcodes.InvalidTierTable,
			fmt.Sprintf("max amount %d is below the smallest tier %d", maxAmount, tiers.Min()),
		)
	}

	if _, err := ComputeGrossAmount(maxAmount, feeRate); err != nil {
		return nil, fmt.Errorf("check max amount: %w", err)
	}

	// Every tier rate that can apply below maxAmount must price maxAmount
	// without overflow.
	for _, tier := range tiers.Tiers() {
		if tier.Threshold > maxAmount {
			break
		}

		if _, err := tierTotal(maxAmount, tier); err != nil {
			return nil, fmt.Errorf("check max amount: %w", err)
		}
	}

	return &Calculator{
		feeRate:   feeRate,
		tiers:     tiers,
		maxAmount: maxAmount,
	}, nil
}

func (c *Calculator) FeeRate() decimal.Decimal {
	return c.feeRate
}

func (c *Calculator) Tiers() entity.TierTable {
	return c.tiers
}

func (c *Calculator) MinAmount() int64 {
	return c.tiers.Min()
}

func (c *Calculator) MaxAmount() int64 {
	return c.maxAmount
}

// Validate checks that netAmount can be quoted.
func (c *Calculator) Validate(netAmount int64) error {
	if netAmount < c.MinAmount() {
		return domain.NewError(errcodes.AmountBelowMinimum, fmt.Sprintf("minimum %d Robux", c.MinAmount()))
	}

	if netAmount > c.maxAmount {
		return domain.NewError(errcodes.AmountAboveMaximum, fmt.Sprintf("maximum %d Robux", c.maxAmount))
	}

	return nil
}

func (c *Calculator) Quote(netAmount int64) (entity.Quote, error) {
	if err := c.Validate(netAmount); err != nil {
		return entity.Quote{}, err
	}

	gross, err := ComputeGrossAmount(netAmount, c.feeRate)
	if err != nil {
		return entity.Quote{}, fmt.Errorf("ComputeGrossAmount: %w", err)
	}

	fee, err := ComputeFeeAmount(netAmount, gross)
	if err != nil {
		return entity.Quote{}, fmt.Errorf("ComputeFeeAmount: %w", err)
	}

	total, tier, exact, err := totalPayment(netAmount, c.tiers)
	if err != nil {
		return entity.Quote{}, fmt.Errorf("ComputeTotalPayment: %w", err)
	}

	return entity.Quote{
		NetAmount:    netAmount,
		FeeRate:      c.feeRate,
		GrossAmount:  gross,
		FeeAmount:    fee,
		UnitPrice:    decimal.NewFromInt(tier.Price).DivRound(decimal.NewFromInt(tier.Threshold), unitPricePlaces),
		TotalPayment: total,
		Tier:         tier,
		ExactTier:    exact,
	}, nil
}
