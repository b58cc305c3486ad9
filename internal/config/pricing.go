package config

import (
	"fmt"

	"github.com/shopspring/decimal"

	"robux_topup/internal/domain/entity"
	"robux_topup/pkg/lox"
)

type Pricing struct {
	FeeRate decimal.Decimal `env:"PRICING_FEE_RATE" envDefault:"0.30"`
	// Tiers are "<robux>:<price>[:<label>]" entries.
	Tiers     []string `env:"PRICING_TIERS" envSeparator:"," envDefault:"70:10000,100:12500,200:28600,400:57100,700:100000,1000:125000"` //nolint:lll
	MaxAmount int64    `env:"PRICING_MAX_AMOUNT" envDefault:"10000"`
}

func (p Pricing) TierTable() (entity.TierTable, error) {
	tiers, err := lox.MapErr(p.Tiers, entity.ParseTier)
	if err != nil {
		return entity.TierTable{}, fmt.Errorf("entity.ParseTier: %w", err)
	}

	table, err := entity.NewTierTable(tiers...)
	if err != nil {
		return entity.TierTable{}, fmt.Errorf("entity.NewTierTable: %w", err)
	}

	return table, nil
}
