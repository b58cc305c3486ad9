package entity

import "github.com/shopspring/decimal"

// Quote is the set of price figures derived from a requested Robux amount.
// It is recomputed on every change and never stored on its own.
type Quote struct {
	NetAmount    int64           `json:"net_amount"`
	FeeRate      decimal.Decimal `json:"fee_rate"`
	GrossAmount  int64           `json:"gross_amount"`
	FeeAmount    int64           `json:"fee_amount"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	TotalPayment int64           `json:"total_payment"`
	Tier         Tier            `json:"tier"`
	ExactTier    bool            `json:"exact_tier"`
}
