package entity

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"robux_topup/internal/domain"
	"robux_topup/pkg/errcodes"
)

// Tier is a flat price for an exact Robux amount.
type Tier struct {
	Threshold     int64  `json:"threshold"`
	Price         int64  `json:"price"`
	DiscountLabel string `json:"discount_label,omitempty"`
}

// TierTable is a price list ordered by ascending threshold.
type TierTable struct {
	tiers []Tier
}

func NewTierTable(tiers ...Tier) (TierTable, error) {
	sorted := slices.Clone(tiers)
	slices.SortFunc(sorted, func(a, b Tier) int {
		return cmp.Compare(a.Threshold, b.Threshold)
	})

	for i, t := range sorted {
		if t.Threshold <= 0 || t.Price <= 0 {
			return TierTable{}, domain.NewError(
				errcodes.InvalidTierTable,
				fmt.Sprintf("tier %d:%d must have positive threshold and price", t.Threshold, t.Price),
			)
		}

		if i > 0 && sorted[i-1].Threshold == t.Threshold {
			return TierTable{}, domain.NewError(
				errcodes.InvalidTierTable,
				fmt.Sprintf("duplicate tier threshold %d", t.Threshold),
			)
		}
	}

	return TierTable{tiers: sorted}, nil
}

// ParseTier reads "<threshold>:<price>[:<discount label>]".
func ParseTier(s string) (Tier, error) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 3)
	if len(parts) < 2 {
		return Tier{}, domain.NewError(errcodes.InvalidTierTable, fmt.Sprintf("tier %q: want threshold:price", s))
	}

	threshold, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return Tier{}, domain.WrapError(err, errcodes.InvalidTierTable, fmt.Sprintf("tier %q: threshold", s))
	}

	price, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return Tier{}, domain.WrapError(err, errcodes.InvalidTierTable, fmt.Sprintf("tier %q: price", s))
	}

	tier := Tier{Threshold: threshold, Price: price}
	if len(parts) == 3 {
		tier.DiscountLabel = parts[2]
	}

	return tier, nil
}

func (t TierTable) Tiers() []Tier {
	return slices.Clone(t.tiers)
}

func (t TierTable) Len() int {
	return len(t.tiers)
}

// Min is the smallest threshold, the lowest amount that can be quoted.
func (t TierTable) Min() int64 {
	if len(t.tiers) == 0 {
		return 0
	}

	return t.tiers[0].Threshold
}

// Exact returns the tier whose threshold equals amount.
func (t TierTable) Exact(amount int64) (Tier, bool) {
	i, found := slices.BinarySearchFunc(t.tiers, amount, func(tier Tier, target int64) int {
		return cmp.Compare(tier.Threshold, target)
	})
	if !found {
		return Tier{}, false
	}

	return t.tiers[i], true
}

// Floor returns the tier with the largest threshold <= amount. Amounts above
// the top tier get the top tier.
func (t TierTable) Floor(amount int64) (Tier, bool) {
	i, found := slices.BinarySearchFunc(t.tiers, amount, func(tier Tier, target int64) int {
		return cmp.Compare(tier.Threshold, target)
	})
	if found {
		return t.tiers[i], true
	}

	if i == 0 {
		return Tier{}, false
	}

	return t.tiers[i-1], true
}
