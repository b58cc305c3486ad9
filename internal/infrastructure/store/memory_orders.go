package store

import (
	"cmp"
	"context"
	"slices"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/samber/lo"

	"robux_topup/internal/domain/entity"
)

// MemoryOrders remembers the orders created by this process for retention,
// newest first on read.
type MemoryOrders struct {
	cache     *cache.Cache
	retention time.Duration
}

func NewMemoryOrders(retention time.Duration) *MemoryOrders {
	return &MemoryOrders{
		cache:     cache.New(retention, cleanupInterval(retention)),
		retention: retention,
	}
}

func (m *MemoryOrders) Add(_ context.Context, order entity.Order) error {
	m.cache.Set(order.ID.String(), order, m.retention)
	return nil
}

func (m *MemoryOrders) Recent(_ context.Context, limit int) ([]entity.Order, error) {
	orders := lo.MapToSlice(m.cache.Items(), func(_ string, item cache.Item) entity.Order {
		return item.Object.(entity.Order) //nolint:forcetypeassert // only orders are stored
	})

	slices.SortFunc(orders, func(a, b entity.Order) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}

		return cmp.Compare(b.ID.CreatedAtMs(), a.ID.CreatedAtMs())
	})

	if limit > 0 && len(orders) > limit {
		orders = orders[:limit]
	}

	return orders, nil
}
