package checkout

import (
	"sync"
	"time"

	"robux_topup/internal/domain/value"
)

// OrderIDGenerator stamps orders with their creation time in milliseconds.
// Two orders created in the same millisecond get consecutive stamps, so ids
// never repeat within a process.
type OrderIDGenerator struct {
	prefix string
	now    func() time.Time

	mu   sync.Mutex
	last int64
}

func NewOrderIDGenerator(prefix string) *OrderIDGenerator {
	if prefix == "" {
		prefix = value.OrderIDPrefix
	}

	return &OrderIDGenerator{
		prefix: prefix,
		now:    time.Now,
	}
}

func (g *OrderIDGenerator) WithClock(now func() time.Time) *OrderIDGenerator {
	g.now = now
	return g
}

func (g *OrderIDGenerator) Next() value.OrderID {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms := g.now().UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}

	g.last = ms

	return value.NewOrderID(g.prefix, ms)
}
