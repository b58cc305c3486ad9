package store

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"

	"robux_topup/internal/domain"
	"robux_topup/internal/domain/entity"
	"robux_topup/internal/domain/value"
	"robux_topup/pkg/errcodes"
)

// MemorySessions keeps checkout sessions in process memory. A session that
// is not touched for ttl is dropped.
type MemorySessions struct {
	cache *cache.Cache
	ttl   time.Duration
}

func NewMemorySessions(ttl time.Duration) *MemorySessions {
	return &MemorySessions{
		cache: cache.New(ttl, cleanupInterval(ttl)),
		ttl:   ttl,
	}
}

func (m *MemorySessions) Save(_ context.Context, session entity.Session) error {
	m.cache.Set(session.ID.String(), session, m.ttl)
	return nil
}

func (m *MemorySessions) Get(_ context.Context, id value.SessionID) (entity.Session, error) {
	v, found := m.cache.Get(id.String())
	if !found {
		return entity.Session{}, domain.NewError(errcodes.SessionNotFound, "checkout session not found")
	}

	return v.(entity.Session), nil //nolint:forcetypeassert // only sessions are stored
}

func cleanupInterval(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return time.Minute
	}

	return ttl / 2 //nolint:mnd
}
