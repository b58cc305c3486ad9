package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"robux_topup/internal/domain"
	"robux_topup/internal/domain/entity"
	"robux_topup/internal/domain/value"
	"robux_topup/internal/infrastructure/store"
	"robux_topup/pkg/errcodes"
)

type sessionStore interface {
	Save(ctx context.Context, session entity.Session) error
	Get(ctx context.Context, id value.SessionID) (entity.Session, error)
}

// fakeRedis implements the two commands the session store issues.
type fakeRedis struct {
	redis.Cmdable

	data map[string][]byte
	ttls map[string]time.Duration
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{
		data: map[string][]byte{},
		ttls: map[string]time.Duration{},
	}
}

func (f *fakeRedis) Set(_ context.Context, key string, v any, expiration time.Duration) *redis.StatusCmd {
	f.data[key] = v.([]byte) //nolint:forcetypeassert
	f.ttls[key] = expiration

	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	b, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}

	return redis.NewStringResult(string(b), nil)
}

func testSession() entity.Session {
	at := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	return entity.Session{
		ID:    value.NewSessionID(),
		State: value.StateIdle,
		Params: entity.CheckoutParams{
			Username:      "PlayerOne",
			RobuxAmount:   400,
			GamepassPrice: 572,
			GamepassURL:   "https://www.roblox.com/game-pass/1",
			TotalPayment:  57100,
		},
		Quote: &entity.Quote{
			NetAmount:    400,
			FeeRate:      decimal.RequireFromString("0.3"),
			GrossAmount:  572,
			FeeAmount:    172,
			UnitPrice:    decimal.RequireFromString("142.75"),
			TotalPayment: 57100,
			Tier:         entity.Tier{Threshold: 400, Price: 57100},
			ExactTier:    true,
		},
		CreatedAt: at,
		UpdatedAt: at,
	}
}

func TestSessionStores(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	testCases := []struct {
		name  string
		store sessionStore
	}{
		{name: "Memory", store: store.NewMemorySessions(time.Hour)},
		{name: "Redis", store: store.NewRedisSessions(newFakeRedis(), time.Hour)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			session := testSession()

			rq.NoError(tc.store.Save(ctx, session))

			got, err := tc.store.Get(ctx, session.ID)
			rq.NoError(err)
			rq.Equal(session.ID, got.ID)
			rq.Equal(session.State, got.State)
			rq.Equal(session.Params, got.Params)
			rq.Equal(session.Quote.GrossAmount, got.Quote.GrossAmount)
			rq.True(session.Quote.UnitPrice.Equal(got.Quote.UnitPrice))
			rq.True(session.CreatedAt.Equal(got.CreatedAt))
			rq.Nil(got.Order)

			_, err = tc.store.Get(ctx, value.NewSessionID())
			rq.True(domain.HasCode(err, errcodes.SessionNotFound))
		})
	}
}

func TestRedisSessionsKeyAndTTL(t *testing.T) {
	rq := require.New(t)

	client := newFakeRedis()
	sessions := store.NewRedisSessions(client, 30*time.Minute)
	session := testSession()

	rq.NoError(sessions.Save(context.Background(), session))

	key := "checkout:session:" + session.ID.String()
	rq.Contains(client.data, key)
	rq.Equal(30*time.Minute, client.ttls[key])
}

func TestMemorySessionsExpire(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	sessions := store.NewMemorySessions(20 * time.Millisecond)
	session := testSession()

	rq.NoError(sessions.Save(ctx, session))

	time.Sleep(50 * time.Millisecond)

	_, err := sessions.Get(ctx, session.ID)
	rq.True(domain.HasCode(err, errcodes.SessionNotFound))
}

func TestMemoryOrdersRecent(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	orders := store.NewMemoryOrders(time.Hour)
	base := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	for i, amount := range []int64{800, 400, 1700, 4500} {
		createdAt := base.Add(time.Duration(i) * time.Hour)

		rq.NoError(orders.Add(ctx, entity.Order{
			ID:          value.NewOrderID(value.OrderIDPrefix, createdAt.UnixMilli()),
			RobuxAmount: amount,
			Status:      value.OrderPending,
			CreatedAt:   createdAt,
		}))
	}

	recent, err := orders.Recent(ctx, 0)
	rq.NoError(err)
	rq.Len(recent, 4)
	rq.Equal([]int64{4500, 1700, 400, 800}, []int64{
		recent[0].RobuxAmount, recent[1].RobuxAmount, recent[2].RobuxAmount, recent[3].RobuxAmount,
	})

	recent, err = orders.Recent(ctx, 2)
	rq.NoError(err)
	rq.Len(recent, 2)
	rq.Equal(int64(4500), recent[0].RobuxAmount)

	empty, err := store.NewMemoryOrders(time.Hour).Recent(ctx, 10)
	rq.NoError(err)
	rq.Empty(empty)
}
