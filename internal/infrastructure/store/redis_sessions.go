package store

import (
	"context"
	"errors"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"

	"robux_topup/internal/domain"
	"robux_topup/internal/domain/entity"
	"robux_topup/internal/domain/value"
	"robux_topup/pkg/errcodes"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const sessionKeyPrefix = "checkout:session:"

// RedisSessions shares checkout sessions between service replicas. Keys
// expire ttl after the last write.
type RedisSessions struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewRedisSessions(client redis.Cmdable, ttl time.Duration) *RedisSessions {
	return &RedisSessions{
		client: client,
		ttl:    ttl,
	}
}

func (r *RedisSessions) Save(ctx context.Context, session entity.Session) error {
	b, err := json.Marshal(session)
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to encode session")
	}

	if err := r.client.Set(ctx, sessionKey(session.ID), b, r.ttl).Err(); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to save session")
	}

	return nil
}

func (r *RedisSessions) Get(ctx context.Context, id value.SessionID) (entity.Session, error) {
	b, err := r.client.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return entity.Session{}, domain.NewError(errcodes.SessionNotFound, "checkout session not found")
		}

		return entity.Session{}, domain.WrapError(err, errcodes.InternalServerError, "failed to get session")
	}

	var session entity.Session
	if err := json.Unmarshal(b, &session); err != nil {
		return entity.Session{}, domain.WrapError(err, errcodes.InternalServerError, "failed to decode session")
	}

	return session, nil
}

func sessionKey(id value.SessionID) string {
	return sessionKeyPrefix + id.String()
}
